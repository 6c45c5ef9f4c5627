// Package stub provides a fast, deterministic chat provider for local
// development and tests. It never performs network I/O.
package stub

import (
	"strings"
	"time"

	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

// Client is a deterministic domain.ChatProvider.
type Client struct{}

// New constructs a stub provider.
func New() *Client { return &Client{} }

// Complete returns a canned answer, or a canned sentiment label when the
// system prompt asks for sentiment classification.
func (c *Client) Complete(_ domain.Context, systemPrompt, userMessage string) (string, error) {
	// Simulate a tiny bit of processing latency to resemble real work
	time.Sleep(10 * time.Millisecond)
	if strings.Contains(strings.ToLower(systemPrompt), "sentiment") {
		lower := strings.ToLower(userMessage)
		switch {
		case strings.Contains(lower, "thank"), strings.Contains(lower, "great"), strings.Contains(lower, "love"):
			return domain.SentimentPositive, nil
		case strings.Contains(lower, "angry"), strings.Contains(lower, "broken"), strings.Contains(lower, "refund"):
			return domain.SentimentNegative, nil
		default:
			return domain.SentimentNeutral, nil
		}
	}
	return "Thanks for reaching out. A support specialist has logged your request and will follow up shortly.", nil
}
