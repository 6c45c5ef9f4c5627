// Package provider implements the chat-completion providers behind the
// domain.ChatProvider port. Each provider performs a single synchronous call
// per Complete invocation; there is no retry and no partial recovery, so a
// failed call surfaces immediately as an upstream error.
package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/ai/tokencount"
	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/observability"
	"github.com/fairyhunter13/ai-customer-chat/internal/config"
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

// MiniMax calls the MiniMax chat-completion API (OpenAI-compatible wire shape).
type MiniMax struct {
	cfg config.Config
	hc  *http.Client
}

// NewMiniMax constructs a MiniMax provider with a bounded HTTP client.
func NewMiniMax(cfg config.Config) *MiniMax {
	return &MiniMax{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.ProviderTimeout},
	}
}

const minimaxUpstreamModel = "MiniMax-M2.5"

// Complete implements domain.ChatProvider.
func (m *MiniMax) Complete(ctx domain.Context, systemPrompt, userMessage string) (string, error) {
	if m.cfg.MiniMaxAPIKey == "" {
		return "", fmt.Errorf("%w: MINIMAX_API_KEY missing", domain.ErrInvalidArgument)
	}

	body := map[string]any{
		"model":       minimaxUpstreamModel,
		"temperature": m.cfg.ProviderTemperature,
		"max_tokens":  m.cfg.ProviderMaxTokens,
		"stream":      false,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userMessage},
		},
	}
	b, _ := json.Marshal(body)

	endpoint := m.cfg.MiniMaxBaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("op=minimax.complete: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.MiniMaxAPIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := m.hc.Do(req)
	observability.AIRequestsTotal.WithLabelValues("minimax", "chat").Inc()
	observability.AIRequestDuration.WithLabelValues("minimax", "chat").Observe(time.Since(start).Seconds())
	if err != nil {
		slog.Error("ai provider request failed", slog.String("provider", "minimax"), slog.Any("error", err))
		return "", fmt.Errorf("%w: minimax: %v", domain.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("failed to read response body", slog.String("provider", "minimax"), slog.Any("error", err))
		return "", fmt.Errorf("%w: minimax: read body: %v", domain.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := string(bodyBytes)
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		slog.Warn("ai provider non-2xx",
			slog.String("provider", "minimax"),
			slog.Int("status", resp.StatusCode),
			slog.String("endpoint", endpoint),
			slog.String("x_request_id", resp.Header.Get("X-Request-Id")),
			slog.String("body", snippet))
		return "", fmt.Errorf("%w: minimax: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		slog.Error("ai provider decode error", slog.String("provider", "minimax"), slog.Any("error", err))
		return "", fmt.Errorf("%w: minimax: decode: %v", domain.ErrUpstream, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: minimax: empty choices", domain.ErrUpstream)
	}
	content := out.Choices[0].Message.Content

	usage := tokencount.DefaultCounter.CalculateUsage(systemPrompt, userMessage, content, minimaxUpstreamModel, "minimax")
	observability.AITokensTotal.WithLabelValues("minimax", "prompt").Add(float64(usage.PromptTokens))
	observability.AITokensTotal.WithLabelValues("minimax", "completion").Add(float64(usage.CompletionTokens))

	return content, nil
}
