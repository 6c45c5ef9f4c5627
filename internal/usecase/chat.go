// Package usecase contains the application services that orchestrate domain
// ports. Services stay thin: validation, sequencing, and error mapping only.
package usecase

import (
	"fmt"
	"strings"

	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
	obsctx "github.com/fairyhunter13/ai-customer-chat/internal/observability"
)

// DefaultModel is used when a chat request does not name a model.
const DefaultModel = "MiniMax-M2.5"

// ProviderResolver maps a public model ID to its chat provider.
type ProviderResolver interface {
	Resolve(modelID string) (domain.ChatProvider, error)
}

// Sanitizer turns raw model output into display-safe plain text.
type Sanitizer interface {
	Clean(raw string) string
}

// ChatReply is the outcome of one chat exchange.
type ChatReply struct {
	Response  string
	Sentiment string
}

// ChatService relays a user message to a provider, post-processes the output,
// classifies sentiment, and optionally persists the exchange.
type ChatService struct {
	Providers    ProviderResolver
	Cleaner      Sanitizer
	Interactions domain.InteractionRepository

	AnswerPrompt    string
	SentimentPrompt string
}

// NewChatService constructs a ChatService.
func NewChatService(providers ProviderResolver, cleaner Sanitizer, interactions domain.InteractionRepository, answerPrompt, sentimentPrompt string) ChatService {
	return ChatService{
		Providers:       providers,
		Cleaner:         cleaner,
		Interactions:    interactions,
		AnswerPrompt:    answerPrompt,
		SentimentPrompt: sentimentPrompt,
	}
}

// Chat performs the two-call exchange: the answer completion, then the
// sentiment classification, both against the same provider and strictly in
// that order. Any provider failure aborts the whole operation with no partial
// result. When customerID is non-nil the exchange is persisted; a nil
// customerID never writes anything, regardless of outcome.
func (s ChatService) Chat(ctx domain.Context, modelID, message string, customerID *int64) (ChatReply, error) {
	lg := obsctx.LoggerFromContext(ctx)

	message = strings.TrimSpace(message)
	if message == "" {
		return ChatReply{}, fmt.Errorf("%w: message required", domain.ErrInvalidArgument)
	}
	if modelID == "" {
		modelID = DefaultModel
	}

	// Resolving happens before any outbound call: an unrecognized model is a
	// validation error with zero side effects.
	prov, err := s.Providers.Resolve(modelID)
	if err != nil {
		return ChatReply{}, err
	}

	rawAnswer, err := prov.Complete(ctx, s.AnswerPrompt, message)
	if err != nil {
		return ChatReply{}, fmt.Errorf("op=chat.answer: %w", err)
	}
	answer := s.Cleaner.Clean(strings.TrimSpace(rawAnswer))

	rawSentiment, err := prov.Complete(ctx, s.SentimentPrompt, message)
	if err != nil {
		return ChatReply{}, fmt.Errorf("op=chat.sentiment: %w", err)
	}
	sentiment := s.Cleaner.Clean(strings.ToLower(strings.TrimSpace(rawSentiment)))

	lg.Info("chat exchange completed",
		"model", modelID,
		"sentiment", sentiment,
		"answer_len", len(answer))

	if customerID != nil {
		if _, err := s.Interactions.Create(ctx, domain.Interaction{
			CustomerID:  *customerID,
			UserMessage: message,
			AIResponse:  answer,
			Sentiment:   sentiment,
		}); err != nil {
			return ChatReply{}, err
		}
	}

	return ChatReply{Response: answer, Sentiment: sentiment}, nil
}
