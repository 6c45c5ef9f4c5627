package provider

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/ai/tokencount"
	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/observability"
	"github.com/fairyhunter13/ai-customer-chat/internal/config"
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

// OpenAI calls the OpenAI chat-completion API via the go-openai SDK.
type OpenAI struct {
	cfg    config.Config
	client *openai.Client
}

// NewOpenAI constructs an OpenAI provider with a bounded HTTP client.
func NewOpenAI(cfg config.Config) *OpenAI {
	conf := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		conf.BaseURL = cfg.OpenAIBaseURL
	}
	conf.HTTPClient = &http.Client{Timeout: cfg.ProviderTimeout}
	return &OpenAI{cfg: cfg, client: openai.NewClientWithConfig(conf)}
}

// Complete implements domain.ChatProvider.
func (o *OpenAI) Complete(ctx domain.Context, systemPrompt, userMessage string) (string, error) {
	if o.cfg.OpenAIAPIKey == "" {
		return "", fmt.Errorf("%w: OPENAI_API_KEY missing", domain.ErrInvalidArgument)
	}

	req := openai.ChatCompletionRequest{
		Model:       openai.GPT3Dot5Turbo,
		Temperature: float32(o.cfg.ProviderTemperature),
		MaxTokens:   o.cfg.ProviderMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	}

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, req)
	observability.AIRequestsTotal.WithLabelValues("openai", "chat").Inc()
	observability.AIRequestDuration.WithLabelValues("openai", "chat").Observe(time.Since(start).Seconds())
	if err != nil {
		slog.Error("ai provider request failed", slog.String("provider", "openai"), slog.Any("error", err))
		return "", fmt.Errorf("%w: openai: %v", domain.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai: empty choices", domain.ErrUpstream)
	}
	content := resp.Choices[0].Message.Content

	// Prefer the usage block the API already returned; fall back to local
	// counting when it is absent.
	promptTokens, completionTokens := resp.Usage.PromptTokens, resp.Usage.CompletionTokens
	if promptTokens == 0 && completionTokens == 0 {
		usage := tokencount.DefaultCounter.CalculateUsage(systemPrompt, userMessage, content, openai.GPT3Dot5Turbo, "openai")
		promptTokens, completionTokens = usage.PromptTokens, usage.CompletionTokens
	}
	observability.AITokensTotal.WithLabelValues("openai", "prompt").Add(float64(promptTokens))
	observability.AITokensTotal.WithLabelValues("openai", "completion").Add(float64(completionTokens))

	return content, nil
}
