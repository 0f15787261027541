package openai

import (
	"context"
	"log/slog"

	sdk "github.com/openai/openai-go"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
)

const temperature = 0.7

// ChatGenerator implements generation.TextGenerator with chat completions.
type ChatGenerator struct {
	provider domain.Provider
	baseURL  string
	logger   *slog.Logger
}

var _ generation.TextGenerator = (*ChatGenerator)(nil)

// NewChatGenerator returns an OpenAI chat adapter. An empty baseURL uses the SDK default.
func NewChatGenerator(logger *slog.Logger, baseURL string) *ChatGenerator {
	return &ChatGenerator{provider: domain.ProviderOpenAI, baseURL: baseURL, logger: logger}
}

// NewGroqGenerator returns a chat adapter pointed at Groq. An empty baseURL uses GroqBaseURL.
func NewGroqGenerator(logger *slog.Logger, baseURL string) *ChatGenerator {
	if baseURL == "" {
		baseURL = GroqBaseURL
	}
	return &ChatGenerator{provider: domain.ProviderGroq, baseURL: baseURL, logger: logger}
}

func (g *ChatGenerator) Generate(
	ctx context.Context,
	cfg domain.ProviderConfig,
	prompt, system string,
) (string, error) {
	if cfg.APIKey == "" {
		return "", domain.ErrMissingAPIKey
	}
	client := newClient(cfg.APIKey, g.baseURL)

	msgs := make([]sdk.ChatCompletionMessageParamUnion, 0, 2)
	if system != "" {
		msgs = append(msgs, sdk.SystemMessage(system))
	}
	msgs = append(msgs, sdk.UserMessage(prompt))

	if g.logger != nil {
		g.logger.DebugContext(ctx, "calling chat completions",
			"provider", g.provider, "model", cfg.Model, "prompt_length", len(prompt))
	}

	resp, err := client.Chat.Completions.New(ctx, sdk.ChatCompletionNewParams{
		Model:       sdk.ChatModel(cfg.Model),
		Messages:    msgs,
		Temperature: sdk.Float(temperature),
	})
	if err != nil {
		return "", providerError(g.provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
