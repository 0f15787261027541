package gemini

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
	"google.golang.org/genai"
)

// temperature used for every text generation call.
const temperature float32 = 0.7

// Generator implements generation.TextGenerator using the Gemini API.
type Generator struct {
	logger *slog.Logger
	opts   Options
}

var _ generation.TextGenerator = (*Generator)(nil)

// NewGenerator creates a Gemini text generator.
func NewGenerator(logger *slog.Logger, opts Options) *Generator {
	return &Generator{logger: logger, opts: opts}
}

// Generate sends one user turn, with system as the system instruction when set,
// and returns the concatenated text parts of the first candidate.
func (g *Generator) Generate(
	ctx context.Context,
	cfg domain.ProviderConfig,
	prompt, system string,
) (string, error) {
	client, err := newClient(ctx, cfg.APIKey, g.opts)
	if err != nil {
		return "", err
	}

	temp := temperature
	gc := &genai.GenerateContentConfig{Temperature: &temp}
	if system != "" {
		gc.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	logCall(ctx, g.logger, "calling Gemini", "model", cfg.Model, "prompt_length", len(prompt))

	resp, err := client.Models.GenerateContent(ctx, cfg.Model, genai.Text(prompt), gc)
	if err != nil {
		return "", providerError(err)
	}
	return firstText(resp), nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range c.Content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
