package openai

import (
	"context"
	"log/slog"

	sdk "github.com/openai/openai-go"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
	"github.com/phrazzld/nani-api/internal/redact"
)

// ImageGenerator implements generation.ImageGenerator with DALL·E 3.
type ImageGenerator struct {
	baseURL string
	logger  *slog.Logger
}

var _ generation.ImageGenerator = (*ImageGenerator)(nil)

func NewImageGenerator(logger *slog.Logger, baseURL string) *ImageGenerator {
	return &ImageGenerator{baseURL: baseURL, logger: logger}
}

// GenerateImage returns one 1024x1024 image as base64. A rejected request
// (HTTP error from the vendor) yields "" and no error.
func (g *ImageGenerator) GenerateImage(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", domain.ErrMissingAPIKey
	}
	client := newClient(apiKey, g.baseURL)

	resp, err := client.Images.Generate(ctx, sdk.ImageGenerateParams{
		Prompt:         prompt,
		Model:          sdk.ImageModelDallE3,
		N:              sdk.Int(1),
		Size:           sdk.ImageGenerateParamsSize1024x1024,
		Quality:        sdk.ImageGenerateParamsQualityStandard,
		ResponseFormat: sdk.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		if isVendorRejection(err) {
			if g.logger != nil {
				g.logger.WarnContext(ctx, "image request rejected", "error", redact.Error(err))
			}
			return "", nil
		}
		return "", providerError(domain.ProviderOpenAI, err)
	}
	if len(resp.Data) == 0 {
		return "", nil
	}
	return resp.Data[0].B64JSON, nil
}
