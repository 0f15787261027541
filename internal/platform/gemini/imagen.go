package gemini

import (
	"context"
	"encoding/base64"
	"log/slog"

	"github.com/phrazzld/nani-api/internal/generation"
	"github.com/phrazzld/nani-api/internal/redact"
	"google.golang.org/genai"
)

// ImageModel is the Imagen model used for comic panels.
const ImageModel = "imagen-3.0-generate-002"

// ImageGenerator implements generation.ImageGenerator using Imagen.
type ImageGenerator struct {
	logger *slog.Logger
	opts   Options
}

var _ generation.ImageGenerator = (*ImageGenerator)(nil)

// NewImageGenerator creates an Imagen adapter.
func NewImageGenerator(logger *slog.Logger, opts Options) *ImageGenerator {
	return &ImageGenerator{logger: logger, opts: opts}
}

// GenerateImage renders one 1:1 image. A rejected request or an answer
// without image bytes (a safety-filtered prompt) yields "" and no error.
func (g *ImageGenerator) GenerateImage(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := newClient(ctx, apiKey, g.opts)
	if err != nil {
		return "", err
	}

	logCall(ctx, g.logger, "calling Imagen", "model", ImageModel)

	resp, err := client.Models.GenerateImages(ctx, ImageModel, prompt, &genai.GenerateImagesConfig{
		AspectRatio: "1:1",
	})
	if err != nil {
		if isVendorRejection(err) {
			if g.logger != nil {
				g.logger.WarnContext(ctx, "image request rejected", "error", redact.Error(err))
			}
			return "", nil
		}
		return "", providerError(err)
	}
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return "", nil
	}
	img := resp.GeneratedImages[0]
	if img == nil || img.Image == nil || len(img.Image.ImageBytes) == 0 {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString(img.Image.ImageBytes), nil
}
