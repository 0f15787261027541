package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
	"google.golang.org/genai"
)

// Options configures both adapters.
type Options struct {
	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL string
}

func newClient(ctx context.Context, apiKey string, opts Options) (*genai.Client, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}
	return client, nil
}

// providerError wraps a genai failure. Errors that already carry a domain
// meaning (context cancellation, config) pass through.
func providerError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	pe := &domain.ProviderCallError{Provider: domain.ProviderGoogle, Message: err.Error(), Err: err}

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		pe.StatusCode, pe.Message = apiErr.Code, apiErr.Message
	case errors.As(err, &apiErrPtr):
		pe.StatusCode, pe.Message = apiErrPtr.Code, apiErrPtr.Message
	}
	return pe
}

func isVendorRejection(err error) bool {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	return errors.As(err, &apiErr) || errors.As(err, &apiErrPtr)
}

func logCall(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.DebugContext(ctx, msg, args...)
	}
}
