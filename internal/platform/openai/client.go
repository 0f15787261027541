package openai

import (
	"context"
	"errors"
	"net/http"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/phrazzld/nani-api/internal/domain"
)

// GroqBaseURL is Groq's OpenAI-compatible endpoint.
const GroqBaseURL = "https://api.groq.com/openai/v1/"

func newClient(apiKey, baseURL string) sdk.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return sdk.NewClient(opts...)
}

func providerError(p domain.Provider, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	pe := &domain.ProviderCallError{Provider: p, Message: err.Error(), Err: err}

	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		pe.StatusCode = apiErr.StatusCode
		pe.Message = apiErr.Message
		if pe.Message == "" {
			pe.Message = http.StatusText(apiErr.StatusCode)
		}
	}
	return pe
}

// isVendorRejection reports whether err is an HTTP error response from the vendor.
func isVendorRejection(err error) bool {
	var apiErr *sdk.Error
	return errors.As(err, &apiErr)
}
