package service

import (
	"context"
	"errors"
	"strings"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
	"github.com/phrazzld/nani-api/internal/prompt"
)

// APIKeyService checks a provider key with a minimal text call.
type APIKeyService interface {
	Check(ctx context.Context, cfg domain.ProviderConfig) error
}

type apiKeyServiceImpl struct {
	text generation.TextGenerator
}

func NewAPIKeyService(text generation.TextGenerator) (APIKeyService, error) {
	if text == nil {
		return nil, errors.New("text generator cannot be nil")
	}
	return &apiKeyServiceImpl{text: text}, nil
}

// Check returns nil when the provider answers with any text. Vendor failures
// come back unchanged; an empty answer is ErrInvalidAPIKey.
func (s *apiKeyServiceImpl) Check(ctx context.Context, cfg domain.ProviderConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	out, err := s.text.Generate(ctx, cfg, prompt.APIKeyCheck, "")
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) == "" {
		return ErrInvalidAPIKey
	}
	return nil
}
