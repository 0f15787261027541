package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/nani-api/internal/domain"
)

// Provider selection headers.
const (
	HeaderProvider = "X-AI-Provider"
	HeaderAPIKey   = "X-AI-API-Key"
	HeaderModel    = "X-AI-Model"
)

// providerFromHeaders resolves the per-request vendor selection. Provider
// defaults to google and model to the provider's first catalog entry.
func providerFromHeaders(r *http.Request) (domain.ProviderConfig, error) {
	return domain.NewProviderConfig(
		r.Header.Get(HeaderProvider),
		r.Header.Get(HeaderAPIKey),
		r.Header.Get(HeaderModel),
	)
}

func getPathUUID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return uuid.Nil, domain.NewValidationError(param, "is required", nil)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(param, "has invalid format", nil)
	}
	return id, nil
}

func getPathInt64(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(param, "must be a positive integer", nil)
	}
	return id, nil
}
