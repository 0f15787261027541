package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/nani-api/internal/api/shared"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/service"
)

// APIKeyHandler checks the key sent in the provider headers.
type APIKeyHandler struct {
	svc service.APIKeyService
}

func NewAPIKeyHandler(svc service.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{svc: svc}
}

// Check replies {valid:true} when the provider answers. Any vendor failure
// is a 401, since the point of the call is to test the key.
func (h *APIKeyHandler) Check(w http.ResponseWriter, r *http.Request) {
	cfg, err := providerFromHeaders(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.svc.Check(r.Context(), cfg); err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrUnsupportedProvider) {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, msgInvalidAPIKey, err,
			shared.WithElevatedLogLevel())
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, APIKeyResponse{Valid: true, Message: "API Key 驗證成功"})
}

// Providers lists the provider catalog. The first model of each is the default.
func Providers(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ProvidersResponse{Providers: domain.Providers})
}

// Health is the liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
