package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/nani-api/internal/api/shared"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/service"
)

// GenerateHandler serves POST /api/generate/{type}.
type GenerateHandler struct {
	svc service.GenerationService
}

func NewGenerateHandler(svc service.GenerationService) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

func (h *GenerateHandler) Assessment(w http.ResponseWriter, r *http.Request) {
	serveGeneration(w, r, domain.ContentAssessment, h.svc.GenerateAssessment)
}

func (h *GenerateHandler) Comic(w http.ResponseWriter, r *http.Request) {
	serveGeneration(w, r, domain.ContentComic, h.svc.GenerateComic)
}

func (h *GenerateHandler) Worksheet(w http.ResponseWriter, r *http.Request) {
	serveGeneration(w, r, domain.ContentWorksheet, h.svc.GenerateWorksheet)
}

func (h *GenerateHandler) Podcast(w http.ResponseWriter, r *http.Request) {
	serveGeneration(w, r, domain.ContentPodcast, h.svc.GeneratePodcast)
}

// serveGeneration decodes the shared body, runs generate on a context that
// outlives a client disconnect and replies with {"<type>": artifact}.
func serveGeneration[T any](
	w http.ResponseWriter,
	r *http.Request,
	contentType domain.ContentType,
	generate func(context.Context, service.GenerateRequest) (T, error),
) {
	provider, err := providerFromHeaders(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var body GenerateBody
	if !decodeAndValidate(w, r, &body) {
		return
	}

	// A started generation runs to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	artifact, err := generate(ctx, service.GenerateRequest{
		DocumentRef:   body.DocumentRef,
		StartPage:     body.StartPage,
		EndPage:       body.EndPage,
		Difficulty:    body.Difficulty,
		GenerateAudio: body.GenerateAudio,
		Provider:      provider,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]T{string(contentType): artifact})
}
