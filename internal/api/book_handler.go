package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/phrazzld/nani-api/internal/api/shared"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/service"
)

// multipartMemory is how much of an upload ParseMultipartForm keeps in memory.
const multipartMemory = 32 << 20

// BookHandler serves the textbook catalog.
type BookHandler struct {
	svc            service.BookService
	maxUploadBytes int64
}

// NewBookHandler limits uploads to maxUploadMB megabytes.
func NewBookHandler(svc service.BookService, maxUploadMB int) *BookHandler {
	return &BookHandler{svc: svc, maxUploadBytes: int64(maxUploadMB) << 20}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, BooksResponse{Books: books})
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	book, err := h.svc.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, BookResponse{Book: book})
}

// Upload accepts multipart form fields file, title, subject and grade.
func (h *BookHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "檔案過大", err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "請提供書籍標題和 PDF 檔案", err)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "請提供書籍標題和 PDF 檔案", err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "無法讀取上傳檔案", err)
		return
	}

	req := service.UploadBookRequest{
		Title:   r.FormValue("title"),
		Subject: r.FormValue("subject"),
		Grade:   r.FormValue("grade"),
		Data:    data,
	}
	if req.Title == "" {
		HandleAPIError(w, r, domain.NewValidationError("title", "is required", nil))
		return
	}

	book, err := h.svc.Upload(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, BookResponse{Book: book})
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}
