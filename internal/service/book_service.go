package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/platform/blob"
	"github.com/phrazzld/nani-api/internal/platform/logger"
	"github.com/phrazzld/nani-api/internal/platform/pdf"
	"github.com/phrazzld/nani-api/internal/redact"
	"github.com/phrazzld/nani-api/internal/store"
)

// UploadBookRequest carries an uploaded PDF and its catalog fields.
type UploadBookRequest struct {
	Title   string
	Subject string
	Grade   string
	Data    []byte
}

// BookService manages the textbook catalog and the stored files behind it.
type BookService interface {
	Upload(ctx context.Context, req UploadBookRequest) (*domain.Book, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookServiceError wraps unexpected failures with the operation name.
type BookServiceError struct {
	Operation string
	Message   string
	Err       error
}

func (e *BookServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("book service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("book service %s failed: %s", e.Operation, e.Message)
}

func (e *BookServiceError) Unwrap() error {
	return e.Err
}

type bookServiceImpl struct {
	books   BookRepository
	blobs   blob.Store
	inspect func([]byte) (int, error)
	logger  *slog.Logger
}

// NewBookService validates its dependencies.
func NewBookService(books BookRepository, blobs blob.Store, logger *slog.Logger) (BookService, error) {
	if books == nil {
		return nil, &BookServiceError{Operation: "create_service", Message: "book repository cannot be nil"}
	}
	if blobs == nil {
		return nil, &BookServiceError{Operation: "create_service", Message: "blob store cannot be nil"}
	}
	if logger == nil {
		return nil, &BookServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}
	return &bookServiceImpl{
		books:   books,
		blobs:   blobs,
		inspect: pdf.Inspect,
		logger:  logger.With("component", "book_service"),
	}, nil
}

// Upload validates the PDF, stores it as <id>.pdf and records the book. The
// blob is removed again when the row cannot be written.
func (s *bookServiceImpl) Upload(ctx context.Context, req UploadBookRequest) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(req.Data) == 0 {
		return nil, domain.NewValidationError("file", "is required", nil)
	}
	pages, err := s.inspect(req.Data)
	if err != nil {
		log.Debug("rejected upload", "error", redact.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	id := uuid.New()
	book, err := domain.NewBook(req.Title, req.Subject, req.Grade, id.String()+".pdf", pages)
	if err != nil {
		return nil, err
	}
	book.ID = id

	if err := s.blobs.Put(ctx, book.FileRef, req.Data); err != nil {
		log.Error("failed to store upload", "error", redact.Error(err))
		return nil, &BookServiceError{Operation: "upload", Message: "failed to store file", Err: err}
	}

	if err := s.books.Create(ctx, book); err != nil {
		if delErr := s.blobs.Delete(ctx, book.FileRef); delErr != nil {
			log.Warn("failed to clean up orphaned upload",
				"file_ref", book.FileRef,
				"error", redact.Error(delErr))
		}
		return nil, &BookServiceError{Operation: "upload", Message: "failed to save book", Err: err}
	}

	log.Info("book uploaded",
		slog.String("book_id", book.ID.String()),
		slog.Int("total_pages", pages),
		slog.Int("bytes", len(req.Data)))
	return book, nil
}

func (s *bookServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *bookServiceImpl) List(ctx context.Context) ([]*domain.Book, error) {
	return s.books.List(ctx)
}

// Delete removes the row and the file together. A failed blob delete rolls
// the row back, except when the blob is already gone.
func (s *bookServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return store.RunInTransaction(ctx, s.books.DB(), func(ctx context.Context, tx *sql.Tx) error {
		if err := s.books.WithTx(tx).Delete(ctx, id); err != nil {
			return err
		}
		if err := s.blobs.Delete(ctx, book.FileRef); err != nil && !errors.Is(err, blob.ErrNotFound) {
			log.Error("failed to delete book file", "file_ref", book.FileRef, "error", redact.Error(err))
			return &BookServiceError{Operation: "delete", Message: "failed to delete file", Err: err}
		}
		log.Info("book deleted", slog.String("book_id", id.String()))
		return nil
	})
}
