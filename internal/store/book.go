package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/nani-api/internal/domain"
)

// BookStore persists uploaded textbooks.
type BookStore interface {
	// Create inserts a validated book.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID returns ErrBookNotFound when id is unknown.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// List returns all books, newest first.
	List(ctx context.Context) ([]*domain.Book, error)

	// Delete returns ErrBookNotFound when id is unknown.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a store bound to tx.
	WithTx(tx *sql.Tx) BookStore
}
