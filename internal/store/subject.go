package store

import (
	"context"

	"github.com/phrazzld/nani-api/internal/domain"
)

// SubjectStore persists the list of subjects books are filed under.
type SubjectStore interface {
	// List returns subjects in insertion order.
	List(ctx context.Context) ([]domain.Subject, error)

	// Create returns ErrSubjectExists when name is already present.
	Create(ctx context.Context, name string) (*domain.Subject, error)

	// Delete returns ErrSubjectNotFound when id is unknown.
	Delete(ctx context.Context, id int64) error
}
