package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/store"
)

// SubjectService manages the subject list.
type SubjectService interface {
	List(ctx context.Context) ([]domain.Subject, error)
	Create(ctx context.Context, name string) (*domain.Subject, error)
	Delete(ctx context.Context, id int64) error
}

type subjectServiceImpl struct {
	subjects store.SubjectStore
	logger   *slog.Logger
}

func NewSubjectService(subjects store.SubjectStore, logger *slog.Logger) (SubjectService, error) {
	if subjects == nil {
		return nil, errors.New("subject store cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &subjectServiceImpl{subjects: subjects, logger: logger.With("component", "subject_service")}, nil
}

func (s *subjectServiceImpl) List(ctx context.Context) ([]domain.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *subjectServiceImpl) Create(ctx context.Context, name string) (*domain.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "cannot be empty", nil)
	}
	return s.subjects.Create(ctx, name)
}

func (s *subjectServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive", nil)
	}
	return s.subjects.Delete(ctx, id)
}
