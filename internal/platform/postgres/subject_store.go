package postgres

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/store"
)

// PostgresSubjectStore implements store.SubjectStore.
type PostgresSubjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.SubjectStore = (*PostgresSubjectStore)(nil)

func NewPostgresSubjectStore(db store.DBTX, logger *slog.Logger) *PostgresSubjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSubjectStore{db: db, logger: logger.With(slog.String("component", "subject_store"))}
}

func (s *PostgresSubjectStore) List(ctx context.Context) ([]domain.Subject, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM subjects ORDER BY id`)
	if err != nil {
		return nil, store.NewStoreError("subject", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	subjects := make([]domain.Subject, 0)
	for rows.Next() {
		var sub domain.Subject
		if err := rows.Scan(&sub.ID, &sub.Name); err != nil {
			return nil, store.NewStoreError("subject", "list", "scan failed", err)
		}
		subjects = append(subjects, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("subject", "list", "iteration failed", err)
	}
	return subjects, nil
}

func (s *PostgresSubjectStore) Create(ctx context.Context, name string) (*domain.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "cannot be empty", nil)
	}

	sub := domain.Subject{Name: name}
	err := s.db.QueryRowContext(ctx, `INSERT INTO subjects (name) VALUES ($1) RETURNING id`, name).Scan(&sub.ID)
	if err != nil {
		return nil, MapError(err, store.ErrSubjectNotFound, store.ErrSubjectExists)
	}
	s.logger.InfoContext(ctx, "subject created", slog.Int64("subject_id", sub.ID))
	return &sub, nil
}

func (s *PostgresSubjectStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("subject", "delete", "exec failed", err)
	}
	return CheckRowsAffected(res, store.ErrSubjectNotFound)
}
