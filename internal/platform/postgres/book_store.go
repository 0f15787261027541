package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/platform/logger"
	"github.com/phrazzld/nani-api/internal/store"
)

// PostgresBookStore implements store.BookStore.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.BookStore = (*PostgresBookStore)(nil)

// NewPostgresBookStore creates a book store over db. A nil logger uses slog.Default.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresBookStore{db: db, logger: logger.With(slog.String("component", "book_store"))}
}

func (s *PostgresBookStore) WithTx(tx *sql.Tx) store.BookStore {
	return &PostgresBookStore{db: tx, logger: s.logger}
}

func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO books (id, title, subject, grade, file_ref, total_pages, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		book.ID, book.Title, book.Subject, book.Grade, book.FileRef, book.TotalPages, book.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create book", slog.String("book_id", book.ID.String()), slog.Any("error", err))
		return MapError(err, store.ErrBookNotFound, nil)
	}

	log.Info("book created", slog.String("book_id", book.ID.String()), slog.Int("total_pages", book.TotalPages))
	return nil
}

const bookColumns = `id, title, subject, grade, file_ref, total_pages, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var b domain.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Subject, &b.Grade, &b.FileRef, &b.TotalPages, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *PostgresBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	b, err := scanBook(row)
	if err != nil {
		return nil, MapError(err, store.ErrBookNotFound, nil)
	}
	return b, nil
}

func (s *PostgresBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+bookColumns+` FROM books ORDER BY created_at DESC`)
	if err != nil {
		return nil, store.NewStoreError("book", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, store.NewStoreError("book", "list", "scan failed", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("book", "list", "iteration failed", err)
	}
	return books, nil
}

func (s *PostgresBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("book", "delete", "exec failed", err)
	}
	if err := CheckRowsAffected(res, store.ErrBookNotFound); err != nil {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("book deleted", slog.String("book_id", id.String()))
	return nil
}
