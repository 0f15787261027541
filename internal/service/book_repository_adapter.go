package service

import (
	"database/sql"

	"github.com/phrazzld/nani-api/internal/store"
)

// BookRepository is the book store plus the database handle that
// transactions are started on.
type BookRepository interface {
	store.BookStore
	DB() *sql.DB
}

type bookRepositoryAdapter struct {
	store.BookStore
	db *sql.DB
}

// NewBookRepositoryAdapter pairs a book store with its database.
func NewBookRepositoryAdapter(books store.BookStore, db *sql.DB) BookRepository {
	return &bookRepositoryAdapter{BookStore: books, db: db}
}

func (a *bookRepositoryAdapter) DB() *sql.DB {
	return a.db
}
