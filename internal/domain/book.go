package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book is an uploaded textbook. FileRef is the blob reference used as the
// documentRef of generation requests.
type Book struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Subject    string    `json:"subject,omitempty"`
	Grade      string    `json:"grade,omitempty"`
	FileRef    string    `json:"file_ref"`
	TotalPages int       `json:"total_pages"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewBook creates a Book with a fresh ID and validates it.
func NewBook(title, subject, grade, fileRef string, totalPages int) (*Book, error) {
	b := &Book{
		ID:         uuid.New(),
		Title:      strings.TrimSpace(title),
		Subject:    strings.TrimSpace(subject),
		Grade:      strings.TrimSpace(grade),
		FileRef:    fileRef,
		TotalPages: totalPages,
		CreatedAt:  time.Now().UTC(),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the book's required fields.
func (b *Book) Validate() error {
	if b.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", nil)
	}
	if b.Title == "" {
		return NewValidationError("title", "cannot be empty", nil)
	}
	if b.FileRef == "" {
		return NewValidationError("file_ref", "cannot be empty", nil)
	}
	if b.TotalPages < 0 {
		return NewValidationError("total_pages", "cannot be negative", nil)
	}
	return nil
}

// Subject is a curriculum subject used to categorize books.
type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
