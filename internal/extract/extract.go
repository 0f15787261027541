// Package extract turns an inclusive page range of a stored document into
// plain text for prompting.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/nani-api/internal/domain"
)

// PageSeparator is placed between consecutive pages of extracted text.
const PageSeparator = "\n\n--- page break ---\n\n"

// Document is an opened, paged document. Pages are numbered from 1.
type Document interface {
	PageCount() int
	// PageText returns the text runs of page n joined by single spaces.
	PageText(n int) (string, error)
	Close() error
}

// DocumentStore opens documents by reference. Open failures must wrap
// domain.ErrExtraction (domain.ErrDocumentNotFound for unknown refs).
type DocumentStore interface {
	Open(ctx context.Context, ref string) (Document, error)
}

// Extractor reads page ranges from a DocumentStore.
type Extractor struct {
	store DocumentStore
}

// New creates an Extractor backed by store.
func New(store DocumentStore) *Extractor {
	return &Extractor{store: store}
}

// Extract returns the text of pages start..end of ref, clamping end to the
// document's page count. It returns domain.ErrNoContent when no page in the
// range has non-blank text, which includes start beyond the last page.
func (e *Extractor) Extract(ctx context.Context, ref string, start, end int) (text string, err error) {
	doc, err := e.store.Open(ctx, ref)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close document: %v", domain.ErrExtraction, cerr)
		}
	}()

	if start < 1 {
		start = 1
	}
	last := min(end, doc.PageCount())

	pages := make([]string, 0, max(0, last-start+1))
	hasText := false
	for n := start; n <= last; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page, err := doc.PageText(n)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", domain.ErrExtraction, n, err)
		}
		if strings.TrimSpace(page) != "" {
			hasText = true
		}
		pages = append(pages, page)
	}

	// Separators alone are not content.
	if !hasText {
		return "", domain.ErrNoContent
	}
	return strings.TrimSpace(strings.Join(pages, PageSeparator)), nil
}
