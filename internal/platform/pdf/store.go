package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/extract"
	"github.com/phrazzld/nani-api/internal/platform/blob"
)

// Store opens PDFs kept in a blob store.
type Store struct {
	blobs blob.Store
}

var _ extract.DocumentStore = (*Store)(nil)

// NewStore creates a document store over blobs.
func NewStore(blobs blob.Store) *Store {
	return &Store{blobs: blobs}
}

// Open loads ref fully into memory and parses its cross-reference table.
func (s *Store) Open(ctx context.Context, ref string) (extract.Document, error) {
	data, err := s.blobs.Get(ctx, ref)
	if errors.Is(err, blob.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	return Parse(data)
}

// Parse opens an in-memory PDF.
func Parse(data []byte) (doc extract.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w: corrupt pdf: %v", domain.ErrExtraction, r)
		}
	}()

	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	return &document{r: r}, nil
}

type document struct {
	r *lpdf.Reader
}

func (d *document) PageCount() int {
	return d.r.NumPage()
}

// PageText concatenates the runs of each text row and joins rows with a space.
// The parser panics on some malformed content streams; that is reported as an error.
func (d *document) PageText(n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed page %d: %v", n, r)
		}
	}()

	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for _, t := range row.Content {
			b.WriteString(t.S)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, " "), nil
}

// Close is a no-op: the document is held in memory.
func (d *document) Close() error {
	return nil
}
