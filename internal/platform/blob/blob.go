// Package blob stores uploaded textbook files. Two backends exist: a local
// directory for development and a Google Cloud Storage bucket for deployment.
package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/nani-api/internal/config"
)

// ErrNotFound is returned by Get and Delete when the named object is absent.
var ErrNotFound = errors.New("blob not found")

// Store persists opaque objects by name.
type Store interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}

// Open returns the backend selected by cfg. The GCS client is closed by the
// returned close function.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, func() error, error) {
	switch cfg.Backend {
	case "gcs":
		s, err := NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "", "local":
		s, err := NewLocalStore(cfg.LocalDir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
