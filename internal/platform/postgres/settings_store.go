package postgres

import (
	"context"

	"github.com/phrazzld/nani-api/internal/store"
)

// PostgresSettingsStore implements store.SettingsStore.
type PostgresSettingsStore struct {
	db store.DBTX
}

var _ store.SettingsStore = (*PostgresSettingsStore)(nil)

func NewPostgresSettingsStore(db store.DBTX) *PostgresSettingsStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresSettingsStore{db: db}
}

func (s *PostgresSettingsStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return "", MapError(err, store.ErrSettingNotFound, nil)
	}
	return value, nil
}

func (s *PostgresSettingsStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return store.NewStoreError("setting", "set", "upsert failed", err)
	}
	return nil
}
