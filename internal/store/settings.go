package store

import "context"

// Setting keys.
const (
	SettingAdminPasswordHash = "admin_password_hash"
)

// SettingsStore is a small key/value table.
type SettingsStore interface {
	// Get returns ErrSettingNotFound when key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set inserts or replaces key.
	Set(ctx context.Context, key, value string) error
}
