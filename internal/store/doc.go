// Package store defines the persistence interfaces for books, subjects and
// settings. Implementations live in internal/platform/postgres.
package store
