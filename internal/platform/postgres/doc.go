// Package postgres implements the store interfaces on PostgreSQL through
// database/sql with the pgx driver, and owns the embedded goose migrations.
package postgres
