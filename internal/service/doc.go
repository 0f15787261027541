// Package service holds the application use cases: the generation pipeline
// and its media stage, the textbook catalog, subjects, the admin gate and
// API key checks.
//
// Services receive their collaborators through constructors and depend on
// the interfaces in internal/store and internal/generation, never on a
// concrete vendor or database. Expected failures come back as domain or
// service sentinels that the API layer maps to status codes; unexpected
// ones are wrapped in a per-service error type carrying the operation name.
package service
