package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when request parameters are missing or malformed.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrMissingAPIKey is returned when a provider call is attempted without a key.
	ErrMissingAPIKey = fmt.Errorf("%w: api key is required", ErrValidation)

	// ErrExtraction is returned when a document cannot be loaded or parsed.
	ErrExtraction = errors.New("document extraction failed")

	// ErrDocumentNotFound is returned when a document reference does not resolve.
	ErrDocumentNotFound = fmt.Errorf("%w: document not found", ErrExtraction)

	// ErrNoContent is returned when the selected pages contain no extractable text.
	ErrNoContent = errors.New("no extractable text in selected pages")

	// ErrUnsupportedProvider is returned when a provider has no implementation
	// for the requested capability.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrFormat is returned when model output is not the expected JSON shape.
	ErrFormat = errors.New("malformed model response")

	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an entity already exists.
	ErrDuplicate = errors.New("entity already exists")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError that wraps err (ErrValidation when nil).
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap supports errors.Is against the wrapped sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ProviderCallError is a vendor-side failure. Message carries the vendor's
// own description; StatusCode is the HTTP status when the vendor reported one.
type ProviderCallError struct {
	Provider   Provider
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s call failed (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s call failed: %s", e.Provider, e.Message)
}

func (e *ProviderCallError) Unwrap() error {
	return e.Err
}

// IsAuthFailure reports whether the vendor rejected the credentials.
func (e *ProviderCallError) IsAuthFailure() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
