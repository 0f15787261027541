package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/nani-api/internal/domain"
)

// Store sentinels wrap the domain ones so callers can match either.
var (
	ErrNotFound = fmt.Errorf("%w", domain.ErrNotFound)

	ErrDuplicate = fmt.Errorf("%w", domain.ErrDuplicate)

	ErrInvalidEntity = errors.New("invalid entity")

	ErrBookNotFound = fmt.Errorf("%w: book", ErrNotFound)

	ErrSubjectNotFound = fmt.Errorf("%w: subject", ErrNotFound)

	ErrSettingNotFound = fmt.Errorf("%w: setting", ErrNotFound)

	ErrSubjectExists = fmt.Errorf("%w: subject", ErrDuplicate)
)

// IsNotFoundError reports whether err is any not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any duplicate error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError adds entity and operation context to a database failure.
type StoreError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Message: message, Err: err}
}
