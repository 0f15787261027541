package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/nani-api/internal/domain"
)

// Service sentinels. The API layer maps them through the domain errors they wrap.
var (
	// ErrWrongPassword is returned by admin login and password change.
	ErrWrongPassword = fmt.Errorf("%w: wrong password", domain.ErrUnauthorized)

	// ErrInvalidAPIKey is returned when a provider accepts the call but replies with nothing.
	ErrInvalidAPIKey = fmt.Errorf("%w: api key rejected", domain.ErrUnauthorized)

	// ErrInvalidPDF is returned when an upload is not a readable PDF.
	ErrInvalidPDF = fmt.Errorf("%w: file is not a valid PDF", domain.ErrValidation)
)

// IsUnauthorized reports whether err should end an admin or key check with 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
