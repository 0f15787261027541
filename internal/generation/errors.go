package generation

import "errors"

var (
	// ErrInvalidConfig is returned when an adapter is constructed with unusable settings.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyResponse is returned when a vendor answers without any content.
	ErrEmptyResponse = errors.New("empty response from language model")
)
