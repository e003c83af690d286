package utm

import "errors"

var (
	// ErrEmptyURL is returned when the base URL is blank after trimming.
	ErrEmptyURL = errors.New("base URL is empty")
	// ErrInvalidURL is returned when the base URL is not an absolute URL.
	ErrInvalidURL = errors.New("invalid base URL")
	// ErrMissingField is returned when the policy requires a field that was left empty.
	ErrMissingField = errors.New("missing required field")
)
