package errs

import "errors"

// Sentinel errors for the domain layer.
// Lower layers wrap these so the API and CLI can pick a response without
// knowing where the failure came from.

var (
	// ErrInvalidInput is returned when caller-supplied options (timezone, dates, limits) are invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSystem is returned when an unexpected system error occurs.
	ErrSystem = errors.New("system error")
)
