package validator

import "errors"

// Errors returned by parse and form operations.
var (
	// ErrInvalidPayload is returned when a serialized document cannot be decoded
	// or carries the wrong type discriminator.
	ErrInvalidPayload = errors.New("invalid validator payload")

	// ErrUnknownField is returned when a form is asked to change a field it does not hold.
	ErrUnknownField = errors.New("unknown form field")
)
