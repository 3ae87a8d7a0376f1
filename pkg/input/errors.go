package input

import "errors"

var (
	// ErrNotInitialized is returned by Value before any successful SetValue.
	ErrNotInitialized = errors.New("input is not initialized")

	// ErrUnknownModifier is returned when a prototype has no modifier by that name.
	ErrUnknownModifier = errors.New("unknown modifier")

	// ErrInvalidProps is returned when modifier properties cannot be decoded.
	ErrInvalidProps = errors.New("invalid modifier properties")

	// ErrNilModifier is returned when a factory yields no modifier.
	ErrNilModifier = errors.New("modifier is nil")
)
