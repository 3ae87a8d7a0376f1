package property

import (
	"errors"
	"fmt"
)

var (
	ErrRequired              = errors.New("property is required")
	ErrNotMutable            = errors.New("property is not mutable")
	ErrNotReadable           = errors.New("property is not readable")
	ErrNotWritable           = errors.New("property is not writable")
	ErrInvalidValue          = errors.New("invalid property value")
	ErrAlreadyInitialized    = errors.New("properties already initialized")
	ErrInvalidModeTransition = errors.New("invalid mode transition")
	ErrUnknownProperty       = errors.New("unknown property")
	ErrAlreadyRegistered     = errors.New("property already registered")
	ErrTypeMismatch          = errors.New("property type mismatch")
)

// Error describes a failed operation on a property.
type Error struct {
	Property string
	Op       string
	Err      error
}

func (e *Error) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("property %s: %s: %v", e.Property, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(name, op string, err error) *Error {
	return &Error{Property: name, Op: op, Err: err}
}

// IsError reports whether err is or wraps an *Error.
func IsError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
