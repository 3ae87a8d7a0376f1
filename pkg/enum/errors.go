package enum

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownName        = errors.New("unknown enumeration name")
	ErrUnknownValue       = errors.New("unknown enumeration value")
	ErrUnknownEnumeration = errors.New("unknown enumeration")
	ErrAlreadyRegistered  = errors.New("enumeration already registered")
)

// LookupError describes a failed name or value lookup.
type LookupError struct {
	Enumeration string
	Key         any
	Err         error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Enumeration, e.Err, e.Key)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// IsLookupError reports whether err is a *LookupError.
func IsLookupError(err error) bool {
	var e *LookupError
	return errors.As(err, &e)
}
