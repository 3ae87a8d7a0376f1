package constraint

import "errors"

var (
	ErrInvalidBounds  = errors.New("invalid constraint bounds")
	ErrInvalidPattern = errors.New("invalid constraint pattern")
	ErrEmptyChoice    = errors.New("choice constraint needs at least one value")
	ErrInvalidOption  = errors.New("invalid constraint option")
)
