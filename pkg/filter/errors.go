package filter

import "errors"

var (
	ErrInvalidForm     = errors.New("unknown normalization form")
	ErrInvalidLanguage = errors.New("invalid language tag")
	ErrInvalidBounds   = errors.New("invalid filter bounds")
)
