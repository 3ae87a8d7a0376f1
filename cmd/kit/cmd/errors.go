package cmd

import "errors"

var (
	errEmptyModifierName = errors.New("empty modifier name")
	errMalformedProperty = errors.New("malformed property, expected key=value")
	errUnknownKey        = errors.New("unknown message key")
)
