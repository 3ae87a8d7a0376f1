package text

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File and directory operations
	ErrLoadingCancelled    = errors.New("loading translations cancelled")
	ErrFailedToReadFile    = errors.New("failed to read translation file")
	ErrFailedToParseFile   = errors.New("failed to parse translation file")
	ErrFailedToReadDir     = errors.New("failed to read translation directory")
	ErrNoTranslationsFound = errors.New("no valid translation files found")

	ErrInvalidLevel = errors.New("invalid info level")
)

// ErrLanguageNotSupported indicates that the requested language has no translations.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
