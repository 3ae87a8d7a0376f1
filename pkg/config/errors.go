package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed
	// into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly named .env file
	// cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidConfig is returned when parsed values are out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
