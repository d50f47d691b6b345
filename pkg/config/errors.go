package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidLogLevel is returned for log levels slog does not recognize
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrLoadingProfiles is returned when the profiles file cannot be read or decoded
	ErrLoadingProfiles = errors.New("failed to load sanitize profiles")

	// ErrProfileNotFound is returned when a requested profile is not defined
	ErrProfileNotFound = errors.New("sanitize profile not found")
)
