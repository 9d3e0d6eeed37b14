package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config target must not be nil")
	// ErrParseFailed is returned when environment parsing fails.
	ErrParseFailed = errors.New("failed to parse environment variables")
)
