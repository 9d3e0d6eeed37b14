package errfilter

import "errors"

var (
	// ErrMissingProfilePath is returned when the filter is configured
	// without a profile endpoint path.
	ErrMissingProfilePath = errors.New("profile endpoint path is required")
	// ErrMissingAPIPrefix is returned when the filter is configured
	// without an API prefix.
	ErrMissingAPIPrefix = errors.New("API prefix is required")
)
