package errfilter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Classification is the verdict for an ambient error.
type Classification int

const (
	// ClassIgnored covers everything that is not definitive proof of an
	// auth problem: transport noise, errors without an HTTP shape, and
	// 401/403 responses from non-qualifying endpoints. Log-only.
	ClassIgnored Classification = iota
	// ClassPermission is a 403 from the API: the session is valid but the
	// action is not allowed. Notify the user, keep the session.
	ClassPermission
	// ClassCritical is a 401 from the current-user profile endpoint, the
	// single response that unambiguously proves the session is invalid.
	ClassCritical
)

func (c Classification) String() string {
	switch c {
	case ClassPermission:
		return "permission"
	case ClassCritical:
		return "critical"
	default:
		return "ignored"
	}
}

// RequestError carries the HTTP status and request URL of a failed backend
// call. It is the canonical error shape the filter inspects; wrap transport
// errors in it wherever request metadata is available.
type RequestError struct {
	Status int
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed with status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// HTTPError is an alternative shape for foreign error types that can report
// their own status and request URL.
type HTTPError interface {
	error
	HTTPStatus() int
	RequestURL() string
}

// Config holds the endpoint predicates that qualify errors as
// session-relevant.
type Config struct {
	// ProfilePath is the current-user profile endpoint. A 401 here is the
	// only critical auth failure.
	ProfilePath string `env:"GUARD_PROFILE_PATH" envDefault:"/api/users/me"`
	// APIPrefix scopes permission errors: a 403 outside of it is ignored.
	APIPrefix string `env:"GUARD_API_PREFIX" envDefault:"/api/"`
}

// DefaultConfig returns the default endpoint predicates.
func DefaultConfig() Config {
	return Config{
		ProfilePath: "/api/users/me",
		APIPrefix:   "/api/",
	}
}

// Filter classifies ambient errors against the configured endpoint
// predicates. It is a pure decision function: it holds no mutable state and
// is safe for concurrent use.
type Filter struct {
	profilePath string
	apiPrefix   string
}

// New creates a filter from cfg.
func New(cfg Config) (*Filter, error) {
	if cfg.ProfilePath == "" {
		return nil, ErrMissingProfilePath
	}
	if cfg.APIPrefix == "" {
		return nil, ErrMissingAPIPrefix
	}

	return &Filter{
		profilePath: cfg.ProfilePath,
		apiPrefix:   cfg.APIPrefix,
	}, nil
}

// Classify inspects err and returns its verdict. Errors without an HTTP
// status/URL shape, with unparseable URLs, or from endpoints outside the
// configured predicates classify as ignored.
func (f *Filter) Classify(err error) Classification {
	if err == nil {
		return ClassIgnored
	}

	status, rawURL, ok := extract(err)
	if !ok {
		return ClassIgnored
	}

	path := requestPath(rawURL)
	if path == "" {
		return ClassIgnored
	}

	switch {
	case status == http.StatusUnauthorized && path == f.profilePath:
		return ClassCritical
	case status == http.StatusForbidden && strings.HasPrefix(path, f.apiPrefix):
		return ClassPermission
	default:
		return ClassIgnored
	}
}

func extract(err error) (status int, rawURL string, ok bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status, reqErr.URL, true
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.HTTPStatus(), httpErr.RequestURL(), true
	}

	return 0, "", false
}

// requestPath extracts the path component from an absolute or relative URL.
func requestPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Path
}
