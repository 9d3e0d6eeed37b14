package guard

import "errors"

var (
	// ErrInvalidConfig is returned when guard timings cannot produce
	// sensible timers (e.g. warning lead time >= inactivity timeout).
	ErrInvalidConfig = errors.New("invalid guard configuration")
	// ErrMissingSessionStore is returned when no session store is provided.
	ErrMissingSessionStore = errors.New("session store is required")
	// ErrMissingNotifier is returned when no notifier is provided.
	ErrMissingNotifier = errors.New("notifier is required")
	// ErrMissingNavigator is returned when no navigator is provided.
	ErrMissingNavigator = errors.New("navigator is required")
	// ErrAlreadyStarted is returned when Start is called on a running guard.
	ErrAlreadyStarted = errors.New("guard already started")
	// ErrNotStarted is returned when Stop is called on a stopped guard.
	ErrNotStarted = errors.New("guard not started")
)
