package guard

import (
	"context"
	"time"
)

// SessionStore invalidates the server-side session. Logout is best-effort:
// the guard logs failures and proceeds with the redirect regardless, since
// the local trust decision is already made.
type SessionStore interface {
	Logout(ctx context.Context) error
}

// Notifier delivers one-shot user-visible messages. Warning takes a display
// duration so the idle warning can stay visible for the whole lead time.
type Notifier interface {
	Info(text string)
	Warning(text string, duration time.Duration)
	Error(text string)
}

// NavigateOptions controls how the navigator performs a redirect.
type NavigateOptions struct {
	// ReplaceHistory replaces the current history entry instead of
	// pushing a new one, so "back" cannot return to the dead session.
	ReplaceHistory bool
}

// Navigator moves the user to another location.
type Navigator interface {
	Redirect(path string, opts NavigateOptions)
}

// EventSource delivers ambient activity and error events over channels, in
// the style of an in-memory event bus. A closed channel detaches that feed;
// the guard keeps consuming the other one.
type EventSource interface {
	// Activity emits one value per qualifying user-interaction signal.
	Activity() <-chan struct{}
	// Errors emits uncaught errors and unhandled rejections for
	// classification.
	Errors() <-chan error
}
