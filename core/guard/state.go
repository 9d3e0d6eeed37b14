package guard

// PresentationState is the single mutually-exclusive view mode the guard
// presents. Exactly one state is active at a time.
type PresentationState int

const (
	// StateNormal passes the wrapped application content through untouched.
	StateNormal PresentationState = iota
	// StateInactivityWarning overlays the idle warning. Re-entrant: it can
	// be shown, dismissed by activity, and shown again.
	StateInactivityWarning
	// StateAuthErrorFallback replaces the content with the auth-error
	// screen. Terminal for the guard's lifetime: it never auto-resets.
	StateAuthErrorFallback
)

func (s PresentationState) String() string {
	switch s {
	case StateInactivityWarning:
		return "inactivity_warning"
	case StateAuthErrorFallback:
		return "auth_error_fallback"
	default:
		return "normal"
	}
}

// Reason identifies what triggered session invalidation.
type Reason string

const (
	// ReasonInactivity means the logout deadline elapsed without activity.
	ReasonInactivity Reason = "inactivity"
	// ReasonAuthFailure means a critical auth failure was observed.
	ReasonAuthFailure Reason = "auth-failure"
	// ReasonUserRequested means the user chose to sign out.
	ReasonUserRequested Reason = "user-requested"
)
