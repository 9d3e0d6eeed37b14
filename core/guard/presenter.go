package guard

// View identifies which of the three renderable surfaces the application
// should show for a presentation state.
type View int

const (
	// ViewContent renders the wrapped application content untouched.
	ViewContent View = iota
	// ViewInactivityWarning renders the warning modal on top of the
	// content. Its confirm action dispatches StayLoggedIn, its sign-out
	// action dispatches LogoutNow.
	ViewInactivityWarning
	// ViewAuthErrorFallback renders the full-screen auth-error page with
	// a redirect countdown (see Guard.RedirectCountdown).
	ViewAuthErrorFallback
)

func (v View) String() string {
	switch v {
	case ViewInactivityWarning:
		return "inactivity_warning"
	case ViewAuthErrorFallback:
		return "auth_error_fallback"
	default:
		return "content"
	}
}

// ViewFor maps a presentation state to the surface to render. Pure function:
// all business logic lives in the guard, the renderer only dispatches the
// two warning-modal actions back into it.
func ViewFor(state PresentationState) View {
	switch state {
	case StateInactivityWarning:
		return ViewInactivityWarning
	case StateAuthErrorFallback:
		return ViewAuthErrorFallback
	default:
		return ViewContent
	}
}

// CurrentView is a convenience for renderers polling the guard directly.
func (g *Guard) CurrentView() View {
	return ViewFor(g.State())
}
