// Package guard implements a session inactivity and authentication guard:
// it watches user activity, warns before the idle deadline, forces logout
// when it passes, and intercepts critical authentication errors.
//
// # Lifecycle
//
// A Guard wraps one authenticated session. Start arms the warning and
// logout timers and optionally begins consuming a channel-based event
// source; Stop deterministically releases every timer and listener it
// acquired, whatever state the guard is in.
//
//	g, err := guard.New(guard.DefaultConfig(), store, notifier, navigator)
//	if err != nil {
//		log.Fatal(err) // bad timings are a construction error
//	}
//	if err := g.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer g.Stop()
//
// # Activity tracking
//
// Every qualifying interaction signal goes through RecordActivity, which is
// throttled (leading+trailing) so bursts of input cause at most one timer
// reschedule per window while the last event is never lost. Rescheduling is
// atomic: a generation counter guarantees at most one live logout timer, and
// a stale timer that fires late is a no-op. ReportActivity bypasses the
// throttle for explicit "user is active" assertions (a successful API call,
// the warning modal's stay-logged-in button).
//
// # Presentation
//
// The guard owns a single PresentationState: Normal, InactivityWarning
// (re-entrant), or AuthErrorFallback (terminal). ViewFor maps the state to
// one of three renderable surfaces; observers register WithOnStateChange.
//
// # Invalidation
//
// Session invalidation is a one-way, idempotent sequence: fallback state
// (skipped for user-requested logouts), a reason-specific notification, a
// best-effort server-side logout that never blocks, and a delayed redirect
// to the login page with history replacement. Once begun it cannot be
// rescued by late activity; concurrent triggers run it exactly once.
//
// # Error interception
//
// HandleError feeds ambient errors through the errfilter package: a 401
// from the current-user profile endpoint invalidates the session, a 403
// under the API prefix surfaces a permission notification, and everything
// else - including realtime transport drops - is logged and ignored so
// network noise can never terminate a valid session.
package guard
