// Package middleware provides net/http middleware that feeds the session
// guard.
//
// The activity middleware counts qualifying requests as user activity and
// answers requests on an invalidated session with a redirect to the login
// page.
//
// # Basic Usage
//
//	mux := http.NewServeMux()
//	mux.Handle("/", middleware.Activity(g)(appHandler))
//
// # Skipping Background Endpoints
//
// Health checks and background polling must not keep a session alive:
//
//	h := middleware.ActivityWithConfig(middleware.ActivityConfig{
//		Guard: g,
//		Skip: func(r *http.Request) bool {
//			return r.URL.Path == "/health" || r.URL.Path == "/metrics"
//		},
//	})(appHandler)
//
// Skipped requests are served normally; they just do not count as activity.
// Once the guard enters the auth-error fallback state every request except
// the login page itself receives a 303 redirect, so stale tabs converge on
// the login screen.
package middleware
