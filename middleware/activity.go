package middleware

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionguard/core/guard"
	"github.com/dmitrymomot/sessionguard/pkg/logger"
)

// SessionGuard is the surface of guard.Guard the activity middleware needs.
type SessionGuard interface {
	RecordActivity()
	State() guard.PresentationState
	LoginPath() string
}

// ActivityConfig configures the session activity middleware.
type ActivityConfig struct {
	// Guard receives activity signals and answers state queries. Required.
	Guard SessionGuard

	// Skip defines requests that do not count as user activity, such as
	// health checks and background polling endpoints.
	Skip func(r *http.Request) bool

	// Logger is the slog logger to use (default: discard)
	Logger *slog.Logger
}

// Activity creates a session activity middleware with default configuration.
// Every request that passes through counts as user activity, and once the
// session is invalidated all requests are answered with a redirect to the
// login page.
func Activity(g SessionGuard) func(http.Handler) http.Handler {
	return ActivityWithConfig(ActivityConfig{Guard: g})
}

// ActivityWithConfig creates a session activity middleware with custom
// configuration. It panics when no guard is provided: wiring the middleware
// without a guard is a programming error, not a runtime condition.
func ActivityWithConfig(cfg ActivityConfig) func(http.Handler) http.Handler {
	if cfg.Guard == nil {
		panic("middleware: activity middleware requires a session guard")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Guard.State() == guard.StateAuthErrorFallback {
				loginPath := cfg.Guard.LoginPath()
				if r.URL.Path == loginPath {
					next.ServeHTTP(w, r)
					return
				}
				cfg.Logger.DebugContext(r.Context(), "request on invalidated session redirected",
					logger.Component("middleware.activity"),
					logger.Path(r.URL.Path),
					logger.StatusCode(http.StatusSeeOther),
				)
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			if cfg.Skip == nil || !cfg.Skip(r) {
				cfg.Guard.RecordActivity()
			}

			next.ServeHTTP(w, r)
		})
	}
}
