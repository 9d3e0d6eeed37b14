package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionguard/core/guard"
	"github.com/dmitrymomot/sessionguard/middleware"
)

// stubGuard answers state queries with a fixed state and counts activity.
type stubGuard struct {
	state    guard.PresentationState
	activity atomic.Int32
}

func (s *stubGuard) RecordActivity()                { s.activity.Add(1) }
func (s *stubGuard) State() guard.PresentationState { return s.state }
func (s *stubGuard) LoginPath() string              { return "/login" }

func okHandler(hits *atomic.Int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	})
}

func TestActivity_RecordsActivityPerRequest(t *testing.T) {
	t.Parallel()

	g := &stubGuard{state: guard.StateNormal}
	var hits atomic.Int32
	h := middleware.Activity(g)(okHandler(&hits))

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, int32(3), g.activity.Load())
	assert.Equal(t, int32(3), hits.Load())
}

func TestActivity_SkipPredicate(t *testing.T) {
	t.Parallel()

	g := &stubGuard{state: guard.StateNormal}
	var hits atomic.Int32
	h := middleware.ActivityWithConfig(middleware.ActivityConfig{
		Guard: g,
		Skip: func(r *http.Request) bool {
			return strings.HasPrefix(r.URL.Path, "/health")
		},
	})(okHandler(&hits))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// Skipped requests are still served but do not count as activity.
	assert.Equal(t, int32(0), g.activity.Load())
	assert.Equal(t, int32(1), hits.Load())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	assert.Equal(t, int32(1), g.activity.Load())
}

func TestActivity_RedirectsWhenInvalidated(t *testing.T) {
	t.Parallel()

	g := &stubGuard{state: guard.StateAuthErrorFallback}
	var hits atomic.Int32
	h := middleware.Activity(g)(okHandler(&hits))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, int32(0), hits.Load(), "invalidated sessions never reach the handler")
	assert.Equal(t, int32(0), g.activity.Load(), "redirected requests do not count as activity")
}

func TestActivity_LoginPathServedDuringFallback(t *testing.T) {
	t.Parallel()

	g := &stubGuard{state: guard.StateAuthErrorFallback}
	var hits atomic.Int32
	h := middleware.Activity(g)(okHandler(&hits))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), hits.Load(), "the login page itself must stay reachable")
}

func TestActivityWithConfig_PanicsWithoutGuard(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		middleware.ActivityWithConfig(middleware.ActivityConfig{})
	})
}
