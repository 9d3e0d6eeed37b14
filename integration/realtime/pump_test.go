package realtime_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionguard/integration/realtime"
)

// recordingGuard counts activity signals and reported errors.
type recordingGuard struct {
	activity atomic.Int32
	errs     atomic.Int32
}

func (g *recordingGuard) RecordActivity() { g.activity.Add(1) }

func (g *recordingGuard) HandleError(err error) bool {
	g.errs.Add(1)
	return false
}

func dialPump(t *testing.T, g *recordingGuard, opts ...realtime.Option) *websocket.Conn {
	t.Helper()

	pump := realtime.New(g, opts...)
	srv := httptest.NewServer(pump.Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestPump_InboundMessagesCountAsActivity(t *testing.T) {
	t.Parallel()

	g := &recordingGuard{}
	conn := dialPump(t, g)

	for range 3 {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("cursor moved")))
	}

	assert.Eventually(t, func() bool {
		return g.activity.Load() == 3
	}, time.Second, 10*time.Millisecond)
}

func TestPump_DropReportedAsAmbientError(t *testing.T) {
	t.Parallel()

	g := &recordingGuard{}
	conn := dialPump(t, g)

	// Abrupt close without a close frame is an abnormal closure on the
	// server side.
	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return g.errs.Load() == 1
	}, time.Second, 10*time.Millisecond, "the drop must be reported, not swallowed")
	assert.Equal(t, int32(0), g.activity.Load())
}

func TestPump_Keepalive(t *testing.T) {
	t.Parallel()

	g := &recordingGuard{}
	conn := dialPump(t, g, realtime.WithPingInterval(50*time.Millisecond))

	pings := make(chan struct{}, 8)
	conn.SetPingHandler(func(appData string) error {
		pings <- struct{}{}
		return conn.WriteControl(websocket.PongMessage, nil, time.Now().Add(time.Second))
	})

	// Reading drives the client-side control frame handlers.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-pings:
	case <-time.After(time.Second):
		t.Fatal("expected a keepalive ping")
	}
}

func TestPump_OriginCheck(t *testing.T) {
	t.Parallel()

	g := &recordingGuard{}
	pump := realtime.New(g, realtime.WithOriginCheck(func(r *http.Request) bool {
		return false
	}))
	srv := httptest.NewServer(pump.Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://evil.example"}})
	if resp != nil {
		defer resp.Body.Close()
	}
	assert.Error(t, err)
	assert.Nil(t, conn)
}
