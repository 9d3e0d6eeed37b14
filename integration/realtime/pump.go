package realtime

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/sessionguard/pkg/logger"
)

// ActivityGuard is the surface of guard.Guard the pump feeds.
type ActivityGuard interface {
	RecordActivity()
	HandleError(err error) bool
}

// Pump bridges a websocket connection into the session guard: every inbound
// message counts as user activity, and connection drops are reported as
// ambient errors so the guard's filter can ignore them. A dropped transport
// must never terminate a valid session.
type Pump struct {
	guard        ActivityGuard
	log          *slog.Logger
	upgrader     *websocket.Upgrader
	pingInterval time.Duration
	pongWait     time.Duration
}

// Option configures a Pump.
type Option func(*Pump)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pump) {
		if log != nil {
			p.log = log
		}
	}
}

// WithOriginCheck overrides the upgrader's origin policy.
func WithOriginCheck(fn func(r *http.Request) bool) Option {
	return func(p *Pump) {
		p.upgrader.CheckOrigin = fn
	}
}

// WithPingInterval sets how often keepalive pings are sent. The pong wait
// is derived from it and always exceeds the interval.
func WithPingInterval(interval time.Duration) Option {
	return func(p *Pump) {
		if interval > 0 {
			p.pingInterval = interval
			p.pongWait = interval * 2
		}
	}
}

// New creates a pump feeding the given guard.
func New(guard ActivityGuard, opts ...Option) *Pump {
	p := &Pump{
		guard: guard,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		pingInterval: 30 * time.Second,
		pongWait:     60 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handler upgrades the request and runs the pump until the connection drops
// or the request context is cancelled.
func (p *Pump) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := p.upgrader.Upgrade(w, r, nil)
		if err != nil {
			p.log.WarnContext(r.Context(), "websocket upgrade failed",
				logger.Component("realtime"),
				logger.Error(err),
			)
			return
		}
		p.Run(r.Context(), conn)
	})
}

// Run consumes the connection on the calling goroutine. It closes the
// connection before returning.
func (p *Pump) Run(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	// Cancellation unblocks the blocking ReadMessage by closing the conn.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	_ = conn.SetReadDeadline(time.Now().Add(p.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(p.pongWait))
	})

	pingDone := make(chan struct{})
	defer close(pingDone)
	go p.keepalive(conn, pingDone)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			// Transport drops flow through the guard's error filter, which
			// classifies them as ignorable network noise.
			p.guard.HandleError(err)
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				p.log.DebugContext(ctx, "websocket connection dropped",
					logger.Component("realtime"),
					logger.Error(err),
				)
			}
			return
		}
		p.guard.RecordActivity()
	}
}

func (p *Pump) keepalive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(p.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(p.pingInterval / 2)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}
