package notify

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/sessionguard/pkg/broadcast"
	"github.com/dmitrymomot/sessionguard/pkg/logger"
)

// DefaultBufferSize is the per-subscriber notification buffer.
const DefaultBufferSize = 32

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a one-shot user-visible message.
type Notification struct {
	ID    uuid.UUID
	Level Level
	Text  string
	// Duration is how long the message should stay visible; zero means
	// the presenting layer's default.
	Duration  time.Duration
	CreatedAt time.Time
}

// Center fans notifications out to subscribers (an SSE layer, a websocket
// pusher, a test) and mirrors them into the structured log. It satisfies the
// guard's Notifier contract.
type Center struct {
	broadcaster *broadcast.MemoryBroadcaster[Notification]
	log         *slog.Logger
	clock       clockwork.Clock
}

// Option configures a Center.
type Option func(*Center)

// WithLogger sets the logger for notification mirroring.
func WithLogger(log *slog.Logger) Option {
	return func(c *Center) {
		if log != nil {
			c.log = log
		}
	}
}

// WithBufferSize sets the per-subscriber buffer size.
func WithBufferSize(size int) Option {
	return func(c *Center) {
		if size > 0 {
			c.broadcaster = broadcast.NewMemoryBroadcaster[Notification](size)
		}
	}
}

// WithClock replaces the wall clock, primarily for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Center) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewCenter creates a notification center.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		broadcaster: broadcast.NewMemoryBroadcaster[Notification](DefaultBufferSize),
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:       clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Info publishes an informational message.
func (c *Center) Info(text string) {
	c.publish(LevelInfo, text, 0)
}

// Warning publishes a warning that should stay visible for duration.
func (c *Center) Warning(text string, duration time.Duration) {
	c.publish(LevelWarning, text, duration)
}

// Error publishes an error message.
func (c *Center) Error(text string) {
	c.publish(LevelError, text, 0)
}

// Subscribe returns a subscriber receiving future notifications until ctx is
// cancelled or the subscriber is closed.
func (c *Center) Subscribe(ctx context.Context) broadcast.Subscriber[Notification] {
	return c.broadcaster.Subscribe(ctx)
}

// Close shuts down the center and releases all subscribers.
func (c *Center) Close() error {
	return c.broadcaster.Close()
}

func (c *Center) publish(level Level, text string, duration time.Duration) {
	n := Notification{
		ID:        uuid.New(),
		Level:     level,
		Text:      text,
		Duration:  duration,
		CreatedAt: c.clock.Now(),
	}

	c.log.Info("notification published",
		logger.Component("notify"),
		slog.String("level", level.String()),
		slog.String("text", text),
	)

	// Delivery is best-effort: a closed center only logs.
	if err := c.broadcaster.Broadcast(context.Background(), broadcast.Message[Notification]{Data: n}); err != nil {
		c.log.Warn("notification dropped", logger.Error(err))
	}
}
