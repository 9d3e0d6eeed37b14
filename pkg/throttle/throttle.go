package throttle

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Throttle rate-limits invocations of a single function using a
// leading+trailing policy: the first call in a window runs immediately,
// and calls arriving inside the window collapse into one deferred run at
// the window boundary. The deferred run is never dropped, so the most
// recent call's effect is always applied eventually.
type Throttle struct {
	interval time.Duration
	fn       func()
	clock    clockwork.Clock

	mu       sync.Mutex
	lastFire time.Time
	pending  bool
	timer    clockwork.Timer
	stopped  bool
}

// Option configures a Throttle.
type Option func(*Throttle)

// WithClock replaces the wall clock, primarily for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(t *Throttle) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// New creates a throttle around fn. A zero or negative interval disables
// throttling entirely: every Call runs fn immediately.
func New(interval time.Duration, fn func(), opts ...Option) *Throttle {
	if fn == nil {
		panic("throttle: fn is required")
	}

	t := &Throttle{
		interval: interval,
		fn:       fn,
		clock:    clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Call applies the leading+trailing policy. The first call in a window runs
// fn immediately; later calls inside the window arm a single deferred run at
// the window end. Safe for concurrent use.
func (t *Throttle) Call() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}

	now := t.clock.Now()
	if t.interval <= 0 || t.lastFire.IsZero() || now.Sub(t.lastFire) >= t.interval {
		t.lastFire = now
		t.mu.Unlock()
		t.fn()
		return
	}

	if !t.pending {
		t.pending = true
		delay := t.interval - now.Sub(t.lastFire)
		t.timer = t.clock.AfterFunc(delay, t.flush)
	}
	t.mu.Unlock()
}

// Force runs fn immediately, resets the window from now, and discards any
// pending deferred run. The immediate application supersedes the deferred
// one, so nothing is lost.
func (t *Throttle) Force() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.cancelLocked()
	t.lastFire = t.clock.Now()
	t.mu.Unlock()

	t.fn()
}

// Cancel discards the pending deferred run, if any. The window itself is
// left intact.
func (t *Throttle) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Stop cancels any pending run and rejects all further calls.
func (t *Throttle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.stopped = true
}

func (t *Throttle) cancelLocked() {
	t.pending = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Throttle) flush() {
	t.mu.Lock()
	if t.stopped || !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.timer = nil
	t.lastFire = t.clock.Now()
	t.mu.Unlock()

	t.fn()
}
