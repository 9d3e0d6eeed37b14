package guard

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/sessionguard/core/errfilter"
	"github.com/dmitrymomot/sessionguard/pkg/logger"
	"github.com/dmitrymomot/sessionguard/pkg/throttle"
)

// logoutCallTimeout bounds the best-effort server-side logout call.
const logoutCallTimeout = 10 * time.Second

// User-facing message texts. The mechanical invalidation flow is identical
// for every reason; only the text differs.
const (
	warningText       = "You will be signed out soon due to inactivity."
	inactivityText    = "Your session has expired due to inactivity. Please sign in again."
	authFailureText   = "Your session is no longer valid. Please sign in again."
	userRequestedText = "You have been signed out."
	permissionText    = "You do not have permission to perform this action."
)

// Guard tracks session activity and intercepts authentication errors. It
// arms a warning timer and a logout timer from the last observed activity,
// coalesces activity bursts through a leading+trailing throttle, and drives
// the one-way invalidation sequence (notify, best-effort logout, delayed
// redirect) when the session must end.
//
// A Guard owns its activity state, both timers, and the presentation state
// exclusively; collaborators are only ever called, never mutated.
type Guard struct {
	cfg       Config
	store     SessionStore
	notifier  Notifier
	navigator Navigator
	filter    *errfilter.Filter
	source    EventSource
	clock     clockwork.Clock
	log       *slog.Logger
	onChange  func(PresentationState)

	throttle *throttle.Throttle

	mu           sync.Mutex
	started      bool
	state        PresentationState
	lastActivity time.Time
	// generation makes cancel-then-reschedule atomic: every reschedule
	// bumps it, and a timer callback that observes a stale generation is
	// a no-op even if it fired before Stop could reach it.
	generation    uint64
	warningTimer  clockwork.Timer
	logoutTimer   clockwork.Timer
	redirectTimer clockwork.Timer
	redirectAt    time.Time
	invalidating  bool
	cancelSource  context.CancelFunc
	sourceDone    chan struct{}
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// WithClock replaces the wall clock, primarily for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(g *Guard) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// WithEventSource attaches a channel-based source of ambient activity and
// error events. Start consumes it until Stop or context cancellation.
func WithEventSource(source EventSource) Option {
	return func(g *Guard) {
		g.source = source
	}
}

// WithErrorFilter replaces the default error classification filter.
func WithErrorFilter(filter *errfilter.Filter) Option {
	return func(g *Guard) {
		if filter != nil {
			g.filter = filter
		}
	}
}

// WithOnStateChange registers an observer invoked after every presentation
// state transition. The callback runs outside the guard's lock but must
// still be quick; rendering layers should hand off to their own loop.
func WithOnStateChange(fn func(PresentationState)) Option {
	return func(g *Guard) {
		g.onChange = fn
	}
}

// New creates a guard. Configuration is validated here: nonsensical timings
// are a construction error, never a runtime fault.
func New(cfg Config, store SessionStore, notifier Notifier, navigator Navigator, opts ...Option) (*Guard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrMissingSessionStore
	}
	if notifier == nil {
		return nil, ErrMissingNotifier
	}
	if navigator == nil {
		return nil, ErrMissingNavigator
	}

	g := &Guard{
		cfg:       cfg,
		store:     store,
		notifier:  notifier,
		navigator: navigator,
		clock:     clockwork.NewRealClock(),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:     StateNormal,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.filter == nil {
		filter, err := errfilter.New(errfilter.DefaultConfig())
		if err != nil {
			return nil, err
		}
		g.filter = filter
	}

	g.throttle = throttle.New(cfg.ActivityThrottleInterval, g.applyActivity, throttle.WithClock(g.clock))

	return g, nil
}

// Start arms the warning and logout timers from now and, when an event
// source is configured, begins consuming it. The ctx bounds the event-source
// consumption; timers live until Stop.
func (g *Guard) Start(ctx context.Context) error {
	g.mu.Lock()
	if g.started {
		g.mu.Unlock()
		return ErrAlreadyStarted
	}
	g.started = true
	g.armLocked(g.clock.Now())

	if g.source != nil {
		srcCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		g.cancelSource = cancel
		g.sourceDone = done
		go g.consume(srcCtx, done)
	}
	g.mu.Unlock()

	g.log.InfoContext(ctx, "session guard started",
		logger.Component("guard"),
		slog.Duration("inactivity_timeout", g.cfg.InactivityTimeout),
		slog.Duration("warning_lead_time", g.cfg.WarningLeadTime),
	)
	return nil
}

// Stop releases every timer and the event-source consumer acquired by
// Start, regardless of the current presentation state. The guard does not
// redirect or notify after Stop returns.
func (g *Guard) Stop() error {
	g.mu.Lock()
	if !g.started {
		g.mu.Unlock()
		return ErrNotStarted
	}
	g.started = false
	g.generation++
	g.stopSessionTimersLocked()
	if g.redirectTimer != nil {
		g.redirectTimer.Stop()
		g.redirectTimer = nil
	}
	g.redirectAt = time.Time{}
	cancel := g.cancelSource
	done := g.sourceDone
	g.cancelSource = nil
	g.sourceDone = nil
	g.mu.Unlock()

	g.throttle.Cancel()

	if cancel != nil {
		cancel()
		<-done
	}

	g.log.Info("session guard stopped", logger.Component("guard"))
	return nil
}

// RecordActivity registers a qualifying user-interaction signal. Calls are
// coalesced by the activity throttle: the first in a window applies
// immediately, the rest collapse into one trailing update, so activity is
// never silently lost under continuous input.
func (g *Guard) RecordActivity() {
	g.throttle.Call()
}

// ReportActivity asserts the user is active right now (e.g. after a
// successful API call), bypassing the throttle window. The immediate update
// supersedes and discards any pending trailing one.
func (g *Guard) ReportActivity() {
	g.throttle.Force()
}

// StayLoggedIn is the warning-modal confirm action: re-arms both timers
// from now and clears the warning.
func (g *Guard) StayLoggedIn() {
	g.ReportActivity()
}

// LogoutNow is the warning-modal sign-out action: invalidates the session
// immediately with the user-requested reason.
func (g *Guard) LogoutNow() {
	g.invalidate(ReasonUserRequested)
}

// HandleError classifies an ambient error and reacts per policy. It returns
// true only when the error was consumed as a critical auth failure, in which
// case callers should suppress further propagation.
func (g *Guard) HandleError(err error) bool {
	class := g.filter.Classify(err)
	switch class {
	case errfilter.ClassCritical:
		g.log.Warn("critical auth failure intercepted",
			logger.Component("guard"),
			logger.Classification(class.String()),
			logger.Error(err),
		)
		g.invalidate(ReasonAuthFailure)
		return true
	case errfilter.ClassPermission:
		g.log.Info("permission denied",
			logger.Component("guard"),
			logger.Classification(class.String()),
			logger.Error(err),
		)
		g.notifier.Error(permissionText)
		return false
	default:
		g.log.Debug("ambient error ignored",
			logger.Component("guard"),
			logger.Classification(class.String()),
			logger.Error(err),
		)
		return false
	}
}

// State returns the current presentation state.
func (g *Guard) State() PresentationState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// LastActivity returns the timestamp of the last applied activity update.
func (g *Guard) LastActivity() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastActivity
}

// LoginPath returns the configured post-invalidation redirect target.
func (g *Guard) LoginPath() string {
	return g.cfg.LoginPath
}

// RedirectCountdown reports how long until the guard navigates to the login
// page. The second return is false while no redirect is scheduled.
func (g *Guard) RedirectCountdown() (time.Duration, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.redirectAt.IsZero() {
		return 0, false
	}
	remaining := g.redirectAt.Sub(g.clock.Now())
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// applyActivity is the throttled activity update: store the timestamp,
// clear the warning if shown, and re-arm both timers as one atomic step.
func (g *Guard) applyActivity() {
	g.mu.Lock()
	if !g.started || g.invalidating || g.state == StateAuthErrorFallback {
		g.mu.Unlock()
		return
	}

	cleared := false
	if g.state == StateInactivityWarning {
		g.state = StateNormal
		cleared = true
	}
	g.armLocked(g.clock.Now())
	onChange := g.onChange
	g.mu.Unlock()

	if cleared {
		g.log.Debug("inactivity warning cleared by activity", logger.Component("guard"))
		if onChange != nil {
			onChange(StateNormal)
		}
	}
}

// armLocked cancels and re-arms both timers under the mutex. The generation
// bump invalidates every previously scheduled callback, so two rapid
// activity events can never leave two live logout timers behind.
func (g *Guard) armLocked(now time.Time) {
	g.generation++
	gen := g.generation
	g.lastActivity = now
	g.stopSessionTimersLocked()
	g.warningTimer = g.clock.AfterFunc(g.cfg.InactivityTimeout-g.cfg.WarningLeadTime, func() {
		g.onWarning(gen)
	})
	g.logoutTimer = g.clock.AfterFunc(g.cfg.InactivityTimeout, func() {
		g.onLogout(gen)
	})
}

func (g *Guard) stopSessionTimersLocked() {
	if g.warningTimer != nil {
		g.warningTimer.Stop()
		g.warningTimer = nil
	}
	if g.logoutTimer != nil {
		g.logoutTimer.Stop()
		g.logoutTimer = nil
	}
}

// onWarning fires at the warning deadline. It leaves the logout timer
// untouched: the warning only announces what is about to happen.
func (g *Guard) onWarning(gen uint64) {
	g.mu.Lock()
	if gen != g.generation || !g.started || g.invalidating || g.state != StateNormal {
		g.mu.Unlock()
		return
	}
	g.state = StateInactivityWarning
	onChange := g.onChange
	g.mu.Unlock()

	g.log.Info("inactivity warning shown",
		logger.Component("guard"),
		logger.State(StateInactivityWarning.String()),
		slog.Duration("time_until_logout", g.cfg.WarningLeadTime),
	)
	g.notifier.Warning(warningText, g.cfg.WarningLeadTime)
	if onChange != nil {
		onChange(StateInactivityWarning)
	}
}

// onLogout fires at the logout deadline. Timers can fire late (host
// suspend/resume) but must never log out on stale data, so the elapsed idle
// time is re-validated against the stored timestamp before invalidating; a
// premature fire re-arms for the remainder.
func (g *Guard) onLogout(gen uint64) {
	g.mu.Lock()
	if gen != g.generation || !g.started || g.invalidating {
		g.mu.Unlock()
		return
	}

	idle := g.clock.Now().Sub(g.lastActivity)
	if idle < g.cfg.InactivityTimeout {
		g.logoutTimer = g.clock.AfterFunc(g.cfg.InactivityTimeout-idle, func() {
			g.onLogout(gen)
		})
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	g.invalidate(ReasonInactivity)
}

// invalidate performs the irreversible transition out of the authenticated
// session: fallback state (except for user-requested logouts), notification,
// best-effort server-side logout, delayed redirect. Idempotent: concurrent
// triggers run the sequence exactly once, and later activity cannot cancel
// it once it has begun.
func (g *Guard) invalidate(reason Reason) {
	g.mu.Lock()
	if g.invalidating || !g.started {
		g.mu.Unlock()
		return
	}
	g.invalidating = true
	g.generation++
	g.stopSessionTimersLocked()

	changed := false
	if reason != ReasonUserRequested && g.state != StateAuthErrorFallback {
		g.state = StateAuthErrorFallback
		changed = true
	}
	newState := g.state
	onChange := g.onChange

	g.redirectAt = g.clock.Now().Add(g.cfg.RedirectDelay)
	g.redirectTimer = g.clock.AfterFunc(g.cfg.RedirectDelay, func() {
		g.navigator.Redirect(g.cfg.LoginPath, NavigateOptions{ReplaceHistory: true})
	})
	g.mu.Unlock()

	g.throttle.Cancel()

	g.log.Info("session invalidated",
		logger.Component("guard"),
		logger.Reason(string(reason)),
		logger.State(newState.String()),
	)

	switch reason {
	case ReasonInactivity:
		g.notifier.Error(inactivityText)
	case ReasonAuthFailure:
		g.notifier.Error(authFailureText)
	case ReasonUserRequested:
		g.notifier.Info(userRequestedText)
	}
	if changed && onChange != nil {
		onChange(newState)
	}

	// The server-side logout must not delay the redirect: run it in the
	// background with its own deadline and log the outcome only.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), logoutCallTimeout)
		defer cancel()
		if err := g.store.Logout(ctx); err != nil {
			g.log.Error("best-effort logout failed",
				logger.Component("guard"),
				logger.Reason(string(reason)),
				logger.Error(err),
			)
		}
	}()
}

// consume pumps the event source into the guard until ctx is cancelled or
// both channels close.
func (g *Guard) consume(ctx context.Context, done chan struct{}) {
	defer close(done)

	activity := g.source.Activity()
	errs := g.source.Errors()

	for activity != nil || errs != nil {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-activity:
			if !ok {
				activity = nil
				continue
			}
			g.RecordActivity()
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			g.HandleError(err)
		}
	}
}
