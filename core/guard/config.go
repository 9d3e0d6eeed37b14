package guard

import (
	"fmt"
	"time"
)

// Config holds guard timing and routing configuration. All values are fixed
// for the guard's lifetime.
type Config struct {
	// InactivityTimeout is how long without activity before forced logout.
	InactivityTimeout time.Duration `env:"GUARD_INACTIVITY_TIMEOUT" envDefault:"2h"`
	// WarningLeadTime is how long before the logout deadline the warning
	// is shown. Must be shorter than InactivityTimeout.
	WarningLeadTime time.Duration `env:"GUARD_WARNING_LEAD_TIME" envDefault:"5m"`
	// ActivityThrottleInterval coalesces bursts of activity events into at
	// most one timer reschedule per window. Zero disables throttling.
	ActivityThrottleInterval time.Duration `env:"GUARD_ACTIVITY_THROTTLE_INTERVAL" envDefault:"30s"`
	// RedirectDelay is the pause between the invalidation notice and the
	// login redirect, long enough for the user to read the message.
	RedirectDelay time.Duration `env:"GUARD_REDIRECT_DELAY" envDefault:"2s"`
	// LoginPath is the redirect target after invalidation.
	LoginPath string `env:"GUARD_LOGIN_PATH" envDefault:"/login"`
}

// DefaultConfig returns the default guard timings.
func DefaultConfig() Config {
	return Config{
		InactivityTimeout:        2 * time.Hour,
		WarningLeadTime:          5 * time.Minute,
		ActivityThrottleInterval: 30 * time.Second,
		RedirectDelay:            2 * time.Second,
		LoginPath:                "/login",
	}
}

// Validate reports configuration that cannot produce sensible timers.
// Violations are construction-time failures, not runtime faults: the guard
// refuses to start rather than run with nonsensical deadlines.
func (c Config) Validate() error {
	if c.InactivityTimeout <= 0 {
		return fmt.Errorf("%w: inactivity timeout must be positive, got %s", ErrInvalidConfig, c.InactivityTimeout)
	}
	if c.WarningLeadTime <= 0 {
		return fmt.Errorf("%w: warning lead time must be positive, got %s", ErrInvalidConfig, c.WarningLeadTime)
	}
	if c.WarningLeadTime >= c.InactivityTimeout {
		return fmt.Errorf("%w: warning lead time %s must be shorter than inactivity timeout %s",
			ErrInvalidConfig, c.WarningLeadTime, c.InactivityTimeout)
	}
	if c.ActivityThrottleInterval < 0 {
		return fmt.Errorf("%w: activity throttle interval must not be negative, got %s",
			ErrInvalidConfig, c.ActivityThrottleInterval)
	}
	if c.RedirectDelay < 0 {
		return fmt.Errorf("%w: redirect delay must not be negative, got %s", ErrInvalidConfig, c.RedirectDelay)
	}
	if c.LoginPath == "" {
		return fmt.Errorf("%w: login path is required", ErrInvalidConfig)
	}
	return nil
}
