// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/sessionguard/core/config"
//
//	type GuardEnv struct {
//		InactivityTimeout time.Duration `env:"GUARD_INACTIVITY_TIMEOUT" envDefault:"2h"`
//		WarningLeadTime   time.Duration `env:"GUARD_WARNING_LEAD_TIME" envDefault:"5m"`
//		LoginPath         string        `env:"GUARD_LOGIN_PATH" envDefault:"/login"`
//	}
//
//	func main() {
//		var cfg GuardEnv
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 GuardEnv
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 GuardEnv
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so the guard, the error filter,
// and integrations can each keep their own env-tagged config struct.
package config
