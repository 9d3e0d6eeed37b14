package redis

import "time"

// Config contains Redis connection and session storage settings.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	// SessionKeyPrefix namespaces session keys within the Redis keyspace.
	SessionKeyPrefix string `env:"REDIS_SESSION_KEY_PREFIX" envDefault:"session:"`
	// SessionTTL is the sliding lifetime applied by Touch.
	SessionTTL time.Duration `env:"REDIS_SESSION_TTL" envDefault:"24h"`
}
