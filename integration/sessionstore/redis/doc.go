// Package redis provides Redis-backed session storage for the session guard.
//
// It wraps the go-redis client with connection validation, retry logic, and
// a Store type that satisfies guard.SessionStore for a single session key.
//
// # Connection
//
// Connect validates the Redis URL, attempts connection with exponential
// backoff, and verifies connectivity with a ping before returning:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Both redis:// and rediss:// (TLS) URL schemes are supported. The retry
// loop respects context cancellation and the configured connect timeout.
//
// # Session storage
//
// A Store binds one session key. Its Logout deletes the key, Touch extends
// the sliding TTL on activity, and Exists answers liveness queries:
//
//	store, err := redis.NewStore(client, cfg, sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//	g, err := guard.New(guard.DefaultConfig(), store, notifier, navigator)
//
// # Health checking
//
// Healthcheck returns a ping-based probe suitable for readiness endpoints:
//
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := redis.Healthcheck(client)(r.Context()); err != nil {
//			http.Error(w, "redis unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
//
// # Error handling
//
// The package defines domain-specific errors checkable with errors.Is():
// ErrFailedToParseRedisConnString, ErrRedisNotReady, ErrEmptyConnectionURL,
// ErrHealthcheckFailed, and ErrEmptySessionID. They wrap the underlying
// go-redis errors while providing stable types for application-level
// handling.
package redis
