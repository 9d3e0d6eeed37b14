package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Store binds one session key in Redis to the guard.SessionStore contract.
// Logout deletes the key, which immediately invalidates the session for
// every other consumer of the store.
type Store struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
}

// NewStore creates a session store bound to a single session ID.
func NewStore(client *goredis.Client, cfg Config, sessionID string) (*Store, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	return &Store{
		client: client,
		key:    cfg.SessionKeyPrefix + sessionID,
		ttl:    cfg.SessionTTL,
	}, nil
}

// Key returns the full Redis key of the bound session.
func (s *Store) Key() string { return s.key }

// Logout deletes the session key. Deleting an already-absent key is not an
// error: logout is idempotent.
func (s *Store) Logout(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// Touch extends the session's sliding expiration. Callers typically wire it
// to guard activity so the server-side session outlives active users but not
// idle ones.
func (s *Store) Touch(ctx context.Context) error {
	if s.ttl <= 0 {
		return nil
	}
	return s.client.Expire(ctx, s.key, s.ttl).Err()
}

// Exists reports whether the bound session is still present.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	n, err := s.client.Exists(ctx, s.key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
