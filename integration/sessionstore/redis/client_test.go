package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionguard/integration/sessionstore/redis"
)

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	client, err := redis.Connect(context.Background(), redis.Config{})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
}

func TestConnect_MalformedURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{name: "wrong scheme", url: "http://localhost:6379"},
		{name: "garbage", url: "not-a-url"},
		{name: "postgres scheme", url: "postgres://localhost:5432/db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: tt.url})
			assert.Nil(t, client)
			assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
		})
	}
}

func TestConnect_UnreachableHost(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// A reserved TEST-NET address that nothing listens on.
	client, err := redis.Connect(ctx, redis.Config{
		ConnectionURL:  "redis://192.0.2.1:6379/0",
		RetryAttempts:  2,
		RetryInterval:  50 * time.Millisecond,
		ConnectTimeout: time.Second,
	})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

func TestNewStore_Validation(t *testing.T) {
	t.Parallel()

	cfg := redis.Config{SessionKeyPrefix: "session:"}

	t.Run("empty session id", func(t *testing.T) {
		t.Parallel()

		store, err := redis.NewStore(nil, cfg, "")
		assert.Nil(t, store)
		assert.ErrorIs(t, err, redis.ErrEmptySessionID)
	})

	t.Run("key is prefixed", func(t *testing.T) {
		t.Parallel()

		store, err := redis.NewStore(nil, cfg, "abc123")
		require.NoError(t, err)
		assert.Equal(t, "session:abc123", store.Key())
	})
}
