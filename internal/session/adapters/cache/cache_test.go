package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdesk/internal/session/adapters/cache"
	svc "workdesk/internal/session/ports/services"
)

func setupCache(t *testing.T) (svc.SessionCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})

	return cache.NewRedisSessionCache(client), mr
}

func TestRedisSessionCache(t *testing.T) {
	ctx := context.Background()

	t.Run("store and get round trip", func(t *testing.T) {
		sessions, _ := setupCache(t)

		require.NoError(t, sessions.Store(ctx, "token-1", "user-123", time.Hour))

		userID, err := sessions.Get(ctx, "token-1")
		require.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("unknown token yields empty id", func(t *testing.T) {
		sessions, _ := setupCache(t)

		userID, err := sessions.Get(ctx, "ghost")

		require.NoError(t, err)
		assert.Empty(t, userID)
	})

	t.Run("expired session is gone", func(t *testing.T) {
		sessions, mr := setupCache(t)

		require.NoError(t, sessions.Store(ctx, "token-1", "user-123", time.Minute))
		mr.FastForward(2 * time.Minute)

		userID, err := sessions.Get(ctx, "token-1")
		require.NoError(t, err)
		assert.Empty(t, userID)
	})

	t.Run("delete revokes the session", func(t *testing.T) {
		sessions, _ := setupCache(t)

		require.NoError(t, sessions.Store(ctx, "token-1", "user-123", time.Hour))
		require.NoError(t, sessions.Delete(ctx, "token-1"))

		userID, err := sessions.Get(ctx, "token-1")
		require.NoError(t, err)
		assert.Empty(t, userID)
	})

	t.Run("redis failure surfaces as error", func(t *testing.T) {
		sessions, mr := setupCache(t)
		mr.Close()

		_, err := sessions.Get(ctx, "token-1")
		require.Error(t, err)
	})
}
