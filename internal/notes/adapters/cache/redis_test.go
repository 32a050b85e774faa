package cache_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/notes/adapters/cache"
	"notekeeper/internal/notes/config"
	portcache "notekeeper/internal/notes/ports/cache"
)

func setupRedisCache(t *testing.T) (*miniredis.Miniredis, portcache.Cache) {
	t.Helper()

	server := miniredis.RunT(t)

	host, portStr, err := net.SplitHostPort(server.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	redisCache, err := cache.NewRedisCache(context.Background(), &config.RedisConfig{
		Host:           host,
		Port:           port,
		ConnectTimeout: time.Second,
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		PoolSize:       2,
		DefaultTTL:     time.Minute,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, redisCache.Close())
	})

	return server, redisCache
}

func TestNewRedisCache_Connectionrefused(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	redisCache, err := cache.NewRedisCache(context.Background(), &config.RedisConfig{
		Host:           host,
		Port:           port,
		ConnectTimeout: time.Second,
	})

	require.Error(t, err)
	assert.Nil(t, redisCache)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	server, redisCache := setupRedisCache(t)

	t.Run("set then get returns the value", func(t *testing.T) {
		err := redisCache.Set(ctx, "notes:active:user-123", `[{"id":"note-1"}]`, 5*time.Minute)
		require.NoError(t, err)

		value, err := redisCache.Get(ctx, "notes:active:user-123")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"note-1"}]`, value)
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		value, err := redisCache.Get(ctx, "notes:active:unknown")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("zero ttl falls back to the default", func(t *testing.T) {
		err := redisCache.Set(ctx, "default-ttl-key", "value", 0)
		require.NoError(t, err)

		assert.Equal(t, time.Minute, server.TTL("default-ttl-key"))
	})

	t.Run("value expires after ttl", func(t *testing.T) {
		err := redisCache.Set(ctx, "expiring-key", "value", 5*time.Second)
		require.NoError(t, err)

		server.FastForward(6 * time.Second)

		value, err := redisCache.Get(ctx, "expiring-key")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	server, redisCache := setupRedisCache(t)

	require.NoError(t, server.Set("notes:active:user-123", "cached"))

	err := redisCache.Delete(ctx, "notes:active:user-123")
	require.NoError(t, err)

	assert.False(t, server.Exists("notes:active:user-123"))
}

func TestRedisCache_ServerGone(t *testing.T) {
	ctx := context.Background()
	server, redisCache := setupRedisCache(t)

	server.Close()

	_, err := redisCache.Get(ctx, "any-key")
	require.Error(t, err)

	err = redisCache.Set(ctx, "any-key", "value", time.Minute)
	require.Error(t, err)

	err = redisCache.Delete(ctx, "any-key")
	require.Error(t, err)
}
