package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactrelay/contactrelay/internal/config"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	rdb, err := NewRedis(config.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr)})
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })
	return rdb, mr
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}

func TestHitCountsWithinWindow(t *testing.T) {
	rdb, mr := newTestRedis(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, ttl, err := rdb.Hit(ctx, "ratelimit:send:203.0.113.7", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
		assert.Equal(t, time.Minute, ttl)
	}

	mr.FastForward(time.Minute)

	count, _, err := rdb.Hit(ctx, "ratelimit:send:203.0.113.7", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHitKeysAreIndependent(t *testing.T) {
	rdb, _ := newTestRedis(t)
	ctx := context.Background()

	_, _, err := rdb.Hit(ctx, "a", time.Minute)
	require.NoError(t, err)
	count, _, err := rdb.Hit(ctx, "b", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHealthCheck(t *testing.T) {
	rdb, mr := newTestRedis(t)
	require.NoError(t, rdb.HealthCheck(context.Background()))

	mr.Close()
	assert.Error(t, rdb.HealthCheck(context.Background()))
}

func TestNewRedisUnreachable(t *testing.T) {
	rdb, err := NewRedis(config.RedisConfig{Host: "127.0.0.1", Port: 1})
	require.Error(t, err)
	assert.Nil(t, rdb)
	assert.Contains(t, err.Error(), "failed to ping Redis")
}
