package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRateStore(t *testing.T) (RedisRateStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return RedisRateStore{Client: client}, mr
}

func TestRedisRateStoreCountsWithinWindow(t *testing.T) {
	store, mr := newRedisRateStore(t)
	ctx := context.Background()

	count, resetAt, err := store.Hit(ctx, "rl:k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.WithinDuration(t, time.Now().Add(time.Minute), resetAt, 2*time.Second)
	assert.Equal(t, time.Minute, mr.TTL("rl:k"))

	count, _, err = store.Hit(ctx, "rl:k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	mr.FastForward(time.Minute + time.Second)

	count, _, err = store.Hit(ctx, "rl:k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisRateStoreArmsMissingExpiry(t *testing.T) {
	store, mr := newRedisRateStore(t)
	require.NoError(t, mr.Set("rl:stuck", "500"))
	require.Zero(t, mr.TTL("rl:stuck"))

	count, _, err := store.Hit(context.Background(), "rl:stuck", time.Minute)

	require.NoError(t, err)
	assert.Equal(t, int64(501), count)
	assert.Equal(t, time.Minute, mr.TTL("rl:stuck"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("rl:stuck"))
}

func TestRedisRateStoreReportsServerErrors(t *testing.T) {
	store, mr := newRedisRateStore(t)
	mr.Close()

	_, _, err := store.Hit(context.Background(), "rl:k", time.Minute)

	assert.Error(t, err)
}
