package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/pkg/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*cache.RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := cache.NewRedisCache(logger, client, "order:", ttl)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Minute)

	require.NoError(t, c.Start(ctx))

	c.Set(ctx, "42", []byte("payload"))

	got, ok := c.Get(ctx, "42")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), got)
	assert.True(t, mr.Exists("order:42"), "key must be stored under the prefix")
	assert.Equal(t, time.Minute, mr.TTL("order:42"))
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newRedisCache(t, time.Minute)

	_, ok := c.Get(context.Background(), "missing")
	assert.False(t, ok)
}

func TestRedisCache_Expires(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Minute)

	c.Set(ctx, "1", []byte("x"))
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "1")
	assert.False(t, ok)
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, _ := newRedisCache(t, time.Minute)

	c.Set(ctx, "1", []byte("x"))
	c.Delete(ctx, "1")

	_, ok := c.Get(ctx, "1")
	assert.False(t, ok)
}

func TestRedisCache_ServerDownIsMiss(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Minute)

	c.Set(ctx, "1", []byte("x"))
	mr.Close()

	_, ok := c.Get(ctx, "1")
	assert.False(t, ok)
	assert.Error(t, c.Start(ctx))
}
