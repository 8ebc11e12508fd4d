// Package memory_test provides unit tests for the in-process cache.
package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memorycache "github.com/equityresearch/assistant/internal/infrastructure/cache/memory"
)

func TestCache_SetAndGet(t *testing.T) {
	c := memorycache.NewCache(memorycache.Config{DefaultTTL: time.Minute})
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "market:quote:MSFT", []byte(`{"symbol":"MSFT"}`), 0))

	val, err := c.Get(ctx, "market:quote:MSFT")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"symbol":"MSFT"}`), val)
}

func TestCache_GetMissing(t *testing.T) {
	c := memorycache.NewCache(memorycache.Config{DefaultTTL: time.Minute})

	val, err := c.Get(context.Background(), "absent")

	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCache_Expiry(t *testing.T) {
	c := memorycache.NewCache(memorycache.Config{DefaultTTL: time.Minute})
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("x"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	val, err := c.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCache_Delete(t *testing.T) {
	c := memorycache.NewCache(memorycache.Config{DefaultTTL: time.Minute})
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("x"), 0))

	existed, err := c.Delete(ctx, "key")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = c.Delete(ctx, "key")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestCache_PingAndClose(t *testing.T) {
	c := memorycache.NewCache(memorycache.Config{})
	ctx := context.Background()

	assert.NoError(t, c.Ping(ctx))

	require.NoError(t, c.Set(ctx, "key", []byte("x"), 0))
	require.NoError(t, c.Close())

	val, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Nil(t, val)
}
