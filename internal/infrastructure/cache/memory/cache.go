// Package memory provides an in-process cache implementation.
package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Config holds in-memory cache configuration.
type Config struct {
	DefaultTTL time.Duration
}

// Cache implements the cache.Cache interface in process memory. Suitable
// for single-instance local runs where redis would be overkill.
type Cache struct {
	store      *gocache.Cache
	defaultTTL time.Duration
}

// NewCache creates a new in-memory cache instance.
func NewCache(cfg Config) *Cache {
	ttl := cfg.DefaultTTL
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	return &Cache{
		store:      gocache.New(ttl, 2*ttl),
		defaultTTL: ttl,
	}
}

// Get retrieves a value by key. Returns nil if the key does not exist.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	if val, ok := c.store.Get(key); ok {
		return val.([]byte), nil
	}
	return nil, nil
}

// Set stores a value with an optional TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	c.store.Set(key, value, ttl)
	return nil
}

// Delete removes a key. Returns true if the key existed.
func (c *Cache) Delete(ctx context.Context, key string) (bool, error) {
	if _, ok := c.store.Get(key); !ok {
		return false, nil
	}
	c.store.Delete(key)
	return true, nil
}

// Ping always succeeds for an in-process cache.
func (c *Cache) Ping(ctx context.Context) error {
	return nil
}

// Close releases the cache contents.
func (c *Cache) Close() error {
	c.store.Flush()
	return nil
}
