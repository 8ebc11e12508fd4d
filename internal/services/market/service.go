// Package market provides market data access with read-through caching of
// quote payloads.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/equityresearch/assistant/internal/core/cache"
	"github.com/equityresearch/assistant/internal/domain/models"
	"github.com/equityresearch/assistant/internal/services/research"
)

const (
	overviewCacheKey = "market:overview"
	quoteCachePrefix = "market:quote:"

	// DefaultQuoteTTL bounds how long a cached quote is served before the
	// backend is asked again.
	DefaultQuoteTTL = time.Minute
)

// Config holds the configuration for the market service.
type Config struct {
	Client *research.Client
	// Cache is optional; without it every call hits the backend.
	Cache  cache.Cache
	TTL    time.Duration
	Logger zerolog.Logger
}

// Service serves market overview and per-symbol quote data. Quotes are
// public data with short usefulness, so cache failures only cost a backend
// round trip and are never surfaced to the caller.
type Service struct {
	client *research.Client
	cache  cache.Cache
	ttl    time.Duration
	logger zerolog.Logger
}

// NewService creates a new market data service.
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("research client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultQuoteTTL
	}

	return &Service{
		client: cfg.Client,
		cache:  cfg.Cache,
		ttl:    ttl,
		logger: cfg.Logger,
	}, nil
}

// Overview returns the market overview, served from cache when fresh.
func (s *Service) Overview(ctx context.Context) (*models.MarketOverview, error) {
	var cached models.MarketOverview
	if s.lookup(ctx, overviewCacheKey, &cached) {
		return &cached, nil
	}

	overview, err := s.client.MarketOverview(ctx)
	if err != nil {
		return nil, err
	}

	s.put(ctx, overviewCacheKey, overview)
	return overview, nil
}

// Quote returns quote detail for one symbol, served from cache when fresh.
func (s *Service) Quote(ctx context.Context, symbol string) (*models.QuoteDetail, error) {
	normalized := strings.ToUpper(strings.TrimSpace(symbol))
	key := quoteCachePrefix + normalized

	var cached models.QuoteDetail
	if normalized != "" && s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	quote, err := s.client.FetchQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	s.put(ctx, key, quote)
	return quote, nil
}

// Invalidate drops any cached quote data for the given symbol.
func (s *Service) Invalidate(ctx context.Context, symbol string) {
	if s.cache == nil {
		return
	}
	key := quoteCachePrefix + strings.ToUpper(strings.TrimSpace(symbol))
	if _, err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to invalidate quote cache entry")
	}
}

// lookup reads and decodes a cache entry. Any failure counts as a miss.
func (s *Service) lookup(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("quote cache read failed")
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		// Corrupted entry; drop it and fetch fresh data.
		_, _ = s.cache.Delete(ctx, key)
		return false
	}
	return true
}

// put encodes and stores a cache entry best-effort.
func (s *Service) put(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("quote cache write failed")
	}
}
