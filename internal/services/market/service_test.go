// Package market provides tests for the market data service.
package market_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equityresearch/assistant/internal/core/cache"
	memorycache "github.com/equityresearch/assistant/internal/infrastructure/cache/memory"
	"github.com/equityresearch/assistant/internal/services/market"
	"github.com/equityresearch/assistant/internal/services/research"
	"github.com/equityresearch/assistant/internal/transport"
)

type countingHandler struct {
	mu       sync.Mutex
	overview int
	quote    int
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch r.URL.Path {
	case "/analysis/market-overview":
		h.overview++
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"market_data": map[string]any{
				"AAPL": map[string]any{"price": 189.25, "change": 1.75, "change_percent": 0.93, "company_name": "Apple Inc."},
			},
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	case "/stock/fetch":
		h.quote++
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"symbol":  "AAPL",
			"stock_data": map[string]any{
				"shape": []int{30, 5}, "columns": []string{"Close"},
				"data":         []map[string]any{{"Close": 189.25}},
				"latest_price": 189.25, "price_change": 1.75,
			},
		})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *countingHandler) counts() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.overview, h.quote
}

func newTestService(t *testing.T, handler http.Handler, c cache.Cache) *market.Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	transportClient, err := transport.NewClient(&transport.Config{BaseURL: server.URL, Logger: zerolog.Nop()})
	require.NoError(t, err)
	client, err := research.NewClient(&research.Config{Transport: transportClient, Logger: zerolog.Nop()})
	require.NoError(t, err)

	service, err := market.NewService(&market.Config{
		Client: client,
		Cache:  c,
		TTL:    time.Minute,
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	return service
}

// TestOverview_CacheReadThrough tests that repeated overview calls within
// the TTL hit the backend once.
func TestOverview_CacheReadThrough(t *testing.T) {
	handler := &countingHandler{}
	service := newTestService(t, handler, memorycache.NewCache(memorycache.Config{DefaultTTL: time.Minute}))
	ctx := context.Background()

	first, err := service.Overview(ctx)
	require.NoError(t, err)

	second, err := service.Overview(ctx)
	require.NoError(t, err)

	overviews, _ := handler.counts()
	assert.Equal(t, 1, overviews)
	assert.Equal(t, first.Data["AAPL"].Price, second.Data["AAPL"].Price)
}

// TestQuote_CacheReadThrough tests per-symbol caching with symbol
// normalization: "aapl" and "AAPL" share an entry.
func TestQuote_CacheReadThrough(t *testing.T) {
	handler := &countingHandler{}
	service := newTestService(t, handler, memorycache.NewCache(memorycache.Config{DefaultTTL: time.Minute}))
	ctx := context.Background()

	_, err := service.Quote(ctx, "AAPL")
	require.NoError(t, err)

	quote, err := service.Quote(ctx, " aapl ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", quote.Symbol)

	_, quotes := handler.counts()
	assert.Equal(t, 1, quotes)
}

// TestQuote_InvalidateForcesRefetch tests that invalidation drops the
// cached entry.
func TestQuote_InvalidateForcesRefetch(t *testing.T) {
	handler := &countingHandler{}
	service := newTestService(t, handler, memorycache.NewCache(memorycache.Config{DefaultTTL: time.Minute}))
	ctx := context.Background()

	_, err := service.Quote(ctx, "AAPL")
	require.NoError(t, err)

	service.Invalidate(ctx, "aapl")

	_, err = service.Quote(ctx, "AAPL")
	require.NoError(t, err)

	_, quotes := handler.counts()
	assert.Equal(t, 2, quotes)
}

// TestService_WithoutCache tests that a nil cache means every call hits
// the backend.
func TestService_WithoutCache(t *testing.T) {
	handler := &countingHandler{}
	service := newTestService(t, handler, nil)
	ctx := context.Background()

	_, err := service.Overview(ctx)
	require.NoError(t, err)
	_, err = service.Overview(ctx)
	require.NoError(t, err)

	overviews, _ := handler.counts()
	assert.Equal(t, 2, overviews)
}

// TestService_CorruptedEntryIsMiss tests that an undecodable cache entry is
// treated as a miss and replaced.
func TestService_CorruptedEntryIsMiss(t *testing.T) {
	handler := &countingHandler{}
	c := memorycache.NewCache(memorycache.Config{DefaultTTL: time.Minute})
	service := newTestService(t, handler, c)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "market:overview", []byte("not json"), 0))

	overview, err := service.Overview(ctx)
	require.NoError(t, err)
	assert.Contains(t, overview.Data, "AAPL")

	overviews, _ := handler.counts()
	assert.Equal(t, 1, overviews)
}
