// Package research provides tests for the research backend client.
package research_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/equityresearch/assistant/internal/domain/errors"
	"github.com/equityresearch/assistant/internal/domain/models"
	"github.com/equityresearch/assistant/internal/services/research"
	"github.com/equityresearch/assistant/internal/transport"
)

func newTestClient(t *testing.T, handler http.Handler) (*research.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	transportClient, err := transport.NewClient(&transport.Config{
		BaseURL:            server.URL,
		InteractiveTimeout: 5 * time.Second,
		HeavyTimeout:       10 * time.Second,
		Logger:             zerolog.Nop(),
	})
	require.NoError(t, err)

	client, err := research.NewClient(&research.Config{
		Transport: transportClient,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)
	return client, server
}

// TestHealth_AllCapabilities tests status derivation when everything is up.
func TestHealth_AllCapabilities(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"api_status":  "healthy",
			"groq_client": true, "equity_bot": true, "rag_pipeline": true, "agentic_rag": true,
			"timestamp": "2025-06-01T12:00:00Z",
		})
	}))

	status, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.APIStatusHealthy, status.APIStatus)
	assert.True(t, status.Has(models.CapabilityLLMChat))
	assert.True(t, status.Has(models.CapabilityRetrievalPipeline))
	assert.True(t, status.Has(models.CapabilityAgenticReasoning))
}

// TestHealth_MissingCapabilityDegrades tests that a healthy wire status with
// a missing core capability reads as degraded.
func TestHealth_MissingCapabilityDegrades(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"api_status":  "healthy",
			"groq_client": true, "equity_bot": true, "rag_pipeline": false, "agentic_rag": false,
		})
	}))

	status, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.APIStatusDegraded, status.APIStatus)
	assert.False(t, status.Has(models.CapabilityAgenticReasoning))
}

// TestHealth_UnknownStatus tests that an unrecognized wire status reads as
// error rather than being passed through.
func TestHealth_UnknownStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"api_status": "purple"})
	}))

	status, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.APIStatusError, status.APIStatus)
}

// TestInferFileType tests extension mapping, case folding included.
func TestInferFileType(t *testing.T) {
	tests := []struct {
		filename string
		want     research.FileType
	}{
		{"report.csv", research.FileTypeCSV},
		{"Q3.XLSX", research.FileTypeExcel},
		{"legacy.xls", research.FileTypeExcel},
		{"10-K.pdf", research.FileTypePDF},
	}
	for _, tc := range tests {
		got, err := research.InferFileType(tc.filename)
		require.NoError(t, err, tc.filename)
		assert.Equal(t, tc.want, got, tc.filename)
	}
}

// TestUploadFile_UnsupportedExtension tests that a bad extension fails
// before any request is issued.
func TestUploadFile_UnsupportedExtension(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := client.UploadFile(context.Background(), "notes.docx", strings.NewReader("x"))

	require.Error(t, err)
	assert.True(t, domainerrors.IsUnsupportedFileType(err))
	assert.Equal(t, 0, requests)
}

// TestUploadFile_RoutesByExtension tests that each extension hits its own
// endpoint and the served file type is recorded.
func TestUploadFile_RoutesByExtension(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.NotEmpty(t, header.Filename)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))

	tests := []struct {
		filename string
		path     string
		fileType research.FileType
	}{
		{"prices.csv", "/upload/csv", research.FileTypeCSV},
		{"prices.xlsx", "/upload/excel", research.FileTypeExcel},
		{"report.pdf", "/upload/pdf", research.FileTypePDF},
	}
	for _, tc := range tests {
		resp, err := client.UploadFile(context.Background(), tc.filename, strings.NewReader("data"))
		require.NoError(t, err, tc.filename)
		assert.Equal(t, tc.path, gotPath)
		assert.Equal(t, tc.fileType, resp.FileType)
		assert.True(t, resp.Success)
	}
}

// TestChat_BlankMessage tests client-side validation of empty input.
func TestChat_BlankMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.Chat(context.Background(), "   ", models.ModeStandard, nil)

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidationError(err))
}

// TestChat_Success tests a standard-mode reply with metadata.
func TestChat_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "what moved AAPL today?", req["message"])
		assert.Equal(t, "search", req["mode"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "AAPL rose on earnings.",
			"metadata": map[string]any{
				"mode":    "search",
				"sources": []string{"q3_report.pdf"},
			},
		})
	}))

	msg, err := client.Chat(context.Background(), "what moved AAPL today?", models.ModeSearch, nil)

	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, msg.Role)
	assert.Equal(t, "AAPL rose on earnings.", msg.Content)
	assert.NotEmpty(t, msg.ID)
	require.NotNil(t, msg.Metadata)
	assert.False(t, msg.Metadata.Error)
	assert.Equal(t, []string{"q3_report.pdf"}, msg.Metadata.Sources)
}

// TestChat_BackendFailureFlagsMetadata tests that success=false marks the
// reply's metadata as an error without failing the call.
func TestChat_BackendFailureFlagsMetadata(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "model overloaded",
		})
	}))

	msg, err := client.Chat(context.Background(), "hello", models.ModeStandard, nil)

	require.NoError(t, err)
	assert.Equal(t, "model overloaded", msg.Content)
	require.NotNil(t, msg.Metadata)
	assert.True(t, msg.Metadata.Error)
}

// TestSearchDocuments_OrderAndCap tests that wire order is preserved and
// the result count never exceeds the requested limit.
func TestSearchDocuments_OrderAndCap(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rag/search", r.URL.Path)
		assert.Equal(t, "margins", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("n_results"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"results": []map[string]any{
				{"content": "first", "relevance_score": 0.95, "metadata": map[string]any{"filename": "a.pdf"}},
				{"content": "second", "relevance_score": 0.88, "metadata": map[string]any{"filename": "b.pdf"}},
				{"content": "third", "relevance_score": 0.81, "metadata": map[string]any{"filename": "c.pdf"}},
			},
			"count": 3,
		})
	}))

	results, err := client.SearchDocuments(context.Background(), "margins", 2)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].Content)
	assert.Equal(t, "second", results[1].Content)
	assert.InDelta(t, 0.95, results[0].Relevance, 1e-9)
	assert.Equal(t, "a.pdf", results[0].Source())
}

// TestSearchDocuments_SoftFailure tests that a success=false answer yields
// an empty slice, not an error.
func TestSearchDocuments_SoftFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "No results found",
		})
	}))

	results, err := client.SearchDocuments(context.Background(), "nothing here", 5)

	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestSearchDocuments_InvalidInput tests blank query and non-positive limit.
func TestSearchDocuments_InvalidInput(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.SearchDocuments(context.Background(), "", 5)
	assert.True(t, domainerrors.IsValidationError(err))

	_, err = client.SearchDocuments(context.Background(), "query", 0)
	assert.True(t, domainerrors.IsValidationError(err))
}

// TestClearIndex tests the clear round trip.
func TestClearIndex(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/rag/clear", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Database cleared successfully"})
	}))

	ok, err := client.ClearIndex(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
}

// TestStats_SoftError tests that an index-unavailable answer surfaces on the
// stats value rather than as a call failure.
func TestStats_SoftError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"document_count": 0,
			"chunk_count":    0,
			"error":          "RAG pipeline not available",
		})
	}))

	stats, err := client.Stats(context.Background())

	require.NoError(t, err)
	assert.False(t, stats.Available())
	assert.Equal(t, "RAG pipeline not available", stats.Err)
}

// TestStats_Success tests a healthy stats answer.
func TestStats_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"document_count": 3, "chunk_count": 42})
	}))

	stats, err := client.Stats(context.Background())

	require.NoError(t, err)
	assert.True(t, stats.Available())
	assert.Equal(t, 3, stats.DocumentCount)
	assert.Equal(t, 42, stats.ChunkCount)
}

// TestMarketOverview tests quote map decoding.
func TestMarketOverview(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"market_data": map[string]any{
				"AAPL": map[string]any{
					"price": 189.25, "change": 1.75, "change_percent": 0.93,
					"company_name": "Apple Inc.", "market_cap": 2.95e12,
				},
			},
			"timestamp": "2025-06-01T12:00:00Z",
		})
	}))

	overview, err := client.MarketOverview(context.Background())

	require.NoError(t, err)
	quote, ok := overview.Data["AAPL"]
	require.True(t, ok)
	assert.InDelta(t, 189.25, quote.Price, 1e-9)
	assert.Equal(t, "Apple Inc.", quote.CompanyName)
}

// TestFetchQuote_UppercasesSymbol tests symbol normalization and detail
// decoding, with chart specs parsed from the raw payload.
func TestFetchQuote_UppercasesSymbol(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "TSLA", req["symbol"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"symbol":  "TSLA",
			"stock_data": map[string]any{
				"shape":        []int{30, 5},
				"columns":      []string{"Open", "Close"},
				"data":         []map[string]any{{"Close": 242.1}},
				"latest_price": 242.1,
				"price_change": -3.4,
			},
			"charts": []any{map[string]any{"data": []any{}, "layout": map[string]any{}}},
		})
	}))

	detail, err := client.FetchQuote(context.Background(), " tsla ")

	require.NoError(t, err)
	assert.Equal(t, "TSLA", detail.Symbol)
	assert.InDelta(t, 242.1, detail.LatestPrice, 1e-9)
	assert.InDelta(t, -3.4, detail.PriceChange, 1e-9)
	assert.Len(t, detail.Charts, 1)
	assert.Len(t, detail.History, 1)
}

// TestFetchQuote_UnknownSymbol tests that the backend's 404 maps to a
// server error.
func TestFetchQuote_UnknownSymbol(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "No data found for symbol ZZZZ"})
	}))

	_, err := client.FetchQuote(context.Background(), "ZZZZ")

	require.Error(t, err)
	assert.True(t, domainerrors.IsServerError(err))
	assert.Contains(t, err.Error(), "No data found")
}
