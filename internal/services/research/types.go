// Package research provides the typed client for the research backend API.
package research

import (
	"encoding/json"

	"github.com/equityresearch/assistant/internal/domain/models"
)

// FileType identifies a supported upload format.
type FileType string

const (
	FileTypeCSV   FileType = "csv"
	FileTypeExcel FileType = "excel"
	FileTypePDF   FileType = "pdf"
)

// ChatRequest is the wire payload for POST /chat.
type ChatRequest struct {
	Message     string          `json:"message"`
	Mode        models.ChatMode `json:"mode"`
	ContextData map[string]any  `json:"context_data,omitempty"`
}

// ChatResponse is the wire payload returned by POST /chat.
type ChatResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Metadata *models.Metadata `json:"metadata,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// UploadResponse is the wire payload returned by the upload endpoints.
// DataPreview and chart entries are kept raw: their shapes vary by file
// type and backend version, and normalization is the upload controller's
// job, not the client's.
type UploadResponse struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	DataPreview json.RawMessage   `json:"data_preview,omitempty"`
	Charts      []json.RawMessage `json:"charts,omitempty"`
	Error       string            `json:"error,omitempty"`
	// FileType records which endpoint served the upload; set client-side.
	FileType FileType `json:"-"`
}

// searchResponse is the wire payload returned by POST /rag/search.
type searchResponse struct {
	Success bool                  `json:"success"`
	Results []models.SearchResult `json:"results"`
	Count   int                   `json:"count"`
	Error   string                `json:"error,omitempty"`
}

// clearResponse is the wire payload returned by DELETE /rag/clear.
type clearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// healthResponse is the wire payload returned by GET /health.
type healthResponse struct {
	APIStatus   string `json:"api_status"`
	GroqClient  bool   `json:"groq_client"`
	EquityBot   bool   `json:"equity_bot"`
	RAGPipeline bool   `json:"rag_pipeline"`
	AgenticRAG  bool   `json:"agentic_rag"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// stockRequest is the wire payload for POST /stock/fetch.
type stockRequest struct {
	Symbol string `json:"symbol"`
}

// stockResponse is the wire payload returned by POST /stock/fetch.
type stockResponse struct {
	Success   bool            `json:"success"`
	Symbol    string          `json:"symbol"`
	StockInfo json.RawMessage `json:"stock_info,omitempty"`
	StockData struct {
		Shape       []int            `json:"shape"`
		Columns     []string         `json:"columns"`
		Data        []map[string]any `json:"data"`
		LatestPrice float64          `json:"latest_price"`
		PriceChange float64          `json:"price_change"`
	} `json:"stock_data"`
	Charts []json.RawMessage `json:"charts,omitempty"`
}

// marketOverviewResponse is the wire payload returned by
// GET /analysis/market-overview.
type marketOverviewResponse struct {
	Success    bool                    `json:"success"`
	MarketData map[string]models.Quote `json:"market_data"`
	Timestamp  string                  `json:"timestamp,omitempty"`
}
