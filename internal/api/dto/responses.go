package dto

import "encoding/json"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	APIStatus   string `json:"api_status"`
	GroqClient  bool   `json:"groq_client"`
	EquityBot   bool   `json:"equity_bot"`
	RAGPipeline bool   `json:"rag_pipeline"`
	AgenticRAG  bool   `json:"agentic_rag"`
	Timestamp   string `json:"timestamp"`
}

// UploadResponse is the body of the POST /upload/* endpoints.
type UploadResponse struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	DataPreview any               `json:"data_preview,omitempty"`
	Charts      []json.RawMessage `json:"charts,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// TabularPreview is the data_preview shape for CSV/Excel uploads.
type TabularPreview struct {
	Shape   []int             `json:"shape"`
	Columns []string          `json:"columns"`
	Head    []map[string]any  `json:"head"`
	Dtypes  map[string]string `json:"dtypes"`
}

// DocumentPreview is the data_preview shape for PDF uploads.
type DocumentPreview struct {
	TextLength int    `json:"text_length"`
	WordCount  int    `json:"word_count"`
	Preview    string `json:"preview"`
}

// ChatResponse is the body of POST /chat.
type ChatResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// SearchResult is one hit in a SearchResponse.
type SearchResult struct {
	Content        string         `json:"content"`
	RelevanceScore float64        `json:"relevance_score"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// SearchResponse is the body of POST /rag/search.
type SearchResponse struct {
	Success bool           `json:"success"`
	Results []SearchResult `json:"results,omitempty"`
	Count   int            `json:"count"`
	Error   string         `json:"error,omitempty"`
}

// StatsResponse is the body of GET /rag/stats.
type StatsResponse struct {
	DocumentCount int    `json:"document_count"`
	ChunkCount    int    `json:"chunk_count"`
	Error         string `json:"error,omitempty"`
}

// ClearResponse is the body of DELETE /rag/clear.
type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Quote is one symbol's entry in a MarketOverviewResponse.
type Quote struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	CompanyName   string  `json:"company_name"`
	MarketCap     float64 `json:"market_cap"`
}

// MarketOverviewResponse is the body of GET /analysis/market-overview.
type MarketOverviewResponse struct {
	Success    bool             `json:"success"`
	MarketData map[string]Quote `json:"market_data"`
	Timestamp  string           `json:"timestamp"`
}

// StockData is the history block of a StockResponse.
type StockData struct {
	Shape       []int            `json:"shape"`
	Columns     []string         `json:"columns"`
	Data        []map[string]any `json:"data"`
	LatestPrice float64          `json:"latest_price"`
	PriceChange float64          `json:"price_change"`
}

// StockResponse is the body of POST /stock/fetch.
type StockResponse struct {
	Success   bool              `json:"success"`
	Symbol    string            `json:"symbol"`
	StockInfo map[string]any    `json:"stock_info"`
	StockData StockData         `json:"stock_data"`
	Charts    []json.RawMessage `json:"charts,omitempty"`
}
