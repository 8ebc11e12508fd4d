package research

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domainerrors "github.com/equityresearch/assistant/internal/domain/errors"
	"github.com/equityresearch/assistant/internal/domain/models"
	"github.com/equityresearch/assistant/internal/transport"
)

// Endpoint paths on the research backend.
const (
	pathHealth         = "/health"
	pathChat           = "/chat"
	pathUploadCSV      = "/upload/csv"
	pathUploadExcel    = "/upload/excel"
	pathUploadPDF      = "/upload/pdf"
	pathSearch         = "/rag/search"
	pathClear          = "/rag/clear"
	pathStats          = "/rag/stats"
	pathStockFetch     = "/stock/fetch"
	pathMarketOverview = "/analysis/market-overview"
)

// uploadField is the multipart form field name the backend expects.
const uploadField = "file"

// Config holds the configuration for the research client.
type Config struct {
	Transport *transport.Client
	Logger    zerolog.Logger
}

// Client exposes one typed operation per backend capability. Each operation
// owns its endpoint path, payload shape and transport class.
type Client struct {
	transport *transport.Client
	logger    zerolog.Logger
}

// NewClient creates a new research backend client.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Transport == nil {
		return nil, fmt.Errorf("transport client is required")
	}

	return &Client{
		transport: cfg.Transport,
		logger:    cfg.Logger,
	}, nil
}

// Health fetches the backend status and derives the advertised capability
// set. Fetched once at session start; feature availability is gated on it.
func (c *Client) Health(ctx context.Context) (*models.SystemStatus, error) {
	var resp healthResponse
	if err := c.transport.Get(ctx, transport.ClassInteractive, "health", pathHealth, nil, &resp); err != nil {
		return nil, err
	}

	status := &models.SystemStatus{
		APIStatus: models.APIStatusError,
		Capabilities: map[models.Capability]bool{
			models.CapabilityLLMChat:           resp.GroqClient,
			models.CapabilityRetrievalPipeline: resp.RAGPipeline,
			models.CapabilityAgenticReasoning:  resp.AgenticRAG,
		},
	}

	switch models.APIStatus(resp.APIStatus) {
	case models.APIStatusHealthy:
		if resp.GroqClient && resp.RAGPipeline {
			status.APIStatus = models.APIStatusHealthy
		} else {
			status.APIStatus = models.APIStatusDegraded
		}
	case models.APIStatusDegraded:
		status.APIStatus = models.APIStatusDegraded
	}

	return status, nil
}

// InferFileType maps a filename extension to the upload endpoint's file
// type. Extensions outside {csv, xls, xlsx, pdf} fail with
// UnsupportedFileType before any network call.
func InferFileType(filename string) (FileType, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return FileTypeCSV, nil
	case ".xls", ".xlsx":
		return FileTypeExcel, nil
	case ".pdf":
		return FileTypePDF, nil
	default:
		return "", domainerrors.NewUnsupportedFileTypeError(filename, ext)
	}
}

// UploadFile submits a file to the endpoint matching its extension and
// returns the raw upload payload. Heavy transport class.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (*UploadResponse, error) {
	fileType, err := InferFileType(filename)
	if err != nil {
		return nil, err
	}

	path := pathUploadCSV
	switch fileType {
	case FileTypeExcel:
		path = pathUploadExcel
	case FileTypePDF:
		path = pathUploadPDF
	}

	var resp UploadResponse
	if err := c.transport.PostFile(ctx, transport.ClassHeavy, "upload", path, uploadField, filename, r, &resp); err != nil {
		return nil, err
	}
	resp.FileType = fileType

	c.logger.Info().
		Str("filename", filename).
		Str("file_type", string(fileType)).
		Bool("success", resp.Success).
		Msg("file uploaded")
	return &resp, nil
}

// Chat submits one chat turn. Agentic mode uses the heavy transport class;
// standard and search use the interactive class. contextData is passed
// through opaquely.
func (c *Client) Chat(ctx context.Context, text string, mode models.ChatMode, contextData map[string]any) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.NewValidationError("chat message must not be blank", "")
	}
	if !mode.Valid() {
		return nil, domainerrors.NewValidationError("unknown chat mode", string(mode))
	}

	class := transport.ClassInteractive
	if mode == models.ModeAgentic {
		class = transport.ClassHeavy
	}

	req := ChatRequest{Message: text, Mode: mode, ContextData: contextData}
	var resp ChatResponse
	if err := c.transport.PostJSON(ctx, class, "chat", pathChat, nil, req, &resp); err != nil {
		return nil, err
	}

	metadata := resp.Metadata
	if metadata == nil {
		metadata = &models.Metadata{Mode: mode}
	}
	if !resp.Success {
		metadata.Error = true
	}

	content := resp.Message
	if content == "" && resp.Error != "" {
		content = resp.Error
	}

	return &models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Metadata:  metadata,
	}, nil
}

// SearchDocuments queries the document index. Results preserve wire order
// and are capped at limit.
func (c *Client) SearchDocuments(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domainerrors.NewValidationError("search query must not be blank", "")
	}
	if limit <= 0 {
		return nil, domainerrors.NewValidationError("result limit must be positive", strconv.Itoa(limit))
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("n_results", strconv.Itoa(limit))

	var resp searchResponse
	if err := c.transport.PostJSON(ctx, transport.ClassInteractive, "search", pathSearch, params, nil, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		// The backend reports "no results" as a soft failure.
		c.logger.Debug().Str("query", query).Str("reason", resp.Error).Msg("search returned no results")
		return []models.SearchResult{}, nil
	}

	results := resp.Results
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ClearIndex removes every document from the index.
func (c *Client) ClearIndex(ctx context.Context) (bool, error) {
	var resp clearResponse
	if err := c.transport.Delete(ctx, transport.ClassInteractive, "clear", pathClear, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

// Stats fetches document index statistics. The backend answers 200 with an
// error field when the index is unavailable; that surfaces as a soft error
// on the stats, not a transport failure.
func (c *Client) Stats(ctx context.Context) (*models.IndexStats, error) {
	var stats models.IndexStats
	if err := c.transport.Get(ctx, transport.ClassInteractive, "stats", pathStats, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MarketOverview fetches the latest quotes for the demo symbol set.
func (c *Client) MarketOverview(ctx context.Context) (*models.MarketOverview, error) {
	var resp marketOverviewResponse
	if err := c.transport.Get(ctx, transport.ClassInteractive, "market overview", pathMarketOverview, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, domainerrors.NewProtocolError("market overview", fmt.Errorf("backend reported failure without status"))
	}
	return &models.MarketOverview{Data: resp.MarketData, Timestamp: resp.Timestamp}, nil
}

// FetchQuote fetches quote detail and charts for one ticker symbol.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*models.QuoteDetail, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domainerrors.NewValidationError("ticker symbol must not be empty", "")
	}

	var resp stockResponse
	if err := c.transport.PostJSON(ctx, transport.ClassInteractive, "quote", pathStockFetch, nil, stockRequest{Symbol: symbol}, &resp); err != nil {
		return nil, err
	}

	charts, dropped := models.ParseChartSpecs(resp.Charts)
	if dropped > 0 {
		c.logger.Warn().Str("symbol", symbol).Int("dropped", dropped).Msg("discarded unparseable chart specs")
	}

	return &models.QuoteDetail{
		Symbol:      resp.Symbol,
		Info:        resp.StockInfo,
		LatestPrice: resp.StockData.LatestPrice,
		PriceChange: resp.StockData.PriceChange,
		Columns:     resp.StockData.Columns,
		History:     resp.StockData.Data,
		Charts:      charts,
	}, nil
}
