package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/equityresearch/assistant/internal/api/dto"
)

// baseQuote seeds the deterministic fixture quotes.
type baseQuote struct {
	price     float64
	company   string
	marketCap float64
}

// fixtureSymbols is the demo symbol set the real backend surveys.
var fixtureSymbols = map[string]baseQuote{
	"AAPL":  {price: 227.52, company: "Apple Inc.", marketCap: 3.46e12},
	"GOOGL": {price: 207.71, company: "Alphabet Inc.", marketCap: 2.52e12},
	"MSFT":  {price: 506.69, company: "Microsoft Corporation", marketCap: 3.77e12},
	"TSLA":  {price: 333.87, company: "Tesla, Inc.", marketCap: 1.08e12},
	"AMZN":  {price: 228.84, company: "Amazon.com, Inc.", marketCap: 2.44e12},
	"NVDA":  {price: 177.99, company: "NVIDIA Corporation", marketCap: 4.34e12},
}

// MarketHandler serves deterministic fixture market data.
type MarketHandler struct{}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler() *MarketHandler {
	return &MarketHandler{}
}

// Overview handles GET /analysis/market-overview.
// @Summary Market overview for the demo symbol set
// @Tags Market
// @Produce json
// @Success 200 {object} dto.MarketOverviewResponse
// @Router /analysis/market-overview [get]
func (h *MarketHandler) Overview(c *gin.Context) {
	marketData := make(map[string]dto.Quote, len(fixtureSymbols))
	for symbol, base := range fixtureSymbols {
		change := dailyChange(symbol, base.price)
		marketData[symbol] = dto.Quote{
			Price:         round2(base.price + change),
			Change:        round2(change),
			ChangePercent: round2(change / base.price * 100),
			CompanyName:   base.company,
			MarketCap:     base.marketCap,
		}
	}

	c.JSON(http.StatusOK, dto.MarketOverviewResponse{
		Success:    true,
		MarketData: marketData,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// StockFetch handles POST /stock/fetch. Unknown symbols get a 404 the way
// the real backend reports an empty yfinance result.
// @Summary Fetch quote detail for one symbol
// @Tags Market
// @Accept json
// @Produce json
// @Param request body dto.StockRequest true "Stock request"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} map[string]string
// @Router /stock/fetch [post]
func (h *MarketHandler) StockFetch(c *gin.Context) {
	var req dto.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "symbol is required"})
		return
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	base, ok := fixtureSymbols[symbol]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("No data found for symbol %s", symbol)})
		return
	}

	history := make([]map[string]any, 0, 30)
	day := time.Now().UTC().AddDate(0, 0, -30)
	prev := base.price
	for i := 0; i < 30; i++ {
		closePrice := round2(base.price + 4*math.Sin(float64(i)/5+float64(len(symbol))))
		history = append(history, map[string]any{
			"Date":   day.Format("2006-01-02"),
			"Open":   round2(prev),
			"Close":  closePrice,
			"Volume": 30000000 + 250000*i,
		})
		prev = closePrice
		day = day.AddDate(0, 0, 1)
	}

	latest := history[len(history)-1]["Close"].(float64)
	previous := history[len(history)-2]["Close"].(float64)

	chart := json.RawMessage(fmt.Sprintf(`{"data":[{"type":"scatter","mode":"lines","name":"Close Price"}],"layout":{"title":"%s Stock Price","height":400}}`, symbol))

	c.JSON(http.StatusOK, dto.StockResponse{
		Success: true,
		Symbol:  symbol,
		StockInfo: map[string]any{
			"longName":  base.company,
			"marketCap": base.marketCap,
		},
		StockData: dto.StockData{
			Shape:       []int{len(history), 4},
			Columns:     []string{"Date", "Open", "Close", "Volume"},
			Data:        history,
			LatestPrice: latest,
			PriceChange: round2(latest - previous),
		},
		Charts: []json.RawMessage{chart},
	})
}

// dailyChange derives a stable pseudo-move from the symbol name so repeated
// calls within a test run agree.
func dailyChange(symbol string, price float64) float64 {
	seed := 0
	for _, r := range symbol {
		seed += int(r)
	}
	return price * (float64(seed%9) - 4) / 400
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
