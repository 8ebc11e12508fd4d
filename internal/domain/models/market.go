package models

import "encoding/json"

// Quote is one symbol's entry in the market overview.
type Quote struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	CompanyName   string  `json:"company_name,omitempty"`
	MarketCap     float64 `json:"market_cap,omitempty"`
}

// MarketOverview maps ticker symbols to their latest quotes.
type MarketOverview struct {
	Data      map[string]Quote `json:"market_data"`
	Timestamp string           `json:"timestamp,omitempty"`
}

// QuoteDetail is the result of fetching a single symbol, including recent
// history and any chart specs the backend produced.
type QuoteDetail struct {
	Symbol      string           `json:"symbol"`
	Info        json.RawMessage  `json:"stock_info,omitempty"`
	LatestPrice float64          `json:"latest_price"`
	PriceChange float64          `json:"price_change"`
	Columns     []string         `json:"columns,omitempty"`
	History     []map[string]any `json:"history,omitempty"`
	Charts      []ChartSpec      `json:"charts,omitempty"`
}
