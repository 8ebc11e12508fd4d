// Package dto defines the wire request/response shapes served by the stub
// research API.
package dto

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message     string         `json:"message" binding:"required"`
	Mode        string         `json:"mode"`
	ContextData map[string]any `json:"context_data,omitempty"`
}

// StockRequest is the body of POST /stock/fetch.
type StockRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}
