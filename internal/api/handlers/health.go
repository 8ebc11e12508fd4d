package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/equityresearch/assistant/internal/api/dto"
)

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	state *State
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(state *State) *HealthHandler {
	return &HealthHandler{state: state}
}

// Health handles the /health endpoint.
// @Summary Health check
// @Description Returns backend status and component availability
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		APIStatus:   "healthy",
		GroqClient:  true,
		EquityBot:   true,
		RAGPipeline: true,
		AgenticRAG:  h.state.AgenticEnabled(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
