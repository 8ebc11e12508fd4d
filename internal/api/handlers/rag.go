package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/equityresearch/assistant/internal/api/dto"
)

// RAGHandler handles the document index endpoints.
type RAGHandler struct {
	state *State
}

// NewRAGHandler creates a new RAGHandler.
func NewRAGHandler(state *State) *RAGHandler {
	return &RAGHandler{state: state}
}

// Search handles POST /rag/search.
// @Summary Search the document index
// @Tags RAG
// @Produce json
// @Param query query string true "Search query"
// @Param n_results query int false "Maximum results" default(10)
// @Success 200 {object} dto.SearchResponse
// @Router /rag/search [post]
func (h *RAGHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.SearchResponse{Success: false, Error: "query is required"})
		return
	}

	limit := 10
	if raw := c.Query("n_results"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	docs := h.state.Docs()
	if len(docs) == 0 {
		c.JSON(http.StatusOK, dto.SearchResponse{Success: false, Error: "No results found"})
		return
	}

	results := make([]dto.SearchResult, 0, limit)
	for i, doc := range docs {
		if len(results) == limit {
			break
		}
		relevance := 0.95 - 0.07*float64(i)
		if relevance < 0.1 {
			relevance = 0.1
		}
		results = append(results, dto.SearchResult{
			Content:        fmt.Sprintf("Excerpt from %s matching %q.", doc.Filename, query),
			RelevanceScore: relevance,
			Metadata: map[string]any{
				"filename": doc.Filename,
				"doc_type": doc.FileType,
				"chunk_id": i,
			},
		})
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success: true,
		Results: results,
		Count:   len(results),
	})
}

// Stats handles GET /rag/stats.
// @Summary Document index statistics
// @Tags RAG
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /rag/stats [get]
func (h *RAGHandler) Stats(c *gin.Context) {
	docs, chunks := h.state.Counts()
	c.JSON(http.StatusOK, dto.StatsResponse{
		DocumentCount: docs,
		ChunkCount:    chunks,
	})
}

// Clear handles DELETE /rag/clear.
// @Summary Clear the document index
// @Tags RAG
// @Produce json
// @Success 200 {object} dto.ClearResponse
// @Router /rag/clear [delete]
func (h *RAGHandler) Clear(c *gin.Context) {
	h.state.Clear()
	c.JSON(http.StatusOK, dto.ClearResponse{
		Success: true,
		Message: "Database cleared successfully",
	})
}
