package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/equityresearch/assistant/internal/api/dto"
)

// ChatHandler handles the chat endpoint with canned responses per mode.
type ChatHandler struct {
	state *State
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(state *State) *ChatHandler {
	return &ChatHandler{state: state}
}

// Chat handles POST /chat.
// @Summary Chat with the assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ChatResponse{
			Success: false,
			Message: "invalid chat request",
			Error:   err.Error(),
		})
		return
	}

	// Mirrors the real backend: an agentic request silently falls back to
	// standard chat when the agentic pipeline is not loaded.
	switch {
	case req.Mode == "agentic" && h.state.AgenticEnabled():
		c.JSON(http.StatusOK, h.agenticResponse(req.Message))
	case req.Mode == "search":
		c.JSON(http.StatusOK, h.searchResponse(req.Message))
	default:
		c.JSON(http.StatusOK, dto.ChatResponse{
			Success:  true,
			Message:  fmt.Sprintf("Here is a summary based on your uploaded documents: %q is a reasonable question about the data on file.", req.Message),
			Metadata: map[string]any{"mode": "standard"},
		})
	}
}

// agenticResponse fabricates a plan/confidence/steps payload in the shape
// the agentic pipeline produces.
func (h *ChatHandler) agenticResponse(message string) dto.ChatResponse {
	sources := make([]string, 0, 3)
	for i, doc := range h.state.Docs() {
		if i == 3 {
			break
		}
		sources = append(sources, doc.Filename)
	}

	return dto.ChatResponse{
		Success: true,
		Message: fmt.Sprintf("After a multi-step review of the indexed documents, the answer to %q is positive on balance.", message),
		Metadata: map[string]any{
			"mode":       "agentic",
			"confidence": 0.82,
			"plan": []string{
				"Identify the entities referenced by the query",
				"Collect relevant document chunks",
				"Synthesize the findings",
			},
			"sources": sources,
			"intermediate_results": map[string]any{
				"Step 1": map[string]any{
					"step_description": "Identify the entities referenced by the query",
					"tool":             "entity_extractor",
					"result":           "1 entity identified",
					"success":          true,
				},
			},
		},
	}
}

// searchResponse summarizes the top fixture hits the way the backend's
// search mode does.
func (h *ChatHandler) searchResponse(message string) dto.ChatResponse {
	docs := h.state.Docs()
	if len(docs) == 0 {
		return dto.ChatResponse{
			Success: false,
			Message: "No relevant documents found for your query.",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d relevant results:\n\n", len(docs))
	sources := make([]string, 0, 3)
	for i, doc := range docs {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "**Result %d** (Relevance: %.2f):\n%s discusses the topic of %q.\n\n", i+1, 0.95-0.07*float64(i), doc.Filename, message)
		sources = append(sources, doc.Filename)
	}

	return dto.ChatResponse{
		Success: true,
		Message: b.String(),
		Metadata: map[string]any{
			"mode":          "search",
			"sources":       sources,
			"results_count": len(docs),
		},
	}
}
