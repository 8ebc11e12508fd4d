package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equityresearch/assistant/internal/domain/models"
)

// TestParseChartSpecs_MixedEncodings tests object blobs and string-encoded
// blobs in one sequence.
func TestParseChartSpecs_MixedEncodings(t *testing.T) {
	blobs := []json.RawMessage{
		json.RawMessage(`{"data": [], "layout": {"title": "Price"}}`),
		json.RawMessage(`"{\"data\": [], \"layout\": {\"title\": \"Volume\"}}"`),
	}

	specs, dropped := models.ParseChartSpecs(blobs)

	assert.Equal(t, 0, dropped)
	require.Len(t, specs, 2)
	for _, spec := range specs {
		assert.True(t, json.Valid(spec.Spec))
		assert.Equal(t, byte('{'), spec.Spec[0])
	}
}

// TestParseChartSpecs_DropsMalformedIndependently tests that one bad blob
// never suppresses the others.
func TestParseChartSpecs_DropsMalformedIndependently(t *testing.T) {
	blobs := []json.RawMessage{
		json.RawMessage(`{"data": []}`),
		json.RawMessage(`"not an object"`),
		json.RawMessage(`[1, 2, 3]`),
		json.RawMessage(`{"layout": {}}`),
	}

	specs, dropped := models.ParseChartSpecs(blobs)

	assert.Equal(t, 2, dropped)
	require.Len(t, specs, 2)
}

// TestParseChartSpecs_Empty tests nil input.
func TestParseChartSpecs_Empty(t *testing.T) {
	specs, dropped := models.ParseChartSpecs(nil)
	assert.Nil(t, specs)
	assert.Equal(t, 0, dropped)
}

// TestTranscript_TurnCount tests that system messages never count as turns.
func TestTranscript_TurnCount(t *testing.T) {
	transcript := models.Transcript{
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: "welcome"},
			{Role: models.RoleUser, Content: "hi"},
			{Role: models.RoleAssistant, Content: "hello"},
		},
	}
	assert.Equal(t, 2, transcript.TurnCount())

	empty := models.Transcript{
		Messages: []models.Message{{Role: models.RoleSystem, Content: "welcome"}},
	}
	assert.Equal(t, 0, empty.TurnCount())
}

// TestChatMode_Valid tests the mode whitelist.
func TestChatMode_Valid(t *testing.T) {
	assert.True(t, models.ModeStandard.Valid())
	assert.True(t, models.ModeSearch.Valid())
	assert.True(t, models.ModeAgentic.Valid())
	assert.False(t, models.ChatMode("turbo").Valid())
	assert.False(t, models.ChatMode("").Valid())
}

// TestSystemStatus_Has tests capability lookup on a nil map.
func TestSystemStatus_Has(t *testing.T) {
	var status models.SystemStatus
	assert.False(t, status.Has(models.CapabilityLLMChat))

	status.Capabilities = map[models.Capability]bool{models.CapabilityLLMChat: true}
	assert.True(t, status.Has(models.CapabilityLLMChat))
	assert.False(t, status.Has(models.CapabilityAgenticReasoning))
}

// TestSearchResult_Source tests the filename fallback.
func TestSearchResult_Source(t *testing.T) {
	withName := models.SearchResult{Metadata: map[string]any{"filename": "10k.pdf"}}
	assert.Equal(t, "10k.pdf", withName.Source())

	assert.Equal(t, "Unknown", models.SearchResult{}.Source())
	assert.Equal(t, "Unknown", models.SearchResult{Metadata: map[string]any{"filename": 7}}.Source())
}
