package models

import (
	"bytes"
	"encoding/json"
)

// ParseChartSpecs normalizes a sequence of chart blobs. The backend emits
// charts either as JSON objects or as JSON-encoded strings depending on the
// endpoint, so each entry is decoded independently; a blob that fails to
// parse is dropped without affecting the others. Returns the renderable
// specs in wire order and the number of blobs dropped.
func ParseChartSpecs(blobs []json.RawMessage) ([]ChartSpec, int) {
	if len(blobs) == 0 {
		return nil, 0
	}

	specs := make([]ChartSpec, 0, len(blobs))
	dropped := 0

	for _, blob := range blobs {
		spec, ok := parseChartBlob(blob)
		if !ok {
			dropped++
			continue
		}
		specs = append(specs, ChartSpec{Spec: spec})
	}

	return specs, dropped
}

// parseChartBlob extracts one chart spec object from a blob.
func parseChartBlob(blob json.RawMessage) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(blob)
	if len(trimmed) == 0 {
		return nil, false
	}

	// String-encoded spec: unwrap, then validate the inner document.
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, false
		}
		trimmed = bytes.TrimSpace([]byte(inner))
	}

	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, false
	}
	return json.RawMessage(trimmed), true
}
