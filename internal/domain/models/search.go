package models

// SearchResult is one hit from the document index.
type SearchResult struct {
	Content string `json:"content"`
	// Relevance is in [0,1], higher is better.
	Relevance float64        `json:"relevance_score"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Source returns the hit's source filename, or "Unknown" when absent.
func (r SearchResult) Source() string {
	if name, ok := r.Metadata["filename"].(string); ok && name != "" {
		return name
	}
	return "Unknown"
}

// IndexStats describes the document index. The backend reports stats with a
// 200 even when the index is unavailable; Err carries that soft failure.
type IndexStats struct {
	DocumentCount int    `json:"document_count"`
	ChunkCount    int    `json:"chunk_count"`
	Err           string `json:"error,omitempty"`
}

// Available reports whether the index answered without a soft error.
func (s IndexStats) Available() bool {
	return s.Err == ""
}
