package models

import "encoding/json"

// PreviewKind discriminates the upload preview union.
type PreviewKind string

const (
	// PreviewTabular is the preview shape for CSV and Excel uploads.
	PreviewTabular PreviewKind = "tabular"
	// PreviewDocument is the preview shape for PDF uploads.
	PreviewDocument PreviewKind = "document"
)

// TabularPreview summarizes a parsed spreadsheet.
type TabularPreview struct {
	RowCount    int              `json:"row_count"`
	ColumnCount int              `json:"column_count"`
	Columns     []string         `json:"columns"`
	ColumnTypes map[string]string `json:"column_types"`
	// SampleRows preserves the order of the backend's head() sample.
	SampleRows []map[string]any `json:"sample_rows"`
}

// DocumentPreview summarizes an extracted text document.
type DocumentPreview struct {
	CharCount int    `json:"char_count"`
	WordCount int    `json:"word_count"`
	Excerpt   string `json:"excerpt"`
}

// Preview is the tagged union of upload preview shapes. Exactly one of
// Tabular and Document is non-nil, matching Kind.
type Preview struct {
	Kind     PreviewKind      `json:"kind"`
	Tabular  *TabularPreview  `json:"tabular,omitempty"`
	Document *DocumentPreview `json:"document,omitempty"`
}

// ChartSpec is one opaque, independently renderable chart specification.
// The payload is kept as raw JSON; the client never interprets it beyond
// verifying that it parses.
type ChartSpec struct {
	Spec json.RawMessage `json:"spec"`
}

// UploadResult is the normalized outcome of a file submission.
type UploadResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Preview *Preview `json:"preview,omitempty"`
	// Charts holds the chart specs that parsed; malformed blobs are
	// dropped individually without affecting the rest.
	Charts []ChartSpec `json:"charts,omitempty"`
	Error  string      `json:"error,omitempty"`
}
