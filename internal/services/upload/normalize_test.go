// Package upload provides tests for upload response normalization.
package upload_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/equityresearch/assistant/internal/domain/errors"
	"github.com/equityresearch/assistant/internal/domain/models"
	"github.com/equityresearch/assistant/internal/services/research"
	"github.com/equityresearch/assistant/internal/services/upload"
)

// TestNormalize_TabularPreview tests CSV preview decoding.
func TestNormalize_TabularPreview(t *testing.T) {
	resp := &research.UploadResponse{
		Success: true,
		Message: "CSV file processed successfully",
		DataPreview: json.RawMessage(`{
			"shape": [250, 3],
			"columns": ["date", "close", "volume"],
			"head": [{"date": "2024-01-02", "close": 185.6, "volume": 52000000}],
			"dtypes": {"date": "object", "close": "float64", "volume": "int64"}
		}`),
		FileType: research.FileTypeCSV,
	}

	result, err := upload.Normalize(resp)

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Preview)
	assert.Equal(t, models.PreviewTabular, result.Preview.Kind)

	tabular := result.Preview.Tabular
	require.NotNil(t, tabular)
	assert.Equal(t, 250, tabular.RowCount)
	assert.Equal(t, 3, tabular.ColumnCount)
	assert.Equal(t, []string{"date", "close", "volume"}, tabular.Columns)
	assert.Equal(t, "float64", tabular.ColumnTypes["close"])
	require.Len(t, tabular.SampleRows, 1)
}

// TestNormalize_DocumentPreview tests PDF preview decoding.
func TestNormalize_DocumentPreview(t *testing.T) {
	resp := &research.UploadResponse{
		Success:     true,
		Message:     "PDF file processed successfully",
		DataPreview: json.RawMessage(`{"text_length": 48213, "word_count": 7150, "preview": "Annual Report 2024..."}`),
		FileType:    research.FileTypePDF,
	}

	result, err := upload.Normalize(resp)

	require.NoError(t, err)
	require.NotNil(t, result.Preview)
	assert.Equal(t, models.PreviewDocument, result.Preview.Kind)

	doc := result.Preview.Document
	require.NotNil(t, doc)
	assert.Equal(t, 48213, doc.CharCount)
	assert.Equal(t, 7150, doc.WordCount)
	assert.Equal(t, "Annual Report 2024...", doc.Excerpt)
}

// TestNormalize_MalformedChartDropped tests that one bad chart blob drops
// alone: the remaining charts and the preview survive.
func TestNormalize_MalformedChartDropped(t *testing.T) {
	resp := &research.UploadResponse{
		Success:     true,
		Message:     "CSV file processed successfully",
		DataPreview: json.RawMessage(`{"shape": [10, 2], "columns": ["a", "b"], "head": [], "dtypes": {}}`),
		Charts: []json.RawMessage{
			json.RawMessage(`{"data": [], "layout": {"title": "Price"}}`),
			json.RawMessage(`"{broken json`),
			json.RawMessage(`{"data": [], "layout": {"title": "Volume"}}`),
		},
		FileType: research.FileTypeCSV,
	}

	result, err := upload.Normalize(resp)

	require.NoError(t, err)
	assert.Len(t, result.Charts, 2)
	require.NotNil(t, result.Preview)
	assert.Equal(t, 10, result.Preview.Tabular.RowCount)
}

// TestNormalize_StringEncodedCharts tests that charts delivered as
// JSON-encoded strings are unwrapped. The excel endpoint serializes them
// that way.
func TestNormalize_StringEncodedCharts(t *testing.T) {
	encoded, err := json.Marshal(`{"data": [], "layout": {"title": "Trend"}}`)
	require.NoError(t, err)

	resp := &research.UploadResponse{
		Success:  true,
		Charts:   []json.RawMessage{json.RawMessage(encoded)},
		FileType: research.FileTypeExcel,
	}

	result, err := upload.Normalize(resp)

	require.NoError(t, err)
	require.Len(t, result.Charts, 1)
	assert.True(t, json.Valid(result.Charts[0].Spec))
}

// TestNormalize_FailureBackfillsError tests that a failed upload without an
// explicit error carries the message as the error.
func TestNormalize_FailureBackfillsError(t *testing.T) {
	resp := &research.UploadResponse{
		Success:  false,
		Message:  "File must be a CSV",
		FileType: research.FileTypeCSV,
	}

	result, err := upload.Normalize(resp)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "File must be a CSV", result.Error)
	assert.Nil(t, result.Preview)
}

// TestNormalize_BadShape tests that a preview without a [rows, columns]
// shape is a protocol error.
func TestNormalize_BadShape(t *testing.T) {
	resp := &research.UploadResponse{
		Success:     true,
		DataPreview: json.RawMessage(`{"shape": [5], "columns": [], "head": [], "dtypes": {}}`),
		FileType:    research.FileTypeCSV,
	}

	_, err := upload.Normalize(resp)

	require.Error(t, err)
	assert.True(t, domainerrors.IsProtocolError(err))
}

// TestNormalize_NilResponse tests nil input handling.
func TestNormalize_NilResponse(t *testing.T) {
	_, err := upload.Normalize(nil)
	require.Error(t, err)
	assert.True(t, domainerrors.IsProtocolError(err))
}
