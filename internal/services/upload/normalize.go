package upload

import (
	"encoding/json"
	"fmt"

	domainerrors "github.com/equityresearch/assistant/internal/domain/errors"
	"github.com/equityresearch/assistant/internal/domain/models"
	"github.com/equityresearch/assistant/internal/services/research"
)

// tabularPreviewWire is the backend's preview shape for CSV/Excel uploads.
type tabularPreviewWire struct {
	Shape   []int             `json:"shape"`
	Columns []string          `json:"columns"`
	Head    []map[string]any  `json:"head"`
	Dtypes  map[string]string `json:"dtypes"`
}

// documentPreviewWire is the backend's preview shape for PDF uploads.
type documentPreviewWire struct {
	TextLength int    `json:"text_length"`
	WordCount  int    `json:"word_count"`
	Preview    string `json:"preview"`
}

// Normalize converts a raw upload response into the display-ready result.
// The preview union is discriminated by the file type that selected the
// endpoint; chart blobs are parsed independently so one malformed spec
// never suppresses the rest or the preview itself.
func Normalize(resp *research.UploadResponse) (*models.UploadResult, error) {
	if resp == nil {
		return nil, domainerrors.NewProtocolError("upload", fmt.Errorf("missing response"))
	}

	result := &models.UploadResult{
		Success: resp.Success,
		Message: resp.Message,
		Error:   resp.Error,
	}

	if !resp.Success && result.Error == "" {
		result.Error = resp.Message
	}

	if len(resp.DataPreview) > 0 {
		preview, err := normalizePreview(resp.FileType, resp.DataPreview)
		if err != nil {
			return nil, err
		}
		result.Preview = preview
	}

	charts, _ := models.ParseChartSpecs(resp.Charts)
	result.Charts = charts
	return result, nil
}

// normalizePreview decodes the preview union for the given file type.
func normalizePreview(fileType research.FileType, raw json.RawMessage) (*models.Preview, error) {
	switch fileType {
	case research.FileTypeCSV, research.FileTypeExcel:
		var wire tabularPreviewWire
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, domainerrors.NewProtocolError("upload preview", err)
		}
		if len(wire.Shape) != 2 {
			return nil, domainerrors.NewProtocolError("upload preview", fmt.Errorf("expected [rows, columns] shape, got %v", wire.Shape))
		}
		return &models.Preview{
			Kind: models.PreviewTabular,
			Tabular: &models.TabularPreview{
				RowCount:    wire.Shape[0],
				ColumnCount: wire.Shape[1],
				Columns:     wire.Columns,
				ColumnTypes: wire.Dtypes,
				SampleRows:  wire.Head,
			},
		}, nil

	case research.FileTypePDF:
		var wire documentPreviewWire
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, domainerrors.NewProtocolError("upload preview", err)
		}
		return &models.Preview{
			Kind: models.PreviewDocument,
			Document: &models.DocumentPreview{
				CharCount: wire.TextLength,
				WordCount: wire.WordCount,
				Excerpt:   wire.Preview,
			},
		}, nil

	default:
		return nil, domainerrors.NewProtocolError("upload preview", fmt.Errorf("unknown file type %q", fileType))
	}
}
