package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/equityresearch/assistant/internal/api/dto"
)

// UploadHandler handles the file upload endpoints. Previews are fixture
// approximations: CSV columns come from a line/field count, Excel and PDF
// previews are canned. Real parsing belongs to the production backend.
type UploadHandler struct {
	state  *State
	logger zerolog.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(state *State, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{state: state, logger: logger}
}

// csvChartSpec is a minimal plotly-style chart spec, served as an object
// the way the backend's CSV endpoint does.
var csvChartSpec = json.RawMessage(`{"data":[{"type":"scatter","mode":"lines","name":"Close Price"}],"layout":{"title":"Stock Price Over Time","height":400}}`)

// excelChartSpec mirrors the backend's Excel endpoint, which string-encodes
// its chart specs.
var excelChartSpec = json.RawMessage(`"{\"data\":[{\"type\":\"bar\",\"name\":\"Volume\"}],\"layout\":{\"title\":\"Trading Volume\",\"height\":400}}"`)

// CSV handles POST /upload/csv.
// @Summary Upload a CSV file
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.UploadResponse
// @Router /upload/csv [post]
func (h *UploadHandler) CSV(c *gin.Context) {
	filename, content, ok := h.readFile(c, ".csv", "File must be a CSV")
	if !ok {
		return
	}

	preview := csvPreview(content)
	h.state.AddDoc(filename, "csv", len(content))

	c.JSON(http.StatusOK, dto.UploadResponse{
		Success:     true,
		Message:     fmt.Sprintf("Successfully loaded %d rows. Added %s to the index.", preview.Shape[0], filename),
		DataPreview: preview,
		Charts:      []json.RawMessage{csvChartSpec},
	})
}

// Excel handles POST /upload/excel.
// @Summary Upload an Excel file
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Excel file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.UploadResponse
// @Router /upload/excel [post]
func (h *UploadHandler) Excel(c *gin.Context) {
	filename, content, ok := h.readFile(c, ".xls", "File must be Excel format")
	if !ok {
		return
	}

	preview := dto.TabularPreview{
		Shape:   []int{100, 4},
		Columns: []string{"Date", "Open", "Close", "Volume"},
		Head: []map[string]any{
			{"Date": "2024-01-02", "Open": 181.3, "Close": 183.1, "Volume": 41000000},
			{"Date": "2024-01-03", "Open": 183.0, "Close": 182.4, "Volume": 38500000},
		},
		Dtypes: map[string]string{"Date": "object", "Open": "float64", "Close": "float64", "Volume": "int64"},
	}
	h.state.AddDoc(filename, "excel", len(content))

	c.JSON(http.StatusOK, dto.UploadResponse{
		Success:     true,
		Message:     fmt.Sprintf("Successfully loaded %d rows. Added %s to the index.", preview.Shape[0], filename),
		DataPreview: preview,
		Charts:      []json.RawMessage{excelChartSpec},
	})
}

// PDF handles POST /upload/pdf.
// @Summary Upload a PDF file
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.UploadResponse
// @Router /upload/pdf [post]
func (h *UploadHandler) PDF(c *gin.Context) {
	filename, content, ok := h.readFile(c, ".pdf", "File must be a PDF")
	if !ok {
		return
	}

	h.state.AddDoc(filename, "pdf", len(content))

	c.JSON(http.StatusOK, dto.UploadResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully extracted %d characters. Added %s to the index.", len(content), filename),
		DataPreview: dto.DocumentPreview{
			TextLength: len(content),
			WordCount:  len(content)/6 + 1,
			Preview:    fmt.Sprintf("Fixture excerpt of %s. The full text lives only in the production backend.", filename),
		},
	})
}

// readFile extracts the multipart file, enforcing the extension the real
// backend enforces.
func (h *UploadHandler) readFile(c *gin.Context, extPrefix, typeError string) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.UploadResponse{Success: false, Error: "missing file field"})
		return "", nil, false
	}

	name := strings.ToLower(fileHeader.Filename)
	if !strings.Contains(name, extPrefix) {
		c.JSON(http.StatusBadRequest, dto.UploadResponse{Success: false, Error: typeError})
		return "", nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.UploadResponse{Success: false, Error: err.Error()})
		return "", nil, false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.UploadResponse{Success: false, Error: err.Error()})
		return "", nil, false
	}

	h.logger.Debug().Str("filename", fileHeader.Filename).Int("size", len(content)).Msg("received upload")
	return fileHeader.Filename, content, true
}

// csvPreview derives a rough tabular preview from raw CSV bytes. Header
// fields become columns; every dtype is reported as object because the stub
// does not type-infer.
func csvPreview(content []byte) dto.TabularPreview {
	lines := bytes.Split(bytes.TrimSpace(content), []byte("\n"))
	columns := []string{"column_1"}
	if len(lines) > 0 && len(lines[0]) > 0 {
		columns = columns[:0]
		for _, field := range strings.Split(string(bytes.TrimSpace(lines[0])), ",") {
			columns = append(columns, strings.TrimSpace(field))
		}
	}

	rows := len(lines) - 1
	if rows < 0 {
		rows = 0
	}

	dtypes := make(map[string]string, len(columns))
	for _, col := range columns {
		dtypes[col] = "object"
	}

	head := make([]map[string]any, 0, 5)
	for _, line := range lines[1:] {
		if len(head) == 5 {
			break
		}
		fields := strings.Split(string(bytes.TrimSpace(line)), ",")
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if i < len(fields) {
				row[col] = strings.TrimSpace(fields[i])
			}
		}
		head = append(head, row)
	}

	return dto.TabularPreview{
		Shape:   []int{rows, len(columns)},
		Columns: columns,
		Head:    head,
		Dtypes:  dtypes,
	}
}
