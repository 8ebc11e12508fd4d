// Package upload provides the upload controller: it dispatches a file to
// the backend by type and normalizes the heterogeneous preview payload into
// a display-ready shape.
package upload

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	domainerrors "github.com/equityresearch/assistant/internal/domain/errors"
	"github.com/equityresearch/assistant/internal/domain/models"
	"github.com/equityresearch/assistant/internal/services/research"
)

// Config holds the configuration for the upload controller.
type Config struct {
	Client *research.Client
	Logger zerolog.Logger
}

// Controller processes one file per submission. Submitting while a previous
// upload is pending is rejected, same discipline as the chat controller.
type Controller struct {
	client *research.Client
	logger zerolog.Logger

	mu       sync.Mutex
	inFlight bool
}

// NewController creates a new upload controller.
func NewController(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("research client is required")
	}

	return &Controller{
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// InFlight reports whether an upload is pending.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Upload infers the file type from the filename, submits the file and
// normalizes the response. Unsupported extensions fail before any network
// call; a pending upload rejects the submission.
func (c *Controller) Upload(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	// Validate the extension before claiming the in-flight slot so a bad
	// filename never blocks a concurrent valid submission.
	if _, err := research.InferFileType(filename); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, domainerrors.NewValidationError("an upload is already in progress", "")
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	resp, err := c.client.UploadFile(ctx, filename, r)
	if err != nil {
		return nil, err
	}

	result, err := Normalize(resp)
	if err != nil {
		return nil, err
	}

	if dropped := len(resp.Charts) - len(result.Charts); dropped > 0 {
		c.logger.Warn().
			Str("filename", filename).
			Int("dropped", dropped).
			Msg("discarded unparseable chart specs")
	}
	return result, nil
}
