// Package transport issues HTTP requests against the research backend with
// a timeout policy matching each operation's latency class, and maps every
// failure into the domain error taxonomy.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	domainerrors "github.com/equityresearch/assistant/internal/domain/errors"
)

// Class selects the timeout budget for a request.
type Class int

const (
	// ClassInteractive targets operations that complete within a few
	// seconds of server work.
	ClassInteractive Class = iota
	// ClassHeavy targets long-running operations such as file uploads and
	// agentic chat.
	ClassHeavy
)

const (
	// DefaultInteractiveTimeout is the default wall-clock budget for the
	// interactive class.
	DefaultInteractiveTimeout = 30 * time.Second
	// DefaultHeavyTimeout is the default wall-clock budget for the heavy
	// class.
	DefaultHeavyTimeout = 120 * time.Second

	// maxErrorBody bounds how much of a failed response body is kept for
	// error reporting.
	maxErrorBody = 8 << 10
)

// Config holds the configuration for the transport client.
type Config struct {
	BaseURL            string
	InteractiveTimeout time.Duration
	HeavyTimeout       time.Duration
	Logger             zerolog.Logger
}

// Client issues requests with one of two timeout budgets. It performs no
// retries; a failure is terminal for that request and must be explicitly
// reissued by the caller.
type Client struct {
	baseURL     string
	interactive *http.Client
	heavy       *http.Client
	logger      zerolog.Logger
}

// NewClient creates a new transport client.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	interactiveTimeout := cfg.InteractiveTimeout
	if interactiveTimeout == 0 {
		interactiveTimeout = DefaultInteractiveTimeout
	}
	heavyTimeout := cfg.HeavyTimeout
	if heavyTimeout == 0 {
		heavyTimeout = DefaultHeavyTimeout
	}

	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		interactive: &http.Client{Timeout: interactiveTimeout},
		heavy:       &http.Client{Timeout: heavyTimeout},
		logger:      cfg.Logger,
	}, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, class Class, operation, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return domainerrors.NewInternalError(fmt.Sprintf("failed to create %s request", operation), err)
	}
	return c.do(class, operation, req, out)
}

// PostJSON issues a POST request with a JSON body and decodes the JSON
// response into out. A nil body sends no payload.
func (c *Client) PostJSON(ctx context.Context, class Class, operation, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return domainerrors.NewInternalError(fmt.Sprintf("failed to encode %s request", operation), err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, query, reader, "application/json")
	if err != nil {
		return domainerrors.NewInternalError(fmt.Sprintf("failed to create %s request", operation), err)
	}
	return c.do(class, operation, req, out)
}

// Delete issues a DELETE request and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, class Class, operation, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return domainerrors.NewInternalError(fmt.Sprintf("failed to create %s request", operation), err)
	}
	return c.do(class, operation, req, out)
}

// PostFile issues a multipart POST with a single file field and decodes the
// JSON response into out. The whole payload is buffered before sending so
// the request carries an accurate content length.
func (c *Client) PostFile(ctx context.Context, class Class, operation, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return domainerrors.NewInternalError(fmt.Sprintf("failed to build %s payload", operation), err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return domainerrors.NewInternalError(fmt.Sprintf("failed to read %s payload", operation), err)
	}
	if err := writer.Close(); err != nil {
		return domainerrors.NewInternalError(fmt.Sprintf("failed to finalize %s payload", operation), err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType())
	if err != nil {
		return domainerrors.NewInternalError(fmt.Sprintf("failed to create %s request", operation), err)
	}
	return c.do(class, operation, req, out)
}

// newRequest builds a request against the backend base URL.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// do executes the request on the client matching the class and decodes the
// response, classifying every failure into the domain taxonomy.
func (c *Client) do(class Class, operation string, req *http.Request, out any) error {
	client := c.interactive
	if class == ClassHeavy {
		client = c.heavy
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return c.classify(operation, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("operation", operation).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domainerrors.NewServerError(operation, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.NewProtocolError(operation, err)
	}
	return nil
}

// classify maps a request execution failure to Timeout or
// NetworkUnavailable. Callers must be able to tell the two apart because
// the user-facing message differs.
func (c *Client) classify(operation string, err error) error {
	if isTimeout(err) {
		c.logger.Warn().Str("operation", operation).Msg("backend request timed out")
		return domainerrors.NewTimeoutError(operation, err)
	}
	c.logger.Warn().Err(err).Str("operation", operation).Msg("backend unreachable")
	return domainerrors.NewNetworkUnavailableError(operation, err)
}

// isTimeout reports whether err represents an exceeded deadline rather than
// a connection-level failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
