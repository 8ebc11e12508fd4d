// Package chat provides the chat session controller: it owns the ordered
// message history, the active response mode and in-flight request state.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/equityresearch/assistant/internal/core/store"
	domainerrors "github.com/equityresearch/assistant/internal/domain/errors"
	"github.com/equityresearch/assistant/internal/domain/models"
	"github.com/equityresearch/assistant/internal/services/research"
)

// User-visible message texts. Timeout in agentic mode gets its own wording
// because the remedy differs: the user can switch modes.
const (
	welcomeText = "Hello! I'm your equity research assistant. Upload financial documents or ask me about the markets."
	resetText   = "Conversation cleared. Ask a new question to get started."

	errAgenticTimeoutText = "The agentic analysis timed out. Try switching to standard mode or simplifying your query."
	errTimeoutText        = "The request timed out. Please try again."
	errUnreachableText    = "Cannot reach the analysis server. Make sure the backend is running and try again."
	errGenericText        = "Something went wrong while processing your request. Please try again."
)

// Config holds the configuration for the chat session controller.
type Config struct {
	Client *research.Client
	// Status gates mode availability; agentic mode requires the
	// agentic_reasoning capability.
	Status models.SystemStatus
	// Store enables transcript archival on reset. Optional.
	Store  store.Transcripts
	Logger zerolog.Logger
}

// Controller runs the chat session state machine. At most one chat request
// is in flight per controller instance; a second submission while one is
// outstanding is rejected, not queued. History is append-only and replaced
// wholesale only by Reset.
type Controller struct {
	client *research.Client
	store  store.Transcripts
	logger zerolog.Logger
	status models.SystemStatus

	mu          sync.Mutex
	mode        models.ChatMode
	history     []models.Message
	inFlight    bool
	generation  uint64
	startedAt   time.Time
	contextData map[string]any
}

// NewController creates a chat session controller seeded with a single
// system welcome message.
func NewController(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("research client is required")
	}

	c := &Controller{
		client:    cfg.Client,
		store:     cfg.Store,
		logger:    cfg.Logger,
		status:    cfg.Status,
		mode:      models.ModeStandard,
		startedAt: time.Now().UTC(),
	}
	c.history = []models.Message{systemMessage(welcomeText)}
	return c, nil
}

// Mode returns the active chat mode.
func (c *Controller) Mode() models.ChatMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetMode switches the mode used by the next submission. Switching never
// affects an in-flight request. Selecting agentic when the backend has not
// advertised agentic capability is rejected and leaves the mode unchanged.
func (c *Controller) SetMode(mode models.ChatMode) error {
	if !mode.Valid() {
		return domainerrors.NewValidationError("unknown chat mode", string(mode))
	}
	if mode == models.ModeAgentic && !c.status.Has(models.CapabilityAgenticReasoning) {
		return domainerrors.NewValidationError("agentic mode is not available", "backend did not advertise agentic_reasoning")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
	return nil
}

// SetContextData attaches an opaque context blob to subsequent chat
// submissions. The controller never inspects it.
func (c *Controller) SetContextData(data map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contextData = data
}

// History returns a read-only snapshot of the session history.
func (c *Controller) History() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]models.Message, len(c.history))
	copy(snapshot, c.history)
	return snapshot
}

// InFlight reports whether a submission is awaiting a response.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Send submits one user turn. Blank input and concurrent submissions are
// rejected at the boundary without a transport call. On success the user
// and assistant messages are appended; on transport failure a synthetic
// assistant message describing the error is appended instead of the
// response. Either way the controller returns to accepting input.
func (c *Controller) Send(ctx context.Context, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.NewValidationError("message must not be blank", "")
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, domainerrors.NewValidationError("a request is already in flight", "")
	}
	mode := c.mode
	contextData := c.contextData
	generation := c.generation
	c.inFlight = true
	c.history = append(c.history, userMessage(text))
	c.mu.Unlock()

	reply, err := c.client.Chat(ctx, text, mode, contextData)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	// A reset happened while the request was outstanding; the response
	// belongs to a history that no longer exists. Discard it silently.
	if generation != c.generation {
		c.logger.Debug().Str("mode", string(mode)).Msg("discarding stale chat response")
		return nil, domainerrors.NewStaleResponseError("chat")
	}

	if err != nil {
		errMsg := c.errorMessage(mode, err)
		c.history = append(c.history, errMsg)
		c.logger.Warn().Err(err).Str("mode", string(mode)).Msg("chat request failed")
		return &errMsg, nil
	}

	c.history = append(c.history, *reply)
	return reply, nil
}

// Reset replaces the whole history with a single system message and bumps
// the generation so in-flight responses are discarded. When a transcript
// store is configured the outgoing history is archived best-effort.
func (c *Controller) Reset(ctx context.Context) {
	c.mu.Lock()
	outgoing := c.history
	startedAt := c.startedAt
	c.history = []models.Message{systemMessage(resetText)}
	c.generation++
	c.startedAt = time.Now().UTC()
	c.mu.Unlock()

	if c.store == nil {
		return
	}

	transcript := &models.Transcript{
		ID:         uuid.NewString(),
		Messages:   outgoing,
		StartedAt:  startedAt,
		ArchivedAt: time.Now().UTC(),
	}
	if transcript.TurnCount() == 0 {
		return
	}
	if err := c.store.Archive(ctx, transcript); err != nil {
		c.logger.Warn().Err(err).Str("transcript_id", transcript.ID).Msg("failed to archive transcript")
	}
}

// errorMessage maps a transport failure to the synthetic assistant message
// appended to history. The text for a timeout in agentic mode differs from
// every other failure.
func (c *Controller) errorMessage(mode models.ChatMode, err error) models.Message {
	text := errGenericText
	switch {
	case domainerrors.IsTimeout(err) && mode == models.ModeAgentic:
		text = errAgenticTimeoutText
	case domainerrors.IsTimeout(err):
		text = errTimeoutText
	case domainerrors.IsNetworkUnavailable(err):
		text = errUnreachableText
	}

	return models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Content:   text,
		CreatedAt: time.Now().UTC(),
		Metadata:  &models.Metadata{Mode: mode, Error: true},
	}
}

func systemMessage(text string) models.Message {
	return models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleSystem,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}
}

func userMessage(text string) models.Message {
	return models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}
}
