// Package store defines the transcript store interface.
package store

import (
	"context"

	"github.com/equityresearch/assistant/internal/domain/models"
)

// Transcripts defines the interface for archived chat transcripts. A
// transcript is written when a session is reset with archival enabled.
type Transcripts interface {
	// Archive persists a finished session transcript.
	Archive(ctx context.Context, transcript *models.Transcript) error

	// Get retrieves a transcript by ID. Returns nil if not found.
	Get(ctx context.Context, id string) (*models.Transcript, error)

	// List returns the most recently archived transcripts, newest first,
	// capped at limit.
	List(ctx context.Context, limit int) ([]models.Transcript, error)

	// Delete removes a transcript. Returns true if it existed.
	Delete(ctx context.Context, id string) (bool, error)
}

// Client is a transcript store with connection lifecycle management.
type Client interface {
	Transcripts

	// Ping checks if the store connection is alive.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close(ctx context.Context) error
}
