// Package mongodb provides the MongoDB transcript store implementation.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/equityresearch/assistant/internal/domain/models"
)

const (
	// TranscriptsCollection is the name of the transcripts collection.
	TranscriptsCollection = "transcripts"
)

// Client implements the store.Client interface for MongoDB.
type Client struct {
	client      *mongo.Client
	transcripts *Transcripts
}

// ClientConfig holds MongoDB connection configuration.
type ClientConfig struct {
	URI          string
	DatabaseName string
}

// NewClient creates a new MongoDB transcript store client.
func NewClient(ctx context.Context, config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.URI == "" {
		return nil, fmt.Errorf("mongodb URI is required")
	}
	if config.DatabaseName == "" {
		return nil, fmt.Errorf("database name is required")
	}

	clientOpts := options.Client().ApplyURI(config.URI)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(config.DatabaseName)
	c := &Client{
		client:      client,
		transcripts: NewTranscripts(db),
	}

	return c, nil
}

// EnsureIndexes creates the indexes the transcript queries rely on.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.transcripts.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "archivedAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create transcript index: %w", err)
	}
	return nil
}

// Archive persists a finished session transcript.
func (c *Client) Archive(ctx context.Context, transcript *models.Transcript) error {
	return c.transcripts.Archive(ctx, transcript)
}

// Get retrieves a transcript by ID. Returns nil if not found.
func (c *Client) Get(ctx context.Context, id string) (*models.Transcript, error) {
	return c.transcripts.Get(ctx, id)
}

// List returns the most recently archived transcripts, newest first.
func (c *Client) List(ctx context.Context, limit int) ([]models.Transcript, error) {
	return c.transcripts.List(ctx, limit)
}

// Delete removes a transcript. Returns true if it existed.
func (c *Client) Delete(ctx context.Context, id string) (bool, error) {
	return c.transcripts.Delete(ctx, id)
}

// Ping checks if the store connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Close closes the store connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close mongodb connection: %w", err)
	}
	return nil
}
