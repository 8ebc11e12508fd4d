// Package mongodb provides the transcripts collection implementation.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/equityresearch/assistant/internal/domain/models"
)

// Transcripts implements the store.Transcripts interface for MongoDB.
type Transcripts struct {
	collection *mongo.Collection
}

// NewTranscripts creates a new transcripts collection wrapper.
func NewTranscripts(db *mongo.Database) *Transcripts {
	return &Transcripts{
		collection: db.Collection(TranscriptsCollection),
	}
}

// Archive persists a finished session transcript.
func (t *Transcripts) Archive(ctx context.Context, transcript *models.Transcript) error {
	if transcript == nil {
		return fmt.Errorf("transcript is required")
	}
	if transcript.ID == "" {
		return fmt.Errorf("transcript ID is required")
	}

	_, err := t.collection.InsertOne(ctx, transcript)
	if err != nil {
		return fmt.Errorf("failed to insert transcript: %w", err)
	}
	return nil
}

// Get retrieves a transcript by ID. Returns nil if not found.
func (t *Transcripts) Get(ctx context.Context, id string) (*models.Transcript, error) {
	var transcript models.Transcript
	err := t.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&transcript)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	return &transcript, nil
}

// List returns the most recently archived transcripts, newest first.
func (t *Transcripts) List(ctx context.Context, limit int) ([]models.Transcript, error) {
	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "archivedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := t.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list transcripts: %w", err)
	}
	defer cursor.Close(ctx)

	var transcripts []models.Transcript
	if err := cursor.All(ctx, &transcripts); err != nil {
		return nil, fmt.Errorf("failed to decode transcripts: %w", err)
	}
	return transcripts, nil
}

// Delete removes a transcript. Returns true if it existed.
func (t *Transcripts) Delete(ctx context.Context, id string) (bool, error) {
	result, err := t.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete transcript: %w", err)
	}
	return result.DeletedCount > 0, nil
}
