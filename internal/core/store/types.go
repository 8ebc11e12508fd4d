// Package store provides the store type constants.
package store

// Type represents the type of transcript store.
type Type string

const (
	// TypeMongoDB represents a MongoDB-backed transcript store.
	TypeMongoDB Type = "mongodb"
)
