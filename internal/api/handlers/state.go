// Package handlers provides the stub research API handlers. The stub serves
// the backend HTTP contract with fixture data so the client, CLI and tests
// have a local collaborator; it deliberately performs no real document
// analysis.
package handlers

import (
	"sync"
)

// docEntry records one uploaded document in the fixture index.
type docEntry struct {
	Filename string
	FileType string
	Chunks   int
}

// State is the in-memory fixture state shared by the stub handlers.
type State struct {
	mu      sync.Mutex
	docs    []docEntry
	agentic bool
}

// StateOptions configures the fixture state.
type StateOptions struct {
	// AgenticEnabled controls whether the stub advertises agentic
	// capability; turn it off to exercise the client's fallback gating.
	AgenticEnabled bool
}

// NewState creates the fixture state.
func NewState(opts StateOptions) *State {
	return &State{agentic: opts.AgenticEnabled}
}

// AgenticEnabled reports whether agentic mode is advertised.
func (s *State) AgenticEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agentic
}

// AddDoc records an uploaded document.
func (s *State) AddDoc(filename, fileType string, size int) {
	chunks := size/500 + 1
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, docEntry{Filename: filename, FileType: fileType, Chunks: chunks})
}

// Docs returns a snapshot of the recorded documents.
func (s *State) Docs() []docEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]docEntry, len(s.docs))
	copy(snapshot, s.docs)
	return snapshot
}

// Clear drops every recorded document.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
}

// Counts returns the document and chunk counts.
func (s *State) Counts() (docs, chunks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		chunks += d.Chunks
	}
	return len(s.docs), chunks
}
