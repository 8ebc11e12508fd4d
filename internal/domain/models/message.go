// Package models contains domain models for the equity research assistant.
package models

import "time"

// MessageRole represents the role of a message sender.
type MessageRole string

const (
	// RoleUser represents a message from the user.
	RoleUser MessageRole = "user"
	// RoleAssistant represents a message from the assistant.
	RoleAssistant MessageRole = "assistant"
	// RoleSystem represents a system message.
	RoleSystem MessageRole = "system"
)

// Message represents one turn in a conversation. Messages are created
// immutably and appended to an append-only session history; they are never
// mutated in place.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	Metadata  *Metadata   `json:"metadata,omitempty"`
}

// Metadata holds structured payload attached to a message.
type Metadata struct {
	// Mode is the chat mode that produced the response.
	Mode ChatMode `json:"mode,omitempty"`
	// Confidence is in [0,1]; present only for agentic responses.
	Confidence *float64 `json:"confidence,omitempty"`
	// Plan is the ordered sequence of step descriptions for agentic responses.
	Plan []string `json:"plan,omitempty"`
	// IntermediateResults maps step keys to their result descriptors.
	IntermediateResults map[string]StepResult `json:"intermediate_results,omitempty"`
	// Sources lists citation identifiers backing the response.
	Sources []string `json:"sources,omitempty"`
	// ResultsCount is the number of hits behind a search-mode response.
	ResultsCount int `json:"results_count,omitempty"`
	// Error flags a synthetic assistant message describing a failure.
	Error bool `json:"error,omitempty"`
}

// StepResult describes the outcome of one step of an agentic plan.
type StepResult struct {
	StepDescription string `json:"step_description"`
	Tool            string `json:"tool,omitempty"`
	Result          string `json:"result,omitempty"`
	Success         bool   `json:"success"`
}
