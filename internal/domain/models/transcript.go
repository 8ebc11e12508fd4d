package models

import "time"

// Transcript is an archived chat session, written when a session is reset
// with archival enabled.
type Transcript struct {
	ID         string    `json:"id" bson:"_id"`
	Messages   []Message `json:"messages" bson:"messages"`
	StartedAt  time.Time `json:"started_at" bson:"startedAt"`
	ArchivedAt time.Time `json:"archived_at" bson:"archivedAt"`
}

// TurnCount returns the number of user/assistant turns in the transcript,
// excluding system messages.
func (t Transcript) TurnCount() int {
	n := 0
	for _, m := range t.Messages {
		if m.Role == RoleUser || m.Role == RoleAssistant {
			n++
		}
	}
	return n
}
