package types

import "time"

// Status represents the lifecycle state of a chat session.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the session has stopped running.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusFailed:
		return true
	}
	return false
}

// Timing captures when a session started and, for terminal sessions, ended.
type Timing struct {
	StartedAt time.Time  `json:"started_at" yaml:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty" yaml:"ended_at,omitempty"`
}

// SessionRecord is the in-memory representation of one chat session.
// Key is the only mutable field; everything else is fixed at seed time.
type SessionRecord struct {
	Key         string `json:"key" yaml:"key"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
	Timing      Timing `json:"timing" yaml:"timing"`
}

// RecordChange pairs a record's state before and after a mutation so
// consumers can diff without re-reading the full list.
type RecordChange struct {
	Original SessionRecord `json:"original"`
	Modified SessionRecord `json:"modified"`
}

// MovedEvent announces that a resource's identity changed at the store
// layer. It carries no record data; the registry is the authority.
type MovedEvent struct {
	OldKey string `json:"old_key"`
	NewKey string `json:"new_key"`
}

// RegistryStats contains registry statistics.
type RegistryStats struct {
	TotalSessions int            `json:"total_sessions"`
	ByStatus      map[Status]int `json:"by_status"`
	Renames       int64          `json:"renames"`
}
