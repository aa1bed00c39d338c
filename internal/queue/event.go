// Package queue defines message payloads exchanged over the message broker.
package queue

// Directory activity actions.
const (
	ActionListed  = "listed"  // a new entry was created
	ActionEdited  = "edited"  // an existing entry was overwritten
	ActionDeleted = "deleted" // an entry was removed
)

// DirectoryEvent is published whenever a directory entry is created,
// edited or deleted. It contains enough information for downstream
// consumers to log or trigger notifications without querying the
// primary database.
type DirectoryEvent struct {
	EntityKind string `json:"entity_kind"` // "venue", "artist" or "show"
	EntityID   uint64 `json:"entity_id"`
	Name       string `json:"name"`   // display name; empty for shows
	Action     string `json:"action"` // one of the Action* constants
	OccurredAt string `json:"occurred_at"`
}
