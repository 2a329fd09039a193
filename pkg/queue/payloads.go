package queue

import "time"

// EventHeader is the common metadata attached to every event.
type EventHeader struct {
	// Topic mirrors the publish topic so dumped messages stay traceable.
	Topic string `json:"topic"`
	// TraceID correlates the event with the originating request.
	TraceID string `json:"trace_id,omitempty"`
	// Producer names the publishing service.
	Producer string `json:"producer,omitempty"`
	// OccurredAt is UTC, RFC3339.
	OccurredAt time.Time `json:"occurred_at"`
	// Version allows payloads to evolve without breaking consumers.
	Version string `json:"version,omitempty"`
}

// Message is the envelope: Header + topic-specific Payload.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// NodeRef identifies a node in an event payload.
type NodeRef struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	ParentID    string `json:"parent_id,omitempty"`
	Name        string `json:"name"`
	IsFolder    bool   `json:"is_folder,omitempty"`
	ObjectKey   string `json:"object_key,omitempty"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// NodeUploadedPayload reports a completed upload.
type NodeUploadedPayload struct {
	Node NodeRef `json:"node"`
}

// FolderCreatedPayload reports a new folder.
type FolderCreatedPayload struct {
	Node NodeRef `json:"node"`
}

// NodeTrashStatePayload reports a trash flag change; Trashed tells the
// direction of the toggle.
type NodeTrashStatePayload struct {
	Node    NodeRef `json:"node"`
	Trashed bool    `json:"trashed"`
}

// NodeDeletedPayload reports a permanent deletion.
type NodeDeletedPayload struct {
	Node NodeRef `json:"node"`
	// DescendantCount counts the children removed with a folder.
	DescendantCount int `json:"descendant_count,omitempty"`
}

// TrashEmptiedPayload reports a recycle bin sweep.
type TrashEmptiedPayload struct {
	OwnerID      string `json:"owner_id"`
	DeletedCount int64  `json:"deleted_count"`
}
