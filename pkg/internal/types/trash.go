package types

// TrashSweepResponse reports the outcome of emptying the recycle bin.
type TrashSweepResponse struct {
	DeletedCount int64  `json:"deleted_count"`
	Message      string `json:"message,omitempty"`
}

// DeleteNodeResponse reports a permanent deletion.
type DeleteNodeResponse struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}
