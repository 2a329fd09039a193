package types

// RenameNodeRequest changes a node's display name.
type RenameNodeRequest struct {
	Name string `binding:"required" json:"name"`
}

// ListNodesQuery filters a children listing.
type ListNodesQuery struct {
	// ParentID limits the listing to one folder; empty means root level.
	ParentID string `form:"parent_id" json:"parent_id,omitempty"`
}

// ActionResponse is the generic response for state-changing operations that
// return a human-readable outcome.
type ActionResponse struct {
	Message string `json:"message,omitempty"`
}
