// Package types defines the request and response shapes of the HTTP API.
package types

// CreateFolderRequest creates a folder under an optional parent. A nil
// ParentID places the folder at the root of the owner's tree.
type CreateFolderRequest struct {
	Name     string  `binding:"required" json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}
