// Package model contains the persisted entities.
package model

import (
	"time"
)

// FolderContentType is the content type recorded for folder nodes.
const FolderContentType = "folder"

// Node is one row of the file tree: files and folders share the table and
// IsFolder discriminates. ParentID is nil for root-level nodes; a non-nil
// parent must be a folder owned by the same user (enforced in the service
// layer, never by a DB constraint, so cross-database portability is kept).
type Node struct {
	ID      string `gorm:"primaryKey;size:36"                        json:"id"`
	OwnerID string `gorm:"size:255;index;index:idx_owner_parent"     json:"owner_id"`
	// ParentID references another Node owned by the same user with IsFolder=true.
	ParentID *string `gorm:"size:36;index:idx_owner_parent"           json:"parent_id"`
	Name     string  `gorm:"size:512"                                 json:"name"`
	IsFolder bool    `gorm:"index"                                    json:"is_folder"`

	// ObjectKey is the blob store's native key, stored first-class so deletes
	// never have to re-derive it from the URL. Empty for folders.
	ObjectKey   string `gorm:"size:1024;index" json:"object_key"`
	Path        string `gorm:"size:1024"       json:"path"`
	Size        int64  `gorm:""                json:"size"`
	ContentType string `gorm:"size:255"        json:"content_type"`
	BlobURL     string `gorm:"size:2048"       json:"blob_url"`
	// ThumbnailURL is nil when the backing store produced no preview.
	ThumbnailURL *string `gorm:"size:2048" json:"thumbnail_url"`

	IsStarred bool `gorm:""      json:"is_starred"`
	IsTrash   bool `gorm:"index" json:"is_trash"`
	IsPublic  bool `gorm:""      json:"is_public"`
	// ShareToken is a ULID minted the first time sharing is enabled; it stays
	// stable across share toggles so re-enabling restores old links.
	ShareToken string `gorm:"size:26;index" json:"share_token,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
