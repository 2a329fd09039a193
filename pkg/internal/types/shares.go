package types

// ShareToggleResponse reports the new sharing state of a node.
type ShareToggleResponse struct {
	ID         string `json:"id"`
	IsPublic   bool   `json:"is_public"`
	ShareToken string `json:"share_token,omitempty"`
	Message    string `json:"message,omitempty"`
}

// SharedNode is the public view of a shared file; internal fields like the
// object key never leave the service.
type SharedNode struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Size         int64   `json:"size"`
	ContentType  string  `json:"content_type"`
	BlobURL      string  `json:"blob_url"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}
