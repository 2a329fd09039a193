package types

// UploadForm is the multipart form accompanying a file upload.
type UploadForm struct {
	// ParentID optionally places the file inside a folder.
	ParentID *string `form:"parent_id" json:"parent_id,omitempty"`
}
