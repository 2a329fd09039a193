package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map them onto
// HTTP statuses with errors.Is; anything unmatched is an internal error.
var (
	// ErrUnauthorized means the request carries no authenticated user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound covers missing nodes and nodes owned by someone else.
	ErrNotFound = errors.New("not found")
	// ErrValidation covers rejected input such as empty names.
	ErrValidation = errors.New("validation failed")
	// ErrUnsupportedType rejects content types outside the upload allow-list.
	ErrUnsupportedType = errors.New("unsupported content type")
	// ErrFileTooLarge rejects uploads over the configured size cap.
	ErrFileTooLarge = errors.New("file too large")
	// ErrUploadFailed means the blob write failed; no metadata row exists.
	ErrUploadFailed = errors.New("upload failed")
)
