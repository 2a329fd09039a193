package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/cotishq/cloudnest/pkg/configs"
	"github.com/cotishq/cloudnest/pkg/internal/model"
	"github.com/cotishq/cloudnest/pkg/internal/storage/blob"
	nlog "github.com/cotishq/cloudnest/pkg/log"
)

// UploadInput describes one incoming file.
type UploadInput struct {
	Name        string
	ContentType string
	Size        int64
	ParentID    *string
	Reader      io.Reader
}

// UploadFile validates the upload against the acceptance policy, writes the
// blob, then records the metadata row. When the row insert fails after a
// successful blob write the orphaned object is logged for later reaping and
// the error is returned as-is.
func (s *NodeService) UploadFile(ctx context.Context, ownerID string, in UploadInput) (*model.Node, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrValidation)
	}

	uploadCfg := configs.GetConfig().Upload

	if !contentTypeAllowed(uploadCfg.AllowedTypes, in.ContentType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, in.ContentType)
	}

	if in.Size > uploadCfg.MaxSizeBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, in.Size, uploadCfg.MaxSizeBytes)
	}

	parent, err := s.resolveParent(ctx, ownerID, in.ParentID)
	if err != nil {
		return nil, err
	}

	put, err := s.blobStore.Put(ctx, blob.PutInput{
		OwnerID:     ownerID,
		ParentID:    in.ParentID,
		Name:        name,
		ContentType: in.ContentType,
		Size:        in.Size,
		Reader:      in.Reader,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	node := &model.Node{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		ObjectKey:   put.Key,
		Path:        "/" + put.Key,
		Size:        in.Size,
		ContentType: in.ContentType,
		BlobURL:     put.URL,
	}
	if put.ThumbnailURL != "" {
		thumb := put.ThumbnailURL
		node.ThumbnailURL = &thumb
	}

	if parent != nil {
		node.ParentID = &parent.ID
	}

	if err := s.dbClient.WithContext(ctx).Create(node).Error; err != nil {
		// The object is already in the blob store with no row pointing at
		// it; record the key so operators can reap it.
		nlog.Logger().Error().
			Err(err).
			Str("owner", ownerID).
			Str("object_key", put.Key).
			Msg("upload metadata insert failed, blob orphaned")

		return nil, fmt.Errorf("record upload metadata: %w", err)
	}

	s.publishNodeUploaded(ctx, node)

	return node, nil
}

func contentTypeAllowed(allowed []string, contentType string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}

	return false
}
