package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cotishq/cloudnest/pkg/internal/model"
)

// CreateFolder creates a folder under the given parent, or at the root when
// parentID is nil. Folders never touch the blob store.
func (s *NodeService) CreateFolder(ctx context.Context, ownerID, name string, parentID *string) (*model.Node, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: folder name is required", ErrValidation)
	}

	parent, err := s.resolveParent(ctx, ownerID, parentID)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()

	node := &model.Node{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		IsFolder:    true,
		ContentType: model.FolderContentType,
		Path:        fmt.Sprintf("/folders/%s/%s", ownerID, id),
	}
	if parent != nil {
		node.ParentID = &parent.ID
	}

	if err := s.dbClient.WithContext(ctx).Create(node).Error; err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	s.publishFolderCreated(ctx, node)

	return node, nil
}
