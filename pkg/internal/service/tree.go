package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cotishq/cloudnest/pkg/internal/model"
)

// getOwnedNode loads a node by id scoped to the owner. Foreign or missing
// ids both come back as ErrNotFound.
func (s *NodeService) getOwnedNode(ctx context.Context, ownerID, id string) (*model.Node, error) {
	var node model.Node

	err := s.dbClient.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&node).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("load node %s: %w", id, err)
	}

	return &node, nil
}

// resolveParent validates a prospective parent. A nil or empty id resolves
// to the root (no parent). The parent must exist, belong to the owner and
// be a folder; any miss is ErrNotFound.
func (s *NodeService) resolveParent(ctx context.Context, ownerID string, parentID *string) (*model.Node, error) {
	if parentID == nil || *parentID == "" {
		return nil, nil
	}

	parent, err := s.getOwnedNode(ctx, ownerID, *parentID)
	if err != nil {
		return nil, err
	}

	if !parent.IsFolder {
		return nil, ErrNotFound
	}

	return parent, nil
}

// ListChildren lists the direct children of a folder, or the root level
// when parentID is nil.
func (s *NodeService) ListChildren(ctx context.Context, ownerID string, parentID *string) ([]model.Node, error) {
	if _, err := s.resolveParent(ctx, ownerID, parentID); err != nil {
		return nil, err
	}

	q := s.dbClient.WithContext(ctx).Where("owner_id = ?", ownerID)

	if parentID == nil || *parentID == "" {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *parentID)
	}

	var nodes []model.Node
	if err := q.Order("is_folder DESC, name ASC").Find(&nodes).Error; err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}

	return nodes, nil
}

// ListStarred lists the owner's starred nodes that are not in the trash.
func (s *NodeService) ListStarred(ctx context.Context, ownerID string) ([]model.Node, error) {
	var nodes []model.Node

	err := s.dbClient.WithContext(ctx).
		Where("owner_id = ? AND is_starred = ? AND is_trash = ?", ownerID, true, false).
		Order("updated_at DESC").
		Find(&nodes).Error
	if err != nil {
		return nil, fmt.Errorf("list starred: %w", err)
	}

	return nodes, nil
}

// ListTrashed lists the owner's trashed nodes.
func (s *NodeService) ListTrashed(ctx context.Context, ownerID string) ([]model.Node, error) {
	var nodes []model.Node

	err := s.dbClient.WithContext(ctx).
		Where("owner_id = ? AND is_trash = ?", ownerID, true).
		Order("updated_at DESC").
		Find(&nodes).Error
	if err != nil {
		return nil, fmt.Errorf("list trashed: %w", err)
	}

	return nodes, nil
}

// collectDescendants walks the subtree under a folder breadth-first and
// returns every descendant node. The folder itself is not included.
func (s *NodeService) collectDescendants(ctx context.Context, ownerID, folderID string) ([]model.Node, error) {
	var (
		result   []model.Node
		frontier = []string{folderID}
	)

	for len(frontier) > 0 {
		var children []model.Node

		err := s.dbClient.WithContext(ctx).
			Where("owner_id = ? AND parent_id IN ?", ownerID, frontier).
			Find(&children).Error
		if err != nil {
			return nil, fmt.Errorf("collect descendants of %s: %w", folderID, err)
		}

		if len(children) == 0 {
			break
		}

		result = append(result, children...)

		frontier = frontier[:0]
		for _, c := range children {
			if c.IsFolder {
				frontier = append(frontier, c.ID)
			}
		}
	}

	return result, nil
}
