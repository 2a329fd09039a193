package service

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid"

	"github.com/cotishq/cloudnest/pkg/internal/model"
)

// Rename changes a node's display name. The owner check is part of the
// lookup, so renaming someone else's node reads as ErrNotFound.
func (s *NodeService) Rename(ctx context.Context, ownerID, id, name string) (*model.Node, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	node, err := s.getOwnedNode(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.dbClient.WithContext(ctx).Model(node).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("rename node %s: %w", id, err)
	}

	node.Name = name

	return node, nil
}

// ToggleStar flips the starred flag and returns the updated node.
func (s *NodeService) ToggleStar(ctx context.Context, ownerID, id string) (*model.Node, error) {
	node, err := s.getOwnedNode(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	starred := !node.IsStarred
	if err := s.dbClient.WithContext(ctx).Model(node).Update("is_starred", starred).Error; err != nil {
		return nil, fmt.Errorf("toggle star on %s: %w", id, err)
	}

	node.IsStarred = starred

	return node, nil
}

// ToggleTrash flips the trash flag on one node. The toggle never cascades;
// children keep their own flags and the sweep reconciles folders later.
func (s *NodeService) ToggleTrash(ctx context.Context, ownerID, id string) (*model.Node, string, error) {
	node, err := s.getOwnedNode(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}

	trashed := !node.IsTrash
	if err := s.dbClient.WithContext(ctx).Model(node).Update("is_trash", trashed).Error; err != nil {
		return nil, "", fmt.Errorf("toggle trash on %s: %w", id, err)
	}

	node.IsTrash = trashed

	// Trashed nodes never resolve through their share link, so the cached
	// lookup has to go the moment the flag flips.
	s.invalidateShareCache(ctx, node.ShareToken)

	message := fmt.Sprintf("%s has been restored", node.Name)
	if trashed {
		message = fmt.Sprintf("%s has been moved to Trash", node.Name)
	}

	s.publishTrashState(ctx, node)

	return node, message, nil
}

var (
	ulidMu      sync.Mutex
	ulidEntropy = ulid.Monotonic(crand.Reader, 0)
)

func newShareToken() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}

// ToggleShare flips public sharing. The share token is minted once, on the
// first enable, and kept across toggles so re-enabling restores old links.
// Disabling drops the cached share lookup immediately.
func (s *NodeService) ToggleShare(ctx context.Context, ownerID, id string) (*model.Node, error) {
	node, err := s.getOwnedNode(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	public := !node.IsPublic
	updates := map[string]any{"is_public": public}

	if public && node.ShareToken == "" {
		node.ShareToken = newShareToken()
		updates["share_token"] = node.ShareToken
	}

	if err := s.dbClient.WithContext(ctx).Model(node).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("toggle share on %s: %w", id, err)
	}

	node.IsPublic = public

	if !public {
		s.invalidateShareCache(ctx, node.ShareToken)
	}

	return node, nil
}
