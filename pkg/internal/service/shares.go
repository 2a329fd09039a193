package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"github.com/cotishq/cloudnest/pkg/internal/model"
	"github.com/cotishq/cloudnest/pkg/internal/types"
	nlog "github.com/cotishq/cloudnest/pkg/log"
)

const (
	shareCachePrefix = "share:"
	shareCacheTTL    = 5 * time.Minute
)

// ResolveShared resolves a public share token to the shared node's public
// view. Only nodes that are currently public and not trashed resolve; the
// result is cached in the KV store and invalidated when sharing turns off
// or the node is trashed or deleted.
func (s *NodeService) ResolveShared(ctx context.Context, token string) (*types.SharedNode, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	cacheKey := shareCachePrefix + token

	if s.kvClient != nil {
		if raw, err := s.kvClient.Get(ctx, cacheKey); err == nil {
			var cached types.SharedNode
			if err := sonic.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var node model.Node

	err := s.dbClient.WithContext(ctx).
		Where("share_token = ? AND is_public = ? AND is_trash = ?", token, true, false).
		First(&node).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("resolve share %s: %w", token, err)
	}

	shared := &types.SharedNode{
		ID:           node.ID,
		Name:         node.Name,
		Size:         node.Size,
		ContentType:  node.ContentType,
		BlobURL:      node.BlobURL,
		ThumbnailURL: node.ThumbnailURL,
	}

	if s.kvClient != nil {
		if raw, err := sonic.Marshal(shared); err == nil {
			if err := s.kvClient.Set(ctx, cacheKey, raw, shareCacheTTL); err != nil {
				nlog.Logger().Warn().Err(err).Str("token", token).Msg("share cache write failed")
			}
		}
	}

	return shared, nil
}

// invalidateShareCache drops the cached lookup for a token so revoked links
// stop resolving before the TTL runs out. A blank token is a no-op.
func (s *NodeService) invalidateShareCache(ctx context.Context, token string) {
	if s.kvClient == nil || token == "" {
		return
	}

	if err := s.kvClient.Delete(ctx, shareCachePrefix+token); err != nil {
		nlog.Logger().Warn().Err(err).Str("token", token).Msg("share cache invalidation failed")
	}
}
