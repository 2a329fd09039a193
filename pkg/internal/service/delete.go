package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cotishq/cloudnest/pkg/configs"
	"github.com/cotishq/cloudnest/pkg/internal/model"
	"github.com/cotishq/cloudnest/pkg/internal/storage/blob"
	nlog "github.com/cotishq/cloudnest/pkg/log"
)

const blobDeleteConcurrency = 8

// blobKeyFor resolves the object key for a file node. Rows written by this
// version carry the key directly; older rows fall back to URL parsing and
// finally to a name search in the owner's scope.
func (s *NodeService) blobKeyFor(ctx context.Context, node *model.Node) string {
	if node.IsFolder {
		return ""
	}

	if node.ObjectKey != "" {
		return node.ObjectKey
	}

	bucket := configs.GetConfig().Blob.BucketName
	if key := blob.KeyFromURL(node.BlobURL, bucket); key != "" {
		return key
	}

	key, err := s.blobStore.FindKeyByName(ctx, node.OwnerID, node.Name)
	if err != nil {
		return ""
	}

	return key
}

// deleteBlob removes a file node's object. Cleanup is best effort: a failed
// or unresolvable delete is logged and never blocks metadata removal.
func (s *NodeService) deleteBlob(ctx context.Context, node *model.Node) {
	key := s.blobKeyFor(ctx, node)
	if key == "" {
		nlog.Logger().Warn().
			Str("node", node.ID).
			Str("owner", node.OwnerID).
			Msg("no object key resolved, skipping blob cleanup")

		return
	}

	if err := s.blobStore.Delete(ctx, key); err != nil {
		nlog.Logger().Error().
			Err(err).
			Str("node", node.ID).
			Str("object_key", key).
			Msg("blob cleanup failed")
	}
}

// PermanentDelete removes a node for good. Folders are deleted bottom-up,
// children before the folder itself, so an abort can never orphan a child
// row. Returns the number of nodes removed including the target.
func (s *NodeService) PermanentDelete(ctx context.Context, ownerID, id string) (int, error) {
	node, err := s.getOwnedNode(ctx, ownerID, id)
	if err != nil {
		return 0, err
	}

	removed, err := s.deleteNodeRecursively(ctx, node)
	if err != nil {
		return removed, err
	}

	s.publishNodeDeleted(ctx, node, removed-1)

	return removed, nil
}

func (s *NodeService) deleteNodeRecursively(ctx context.Context, node *model.Node) (int, error) {
	removed := 0

	if node.IsFolder {
		children, err := s.ListChildren(ctx, node.OwnerID, &node.ID)
		if err != nil {
			return removed, err
		}

		for i := range children {
			n, err := s.deleteNodeRecursively(ctx, &children[i])
			removed += n

			if err != nil {
				return removed, err
			}
		}
	} else {
		s.deleteBlob(ctx, node)
	}

	err := s.dbClient.WithContext(ctx).
		Where("id = ? AND owner_id = ?", node.ID, node.OwnerID).
		Delete(&model.Node{}).Error
	if err != nil {
		return removed, fmt.Errorf("delete node %s: %w", node.ID, err)
	}

	s.invalidateShareCache(ctx, node.ShareToken)

	return removed + 1, nil
}

// EmptyTrash permanently removes every trashed node. Deletion cascades
// through all descendants of trashed folders regardless of each child's own
// trash flag, so a sweep can never leave orphaned rows behind. Blob deletes
// run concurrently and best effort; the rows go in one bulk delete.
func (s *NodeService) EmptyTrash(ctx context.Context, ownerID string) (int64, error) {
	trashed, err := s.ListTrashed(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	if len(trashed) == 0 {
		return 0, nil
	}

	victims := make(map[string]model.Node, len(trashed))
	for _, n := range trashed {
		victims[n.ID] = n
	}

	for _, n := range trashed {
		if !n.IsFolder {
			continue
		}

		descendants, err := s.collectDescendants(ctx, ownerID, n.ID)
		if err != nil {
			return 0, err
		}

		for _, d := range descendants {
			victims[d.ID] = d
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(blobDeleteConcurrency)

	for _, n := range victims {
		if n.IsFolder {
			continue
		}

		node := n

		g.Go(func() error {
			s.deleteBlob(gctx, &node)
			return nil
		})
	}

	// deleteBlob never returns an error; the group only bounds concurrency.
	_ = g.Wait()

	ids := make([]string, 0, len(victims))
	for id := range victims {
		ids = append(ids, id)
	}

	res := s.dbClient.WithContext(ctx).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Delete(&model.Node{})
	if res.Error != nil {
		return 0, fmt.Errorf("empty trash: %w", res.Error)
	}

	for _, n := range victims {
		s.invalidateShareCache(ctx, n.ShareToken)
	}

	s.publishTrashEmptied(ctx, ownerID, res.RowsAffected)

	return res.RowsAffected, nil
}
