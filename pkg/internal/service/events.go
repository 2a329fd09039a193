package service

import (
	"context"

	"github.com/cotishq/cloudnest/pkg/configs"
	ctxPkg "github.com/cotishq/cloudnest/pkg/context"
	"github.com/cotishq/cloudnest/pkg/internal/model"
	nlog "github.com/cotishq/cloudnest/pkg/log"
	"github.com/cotishq/cloudnest/pkg/queue"
)

// Event publication is fire and forget: a broker failure is logged and
// never surfaces to the caller.

func nodeRef(node *model.Node) queue.NodeRef {
	ref := queue.NodeRef{
		ID:          node.ID,
		OwnerID:     node.OwnerID,
		Name:        node.Name,
		IsFolder:    node.IsFolder,
		ObjectKey:   node.ObjectKey,
		Size:        node.Size,
		ContentType: node.ContentType,
	}
	if node.ParentID != nil {
		ref.ParentID = *node.ParentID
	}

	return ref
}

func (s *NodeService) logPublishError(ctx context.Context, topic string, err error) {
	if err == nil {
		return
	}

	logger := ctxPkg.WithTraceContext(ctx, *nlog.Logger())
	logger.Warn().Err(err).Str("topic", topic).Msg("event publish failed")
}

func (s *NodeService) publishNodeUploaded(ctx context.Context, node *model.Node) {
	cfg := configs.GetConfig().Events
	if s.mqClient == nil || !cfg.Enabled || !cfg.Node.Uploaded {
		return
	}

	err := queue.PublishNodeUploaded(s.mqClient.Publisher(), queue.NodeUploadedPayload{Node: nodeRef(node)},
		queue.WithProducer(configs.AppName))
	s.logPublishError(ctx, queue.TopicNodeUploaded, err)
}

func (s *NodeService) publishFolderCreated(ctx context.Context, node *model.Node) {
	cfg := configs.GetConfig().Events
	if s.mqClient == nil || !cfg.Enabled || !cfg.Node.FolderCreated {
		return
	}

	err := queue.PublishFolderCreated(s.mqClient.Publisher(), queue.FolderCreatedPayload{Node: nodeRef(node)},
		queue.WithProducer(configs.AppName))
	s.logPublishError(ctx, queue.TopicFolderCreated, err)
}

func (s *NodeService) publishTrashState(ctx context.Context, node *model.Node) {
	cfg := configs.GetConfig().Events
	if s.mqClient == nil || !cfg.Enabled {
		return
	}

	if node.IsTrash && !cfg.Node.Trashed {
		return
	}

	if !node.IsTrash && !cfg.Node.Restored {
		return
	}

	err := queue.PublishNodeTrashState(s.mqClient.Publisher(), queue.NodeTrashStatePayload{
		Node:    nodeRef(node),
		Trashed: node.IsTrash,
	}, queue.WithProducer(configs.AppName))

	topic := queue.TopicNodeRestored
	if node.IsTrash {
		topic = queue.TopicNodeTrashed
	}

	s.logPublishError(ctx, topic, err)
}

func (s *NodeService) publishNodeDeleted(ctx context.Context, node *model.Node, descendants int) {
	cfg := configs.GetConfig().Events
	if s.mqClient == nil || !cfg.Enabled || !cfg.Node.Deleted {
		return
	}

	err := queue.PublishNodeDeleted(s.mqClient.Publisher(), queue.NodeDeletedPayload{
		Node:            nodeRef(node),
		DescendantCount: descendants,
	}, queue.WithProducer(configs.AppName))
	s.logPublishError(ctx, queue.TopicNodeDeleted, err)
}

func (s *NodeService) publishTrashEmptied(ctx context.Context, ownerID string, deleted int64) {
	cfg := configs.GetConfig().Events
	if s.mqClient == nil || !cfg.Enabled || !cfg.Node.TrashEmptied {
		return
	}

	err := queue.PublishTrashEmptied(s.mqClient.Publisher(), queue.TrashEmptiedPayload{
		OwnerID:      ownerID,
		DeletedCount: deleted,
	}, queue.WithProducer(configs.AppName))
	s.logPublishError(ctx, queue.TopicTrashEmptied, err)
}
