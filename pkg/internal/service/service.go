// Package service implements the node tree operations: folders, uploads,
// renames, the star/trash/share toggles, permanent deletion and storage
// accounting. Every operation is scoped to the requesting owner; ownership
// misses surface as ErrNotFound so foreign ids are indistinguishable from
// absent ones.
package service

import (
	"context"

	ctxPkg "github.com/cotishq/cloudnest/pkg/context"
	"github.com/cotishq/cloudnest/pkg/internal/storage/blob"
	"github.com/cotishq/cloudnest/pkg/internal/storage/db"
	"github.com/cotishq/cloudnest/pkg/internal/storage/kv"
	"github.com/cotishq/cloudnest/pkg/internal/storage/mq"
)

type NodeService struct {
	dbClient  *db.Client
	blobStore blob.Store
	kvClient  *kv.Client
	mqClient  *mq.Client
}

func NewNodeService(c context.Context) *NodeService {
	return &NodeService{
		dbClient:  ctxPkg.GetDBClient(c),
		blobStore: ctxPkg.GetBlobStore(c),
		kvClient:  ctxPkg.GetKVClient(c),
		mqClient:  ctxPkg.GetMQClient(c),
	}
}
