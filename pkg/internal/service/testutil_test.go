package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cotishq/cloudnest/pkg/configs"
	ctxPkg "github.com/cotishq/cloudnest/pkg/context"
	"github.com/cotishq/cloudnest/pkg/internal/model"
	"github.com/cotishq/cloudnest/pkg/internal/service"
	"github.com/cotishq/cloudnest/pkg/internal/storage"
)

const (
	testOwner      = "alice@example.com"
	testOtherOwner = "mallory@example.com"
)

// newTestEnv wires a service over throwaway backends: sqlite in memory, the
// in-memory blob store, the memory KV and the in-process broker.
func newTestEnv(t *testing.T) (context.Context, *service.NodeService, *storage.Manager) {
	t.Helper()

	cfg := configs.GetConfig()
	cfg.DB = configs.DBConfig{
		Type:         configs.SQLite,
		Database:     ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	cfg.Blob = configs.BlobConfig{Type: "memory", BucketName: "cloudnest-test"}
	cfg.KV = configs.KVConfig{Type: "memory"}
	cfg.MQ = configs.MQConfig{Type: configs.MQTypeGoChannel}
	cfg.Upload = configs.UploadConfig{
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "application/pdf"},
		MaxSizeBytes: 10 * 1024 * 1024,
		QuotaBytes:   100 * 1024 * 1024,
	}
	cfg.Events = configs.EventsConfig{}

	mgr, err := storage.NewManager(context.Background(), cfg)
	if err != nil {
		t.Fatalf("create storage manager: %v", err)
	}

	t.Cleanup(func() { _ = mgr.Close() })

	ctx := ctxPkg.WithStorageManager(context.Background(), mgr)

	return ctx, service.NewNodeService(ctx), mgr
}

func mustCreateFolder(t *testing.T, ctx context.Context, svc *service.NodeService, owner, name string, parentID *string) *model.Node {
	t.Helper()

	node, err := svc.CreateFolder(ctx, owner, name, parentID)
	if err != nil {
		t.Fatalf("create folder %s: %v", name, err)
	}

	return node
}

func mustUploadFile(t *testing.T, ctx context.Context, svc *service.NodeService, owner, name, contentType string, size int64, parentID *string) *model.Node {
	t.Helper()

	node, err := svc.UploadFile(ctx, owner, service.UploadInput{
		Name:        name,
		ContentType: contentType,
		Size:        size,
		ParentID:    parentID,
		Reader:      bytes.NewReader(bytes.Repeat([]byte("x"), int(size))),
	})
	if err != nil {
		t.Fatalf("upload %s: %v", name, err)
	}

	return node
}

func readerOf(size int64) *bytes.Reader {
	return bytes.NewReader(bytes.Repeat([]byte("x"), int(size)))
}

func countRows(t *testing.T, mgr *storage.Manager, owner string) int64 {
	t.Helper()

	var n int64
	if err := mgr.DB.Model(&model.Node{}).Where("owner_id = ?", owner).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}

	return n
}
