package service_test

import (
	"errors"
	"testing"

	"github.com/cotishq/cloudnest/pkg/internal/service"
	"github.com/cotishq/cloudnest/pkg/internal/storage/blob"
)

func TestPermanentDeleteRecursive(t *testing.T) {
	ctx, svc, mgr := newTestEnv(t)

	root := mustCreateFolder(t, ctx, svc, testOwner, "docs", nil)
	sub := mustCreateFolder(t, ctx, svc, testOwner, "reports", &root.ID)
	leaf := mustCreateFolder(t, ctx, svc, testOwner, "2026", &sub.ID)
	mustUploadFile(t, ctx, svc, testOwner, "a.pdf", "application/pdf", 10, &root.ID)
	mustUploadFile(t, ctx, svc, testOwner, "b.pdf", "application/pdf", 10, &sub.ID)
	mustUploadFile(t, ctx, svc, testOwner, "c.pdf", "application/pdf", 10, &leaf.ID)
	survivor := mustUploadFile(t, ctx, svc, testOwner, "keep.png", "image/png", 10, nil)

	removed, err := svc.PermanentDelete(ctx, testOwner, root.ID)
	if err != nil {
		t.Fatalf("permanent delete: %v", err)
	}

	if removed != 6 {
		t.Errorf("removed = %d, want 6 (three folders, three files)", removed)
	}

	if got := countRows(t, mgr, testOwner); got != 1 {
		t.Errorf("row count = %d, want 1 survivor", got)
	}

	mem := mgr.Blob.(*blob.MemoryStore)
	if mem.Len() != 1 {
		t.Errorf("blob store holds %d objects, want 1", mem.Len())
	}

	if !mem.Has(survivor.ObjectKey) {
		t.Error("survivor's object was deleted")
	}
}

func TestPermanentDeleteOwnerScoped(t *testing.T) {
	ctx, svc, mgr := newTestEnv(t)

	file := mustUploadFile(t, ctx, svc, testOwner, "a.pdf", "application/pdf", 10, nil)

	if _, err := svc.PermanentDelete(ctx, testOtherOwner, file.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("foreign delete: got %v, want ErrNotFound", err)
	}

	if got := countRows(t, mgr, testOwner); got != 1 {
		t.Errorf("row count = %d, the node should survive a foreign delete", got)
	}
}

func TestEmptyTrashCascadesThroughFolders(t *testing.T) {
	ctx, svc, mgr := newTestEnv(t)

	// A trashed folder whose children are not individually trashed.
	folder := mustCreateFolder(t, ctx, svc, testOwner, "old", nil)
	mustUploadFile(t, ctx, svc, testOwner, "a.pdf", "application/pdf", 10, &folder.ID)
	sub := mustCreateFolder(t, ctx, svc, testOwner, "deeper", &folder.ID)
	mustUploadFile(t, ctx, svc, testOwner, "b.pdf", "application/pdf", 10, &sub.ID)

	// A trashed file at the root, and live nodes that must survive.
	loose := mustUploadFile(t, ctx, svc, testOwner, "loose.png", "image/png", 10, nil)
	keep := mustUploadFile(t, ctx, svc, testOwner, "keep.png", "image/png", 10, nil)

	if _, _, err := svc.ToggleTrash(ctx, testOwner, folder.ID); err != nil {
		t.Fatalf("trash folder: %v", err)
	}

	if _, _, err := svc.ToggleTrash(ctx, testOwner, loose.ID); err != nil {
		t.Fatalf("trash file: %v", err)
	}

	deleted, err := svc.EmptyTrash(ctx, testOwner)
	if err != nil {
		t.Fatalf("empty trash: %v", err)
	}

	if deleted != 5 {
		t.Errorf("deleted = %d, want 5 (folder, 2 files, subfolder, loose file)", deleted)
	}

	if got := countRows(t, mgr, testOwner); got != 1 {
		t.Errorf("row count = %d, want 1", got)
	}

	mem := mgr.Blob.(*blob.MemoryStore)
	if !mem.Has(keep.ObjectKey) {
		t.Error("live file's object was deleted by the sweep")
	}

	if mem.Len() != 1 {
		t.Errorf("blob store holds %d objects, want 1", mem.Len())
	}
}

func TestEmptyTrashNothingTrashed(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	mustUploadFile(t, ctx, svc, testOwner, "a.pdf", "application/pdf", 10, nil)

	deleted, err := svc.EmptyTrash(ctx, testOwner)
	if err != nil {
		t.Fatalf("empty trash: %v", err)
	}

	if deleted != 0 {
		t.Errorf("deleted = %d, want 0", deleted)
	}
}

func TestEmptyTrashOwnerScoped(t *testing.T) {
	ctx, svc, mgr := newTestEnv(t)

	mine := mustUploadFile(t, ctx, svc, testOwner, "mine.pdf", "application/pdf", 10, nil)
	theirs := mustUploadFile(t, ctx, svc, testOtherOwner, "theirs.pdf", "application/pdf", 10, nil)

	if _, _, err := svc.ToggleTrash(ctx, testOwner, mine.ID); err != nil {
		t.Fatalf("trash: %v", err)
	}

	if _, _, err := svc.ToggleTrash(ctx, testOtherOwner, theirs.ID); err != nil {
		t.Fatalf("trash: %v", err)
	}

	deleted, err := svc.EmptyTrash(ctx, testOwner)
	if err != nil {
		t.Fatalf("empty trash: %v", err)
	}

	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	if got := countRows(t, mgr, testOtherOwner); got != 1 {
		t.Error("another owner's trash was swept")
	}
}
