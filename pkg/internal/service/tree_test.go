package service_test

import (
	"errors"
	"testing"

	"github.com/cotishq/cloudnest/pkg/internal/service"
)

func TestCreateFolderRequiresName(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	if _, err := svc.CreateFolder(ctx, testOwner, "   ", nil); !errors.Is(err, service.ErrValidation) {
		t.Errorf("CreateFolder with blank name: got %v, want ErrValidation", err)
	}
}

func TestCreateFolderParentChecks(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	missing := "no-such-id"
	if _, err := svc.CreateFolder(ctx, testOwner, "docs", &missing); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("missing parent: got %v, want ErrNotFound", err)
	}

	// A file cannot act as a parent.
	file := mustUploadFile(t, ctx, svc, testOwner, "a.pdf", "application/pdf", 10, nil)
	if _, err := svc.CreateFolder(ctx, testOwner, "docs", &file.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("file as parent: got %v, want ErrNotFound", err)
	}

	// A folder owned by someone else is invisible.
	foreign := mustCreateFolder(t, ctx, svc, testOtherOwner, "theirs", nil)
	if _, err := svc.CreateFolder(ctx, testOwner, "docs", &foreign.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("foreign parent: got %v, want ErrNotFound", err)
	}
}

func TestCreateFolderNesting(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	root := mustCreateFolder(t, ctx, svc, testOwner, "docs", nil)
	child := mustCreateFolder(t, ctx, svc, testOwner, "reports", &root.ID)

	if child.ParentID == nil || *child.ParentID != root.ID {
		t.Errorf("child.ParentID = %v, want %s", child.ParentID, root.ID)
	}

	if !child.IsFolder || child.ContentType != "folder" {
		t.Errorf("folder node flags wrong: IsFolder=%v ContentType=%q", child.IsFolder, child.ContentType)
	}
}

func TestListChildren(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	root := mustCreateFolder(t, ctx, svc, testOwner, "docs", nil)
	mustUploadFile(t, ctx, svc, testOwner, "z.pdf", "application/pdf", 10, &root.ID)
	mustCreateFolder(t, ctx, svc, testOwner, "archive", &root.ID)
	mustUploadFile(t, ctx, svc, testOwner, "top.png", "image/png", 10, nil)

	children, err := svc.ListChildren(ctx, testOwner, &root.ID)
	if err != nil {
		t.Fatalf("list children: %v", err)
	}

	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}

	// Folders sort before files.
	if !children[0].IsFolder || children[0].Name != "archive" {
		t.Errorf("children[0] = %s (folder=%v), want folder archive", children[0].Name, children[0].IsFolder)
	}

	rootLevel, err := svc.ListChildren(ctx, testOwner, nil)
	if err != nil {
		t.Fatalf("list root: %v", err)
	}

	if len(rootLevel) != 2 {
		t.Errorf("len(rootLevel) = %d, want 2 (docs, top.png)", len(rootLevel))
	}

	// Another user's listing is empty, not an error.
	other, err := svc.ListChildren(ctx, testOtherOwner, nil)
	if err != nil {
		t.Fatalf("list other owner root: %v", err)
	}

	if len(other) != 0 {
		t.Errorf("foreign root listing has %d nodes, want 0", len(other))
	}

	// Listing inside a foreign folder is a lookup miss.
	if _, err := svc.ListChildren(ctx, testOtherOwner, &root.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("foreign folder listing: got %v, want ErrNotFound", err)
	}
}
