package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cotishq/cloudnest/pkg/internal/service"
)

func TestRenameOwnerScoped(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	file := mustUploadFile(t, ctx, svc, testOwner, "draft.pdf", "application/pdf", 10, nil)

	renamed, err := svc.Rename(ctx, testOwner, file.ID, "final.pdf")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}

	if renamed.Name != "final.pdf" {
		t.Errorf("renamed.Name = %q, want final.pdf", renamed.Name)
	}

	if _, err := svc.Rename(ctx, testOtherOwner, file.ID, "stolen.pdf"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("foreign rename: got %v, want ErrNotFound", err)
	}

	if _, err := svc.Rename(ctx, testOwner, file.ID, "  "); !errors.Is(err, service.ErrValidation) {
		t.Errorf("blank rename: got %v, want ErrValidation", err)
	}
}

func TestToggleStarRoundTrip(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	file := mustUploadFile(t, ctx, svc, testOwner, "a.pdf", "application/pdf", 10, nil)

	once, err := svc.ToggleStar(ctx, testOwner, file.ID)
	if err != nil {
		t.Fatalf("toggle star: %v", err)
	}

	if !once.IsStarred {
		t.Error("first toggle should star the node")
	}

	starred, err := svc.ListStarred(ctx, testOwner)
	if err != nil {
		t.Fatalf("list starred: %v", err)
	}

	if len(starred) != 1 || starred[0].ID != file.ID {
		t.Errorf("starred listing = %v, want just %s", starred, file.ID)
	}

	twice, err := svc.ToggleStar(ctx, testOwner, file.ID)
	if err != nil {
		t.Fatalf("toggle star again: %v", err)
	}

	if twice.IsStarred {
		t.Error("second toggle should return the node to its original state")
	}

	if _, err := svc.ToggleStar(ctx, testOtherOwner, file.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("foreign toggle: got %v, want ErrNotFound", err)
	}
}

func TestToggleTrashMessagesAndScope(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	folder := mustCreateFolder(t, ctx, svc, testOwner, "docs", nil)
	child := mustUploadFile(t, ctx, svc, testOwner, "a.pdf", "application/pdf", 10, &folder.ID)

	toggled, msg, err := svc.ToggleTrash(ctx, testOwner, folder.ID)
	if err != nil {
		t.Fatalf("toggle trash: %v", err)
	}

	if !toggled.IsTrash {
		t.Error("first toggle should trash the node")
	}

	if !strings.Contains(msg, "moved to Trash") {
		t.Errorf("trash message = %q, want it to mention moved to Trash", msg)
	}

	// The toggle never cascades: the child keeps its own flag.
	childAfter, err := svc.Rename(ctx, testOwner, child.ID, child.Name)
	if err != nil {
		t.Fatalf("reload child: %v", err)
	}

	if childAfter.IsTrash {
		t.Error("child should not be trashed by the parent's toggle")
	}

	restored, msg, err := svc.ToggleTrash(ctx, testOwner, folder.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.IsTrash {
		t.Error("second toggle should restore the node")
	}

	if !strings.Contains(msg, "restored") {
		t.Errorf("restore message = %q, want it to mention restored", msg)
	}
}

func TestToggleShareTokenStable(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	file := mustUploadFile(t, ctx, svc, testOwner, "share.png", "image/png", 10, nil)

	shared, err := svc.ToggleShare(ctx, testOwner, file.ID)
	if err != nil {
		t.Fatalf("enable share: %v", err)
	}

	if !shared.IsPublic || shared.ShareToken == "" {
		t.Fatalf("share enable: IsPublic=%v token=%q", shared.IsPublic, shared.ShareToken)
	}

	token := shared.ShareToken

	resolved, err := svc.ResolveShared(ctx, token)
	if err != nil {
		t.Fatalf("resolve shared: %v", err)
	}

	if resolved.ID != file.ID || resolved.Name != "share.png" {
		t.Errorf("resolved = %+v, want node %s", resolved, file.ID)
	}

	unshared, err := svc.ToggleShare(ctx, testOwner, file.ID)
	if err != nil {
		t.Fatalf("disable share: %v", err)
	}

	if unshared.IsPublic {
		t.Error("second toggle should disable sharing")
	}

	// Cache invalidation makes the link die immediately.
	if _, err := svc.ResolveShared(ctx, token); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("resolve after unshare: got %v, want ErrNotFound", err)
	}

	reshared, err := svc.ToggleShare(ctx, testOwner, file.ID)
	if err != nil {
		t.Fatalf("re-enable share: %v", err)
	}

	if reshared.ShareToken != token {
		t.Errorf("token changed across toggles: %q != %q", reshared.ShareToken, token)
	}

	if _, err := svc.ResolveShared(ctx, token); err != nil {
		t.Errorf("old link should work again after re-enable: %v", err)
	}
}

func TestResolveSharedHidesTrashed(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	file := mustUploadFile(t, ctx, svc, testOwner, "share.png", "image/png", 10, nil)

	shared, err := svc.ToggleShare(ctx, testOwner, file.ID)
	if err != nil {
		t.Fatalf("enable share: %v", err)
	}

	// Warm the lookup cache before trashing; the toggle must drop it.
	if _, err := svc.ResolveShared(ctx, shared.ShareToken); err != nil {
		t.Fatalf("resolve shared: %v", err)
	}

	if _, _, err := svc.ToggleTrash(ctx, testOwner, file.ID); err != nil {
		t.Fatalf("trash shared file: %v", err)
	}

	// Still public, but trashed nodes never resolve.
	if _, err := svc.ResolveShared(ctx, shared.ShareToken); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("resolve trashed share: got %v, want ErrNotFound", err)
	}
}

func TestResolveSharedDiesWithDelete(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	folder := mustCreateFolder(t, ctx, svc, testOwner, "docs", nil)
	file := mustUploadFile(t, ctx, svc, testOwner, "share.png", "image/png", 10, &folder.ID)

	shared, err := svc.ToggleShare(ctx, testOwner, file.ID)
	if err != nil {
		t.Fatalf("enable share: %v", err)
	}

	if _, err := svc.ResolveShared(ctx, shared.ShareToken); err != nil {
		t.Fatalf("resolve shared: %v", err)
	}

	// Deleting the parent folder removes the shared child and must take the
	// warm cache entry with it.
	if _, err := svc.PermanentDelete(ctx, testOwner, folder.ID); err != nil {
		t.Fatalf("permanent delete: %v", err)
	}

	if _, err := svc.ResolveShared(ctx, shared.ShareToken); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("resolve deleted share: got %v, want ErrNotFound", err)
	}
}

func TestResolveSharedDiesWithTrashSweep(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	folder := mustCreateFolder(t, ctx, svc, testOwner, "docs", nil)
	file := mustUploadFile(t, ctx, svc, testOwner, "share.png", "image/png", 10, &folder.ID)

	shared, err := svc.ToggleShare(ctx, testOwner, file.ID)
	if err != nil {
		t.Fatalf("enable share: %v", err)
	}

	if _, err := svc.ResolveShared(ctx, shared.ShareToken); err != nil {
		t.Fatalf("resolve shared: %v", err)
	}

	// The file itself is never toggled, so only the sweep's cascade can
	// revoke its cached lookup.
	if _, _, err := svc.ToggleTrash(ctx, testOwner, folder.ID); err != nil {
		t.Fatalf("trash folder: %v", err)
	}

	if _, err := svc.EmptyTrash(ctx, testOwner); err != nil {
		t.Fatalf("empty trash: %v", err)
	}

	if _, err := svc.ResolveShared(ctx, shared.ShareToken); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("resolve swept share: got %v, want ErrNotFound", err)
	}
}
