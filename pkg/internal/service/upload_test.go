package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cotishq/cloudnest/pkg/internal/service"
	"github.com/cotishq/cloudnest/pkg/internal/storage/blob"
)

func TestUploadFileValidation(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	cases := []struct {
		name string
		in   service.UploadInput
		want error
	}{
		{
			name: "blank name",
			in:   service.UploadInput{Name: "  ", ContentType: "image/png", Size: 10, Reader: readerOf(10)},
			want: service.ErrValidation,
		},
		{
			name: "unsupported type",
			in:   service.UploadInput{Name: "a.exe", ContentType: "application/x-msdownload", Size: 10, Reader: readerOf(10)},
			want: service.ErrUnsupportedType,
		},
		{
			name: "oversize",
			in:   service.UploadInput{Name: "big.pdf", ContentType: "application/pdf", Size: 11 * 1024 * 1024, Reader: strings.NewReader("")},
			want: service.ErrFileTooLarge,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.UploadFile(ctx, testOwner, tc.in); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestUploadFileStoresBlobAndRow(t *testing.T) {
	ctx, svc, mgr := newTestEnv(t)

	folder := mustCreateFolder(t, ctx, svc, testOwner, "photos", nil)

	node := mustUploadFile(t, ctx, svc, testOwner, "cat.png", "image/png", 512, &folder.ID)

	if node.ObjectKey == "" {
		t.Fatal("uploaded node has no object key")
	}

	if node.ParentID == nil || *node.ParentID != folder.ID {
		t.Errorf("node.ParentID = %v, want %s", node.ParentID, folder.ID)
	}

	if node.Size != 512 || node.IsFolder {
		t.Errorf("node flags wrong: Size=%d IsFolder=%v", node.Size, node.IsFolder)
	}

	mem := mgr.Blob.(*blob.MemoryStore)
	if !mem.Has(node.ObjectKey) {
		t.Errorf("object %s not present in the blob store", node.ObjectKey)
	}

	if got := countRows(t, mgr, testOwner); got != 2 {
		t.Errorf("row count = %d, want 2 (folder + file)", got)
	}
}

func TestUploadFileBlobFailure(t *testing.T) {
	ctx, svc, mgr := newTestEnv(t)

	mem := mgr.Blob.(*blob.MemoryStore)
	mem.FailPuts = true

	_, err := svc.UploadFile(ctx, testOwner, service.UploadInput{
		Name:        "cat.png",
		ContentType: "image/png",
		Size:        10,
		Reader:      readerOf(10),
	})
	if !errors.Is(err, service.ErrUploadFailed) {
		t.Fatalf("got %v, want ErrUploadFailed", err)
	}

	// A failed write must leave no metadata behind.
	if got := countRows(t, mgr, testOwner); got != 0 {
		t.Errorf("row count = %d after failed upload, want 0", got)
	}
}

func TestUploadFileParentMustBeOwnedFolder(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	foreign := mustCreateFolder(t, ctx, svc, testOtherOwner, "theirs", nil)

	_, err := svc.UploadFile(ctx, testOwner, service.UploadInput{
		Name:        "cat.png",
		ContentType: "image/png",
		Size:        10,
		ParentID:    &foreign.ID,
		Reader:      readerOf(10),
	})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("foreign parent: got %v, want ErrNotFound", err)
	}
}
