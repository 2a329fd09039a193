package service_test

import (
	"testing"
)

func TestComputeUsageCountsLiveFilesOnly(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	mustCreateFolder(t, ctx, svc, testOwner, "docs", nil)
	mustUploadFile(t, ctx, svc, testOwner, "a.pdf", "application/pdf", 1000, nil)
	trashed := mustUploadFile(t, ctx, svc, testOwner, "b.pdf", "application/pdf", 500, nil)
	mustUploadFile(t, ctx, svc, testOtherOwner, "theirs.pdf", "application/pdf", 9999, nil)

	if _, _, err := svc.ToggleTrash(ctx, testOwner, trashed.ID); err != nil {
		t.Fatalf("trash: %v", err)
	}

	usage, err := svc.ComputeUsage(ctx, testOwner)
	if err != nil {
		t.Fatalf("compute usage: %v", err)
	}

	if usage.UsedBytes != 1000 {
		t.Errorf("UsedBytes = %d, want 1000 (folders, trashed and foreign files excluded)", usage.UsedBytes)
	}

	if usage.QuotaBytes != 100*1024*1024 {
		t.Errorf("QuotaBytes = %d, want the configured quota", usage.QuotaBytes)
	}

	if usage.RemainingBytes != usage.QuotaBytes-1000 {
		t.Errorf("RemainingBytes = %d, want quota minus usage", usage.RemainingBytes)
	}

	if usage.UsedPercent <= 0 {
		t.Errorf("UsedPercent = %f, want > 0", usage.UsedPercent)
	}
}

func TestComputeUsageEmptyAccount(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	usage, err := svc.ComputeUsage(ctx, testOwner)
	if err != nil {
		t.Fatalf("compute usage: %v", err)
	}

	if usage.UsedBytes != 0 || usage.UsedPercent != 0 {
		t.Errorf("empty account usage = %+v, want zero", usage)
	}
}

func TestUsageByTypeGroupsFamilies(t *testing.T) {
	ctx, svc, _ := newTestEnv(t)

	mustUploadFile(t, ctx, svc, testOwner, "a.png", "image/png", 300, nil)
	mustUploadFile(t, ctx, svc, testOwner, "b.jpg", "image/jpeg", 200, nil)
	mustUploadFile(t, ctx, svc, testOwner, "c.pdf", "application/pdf", 100, nil)
	trashed := mustUploadFile(t, ctx, svc, testOwner, "d.pdf", "application/pdf", 700, nil)

	if _, _, err := svc.ToggleTrash(ctx, testOwner, trashed.ID); err != nil {
		t.Fatalf("trash: %v", err)
	}

	breakdown, err := svc.UsageByType(ctx, testOwner)
	if err != nil {
		t.Fatalf("usage by type: %v", err)
	}

	if len(breakdown.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2 families", len(breakdown.Items))
	}

	// Largest family first.
	img := breakdown.Items[0]
	if img.Type != "image" || img.Count != 2 || img.Size != 500 {
		t.Errorf("Items[0] = %+v, want image family with 2 files and 500 bytes", img)
	}

	app := breakdown.Items[1]
	if app.Type != "application" || app.Count != 1 || app.Size != 100 {
		t.Errorf("Items[1] = %+v, want application family excluding the trashed file", app)
	}
}
