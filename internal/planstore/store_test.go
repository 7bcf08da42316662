package planstore

import (
	"context"
	"path/filepath"
	"testing"

	"argus/internal/naming"
	"argus/internal/pipeline"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "argus.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Records:    3,
		Excluded:   1,
		Unresolved: 0,
		Groups: []pipeline.GroupResult{
			{
				Key:         "G001",
				SKU:         "ABC-100",
				Description: "RARE FIGURE",
				FromCOA:     true,
				Resolved:    true,
				ImageIDs:    []string{"img1", "img2", "img3"},
				Assignments: []naming.Assignment{
					{ImageID: "img1", GroupKey: "G001", SKU: "ABC-100", Description: "RARE FIGURE",
						FileName: "ABC-100-RARE FIGURE-COA.jpg", Folder: "ABC", Excluded: true},
					{ImageID: "img2", GroupKey: "G001", SKU: "ABC-100", Description: "RARE FIGURE",
						Sequence: 1, FileName: "ABC-100-RARE FIGURE-1.jpg", Folder: "ABC"},
					{ImageID: "img3", GroupKey: "G001", SKU: "ABC-100", Description: "RARE FIGURE",
						Sequence: 2, FileName: "ABC-100-RARE FIGURE-2.jpg", Folder: "ABC"},
				},
			},
		},
		Diagnostics: []pipeline.Diagnostic{
			{GroupKey: "G001", Reason: pipeline.ReasonNameCollision, Detail: "renamed", ImageIDs: []string{"img3"}},
		},
	}
}

func TestSaveAndGetRun(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	run, err := store.SaveRun(ctx, sampleResult())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if run.ID == "" {
		t.Fatal("run should have an id")
	}
	if run.Groups != 1 || run.Records != 3 || run.Excluded != 1 {
		t.Errorf("run summary = %+v", run)
	}

	got, err := store.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got == nil || got.ID != run.ID {
		t.Fatalf("GetRun returned %+v", got)
	}
	if got.Diagnostics != 1 {
		t.Errorf("Diagnostics = %d, want 1", got.Diagnostics)
	}
}

func TestGetRunMissing(t *testing.T) {
	store := openTestStore(t)
	got, err := store.GetRun(context.Background(), "no-such-run")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got != nil {
		t.Errorf("missing run should return nil, got %+v", got)
	}
}

func TestAssignmentsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	run, err := store.SaveRun(ctx, sampleResult())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	assignments, err := store.Assignments(ctx, run.ID)
	if err != nil {
		t.Fatalf("Assignments: %v", err)
	}
	if len(assignments) != 3 {
		t.Fatalf("got %d assignments, want 3", len(assignments))
	}
	if !assignments[0].Excluded {
		t.Error("first assignment should keep its excluded flag")
	}
	if assignments[1].FileName != "ABC-100-RARE FIGURE-1.jpg" {
		t.Errorf("assignment order or name wrong: %q", assignments[1].FileName)
	}

	diags, err := store.Diagnostics(ctx, run.ID)
	if err != nil {
		t.Fatalf("Diagnostics: %v", err)
	}
	if len(diags) != 1 || diags[0].Reason != pipeline.ReasonNameCollision {
		t.Fatalf("diagnostics = %+v", diags)
	}
	if len(diags[0].ImageIDs) != 1 || diags[0].ImageIDs[0] != "img3" {
		t.Errorf("image ids = %v", diags[0].ImageIDs)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.SaveRun(ctx, sampleResult())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	second, err := store.SaveRun(ctx, sampleResult())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Error("runs should list newest first")
	}

	limited, err := store.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("ListRuns limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d runs with limit 1", len(limited))
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.SaveRun(ctx, sampleResult()); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("store should be empty, got %d runs", len(runs))
	}
}

func TestOpenRefusesSecondWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argus.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer first.Close()

	if _, err := Open(path); err == nil {
		t.Fatal("second Open should fail while the lock is held")
	}
}
