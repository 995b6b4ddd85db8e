package services

import (
	"context"
	"testing"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/ports/mocks"
)

// renderRecorder captures the callbacks the tracker makes so tests can
// assert when and with what the presentation layer would be redrawn.
type renderRecorder struct {
	fullCalls  int
	tableCalls int

	lastMetrics domain.Metrics
	lastRows    []domain.Asset
	lastLabel   string
}

func (r *renderRecorder) renderAll(m domain.Metrics, rows []domain.Asset, label string) {
	r.fullCalls++
	r.lastMetrics = m
	r.lastRows = rows
	r.lastLabel = label
}

func (r *renderRecorder) renderTable(rows []domain.Asset, label string) {
	r.tableCalls++
	r.lastRows = rows
	r.lastLabel = label
}

func newTestTracker(t *testing.T) (*Tracker, *AssetService, *renderRecorder) {
	t.Helper()
	repo := mocks.NewMockStoreRepository()
	svc := newTestService(repo)
	rec := &renderRecorder{}
	return NewTracker(svc, rec.renderAll, rec.renderTable), svc, rec
}

func TestTracker_SubmitNewRendersEverything(t *testing.T) {
	ctx := context.Background()
	tracker, _, rec := newTestTracker(t)

	asset, err := tracker.SubmitNew(ctx, CreateAssetRequest{
		Name:     "MacBook",
		Category: "Laptop",
		Status:   domain.StatusAssigned,
	})
	if err != nil {
		t.Fatalf("SubmitNew returned error: %v", err)
	}
	if asset == nil || asset.SequenceNumber != 1 {
		t.Fatalf("SubmitNew returned %+v", asset)
	}

	if rec.fullCalls != 1 {
		t.Errorf("full render called %d times, want 1", rec.fullCalls)
	}
	if rec.lastMetrics.Total != 1 {
		t.Errorf("rendered metrics %+v, want Total=1", rec.lastMetrics)
	}
	if rec.lastLabel != "All Assets" {
		t.Errorf("rendered label %q, want default view", rec.lastLabel)
	}
}

func TestTracker_SetFilterIsTableOnly(t *testing.T) {
	ctx := context.Background()
	tracker, _, rec := newTestTracker(t)

	if _, err := tracker.SubmitNew(ctx, CreateAssetRequest{Name: "A", Category: "Laptop", Status: domain.StatusFaulty}); err != nil {
		t.Fatalf("SubmitNew returned error: %v", err)
	}
	if _, err := tracker.SubmitNew(ctx, CreateAssetRequest{Name: "B", Category: "Laptop", Status: domain.StatusAvailable}); err != nil {
		t.Fatalf("SubmitNew returned error: %v", err)
	}
	fullBefore := rec.fullCalls

	tracker.SetFilter(domain.FilterFaulty)

	if tracker.Filter() != domain.FilterFaulty {
		t.Errorf("Filter = %q, want faulty", tracker.Filter())
	}
	if rec.tableCalls != 1 {
		t.Errorf("table render called %d times, want 1", rec.tableCalls)
	}
	if rec.fullCalls != fullBefore {
		t.Error("SetFilter must not trigger a full render")
	}
	if rec.lastLabel != "Faulty Assets" {
		t.Errorf("rendered label %q, want Faulty Assets", rec.lastLabel)
	}
	if len(rec.lastRows) != 1 || rec.lastRows[0].Name != "A" {
		t.Errorf("rendered rows %+v, want only the faulty asset", rec.lastRows)
	}

	// Selecting a filter is idempotent and touches no stored data
	tracker.SetFilter(domain.FilterFaulty)
	if len(rec.lastRows) != 1 {
		t.Errorf("repeated SetFilter changed the projection: %+v", rec.lastRows)
	}
}

func TestTracker_RequestEditDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	tracker, svc, rec := newTestTracker(t)

	created, err := tracker.SubmitNew(ctx, CreateAssetRequest{Name: "A", Category: "Laptop", Status: domain.StatusAssigned})
	if err != nil {
		t.Fatalf("SubmitNew returned error: %v", err)
	}
	fullBefore := rec.fullCalls

	got, err := tracker.RequestEdit(created.ID)
	if err != nil {
		t.Fatalf("RequestEdit returned error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("RequestEdit returned %q, want %q", got.ID, created.ID)
	}
	if rec.fullCalls != fullBefore || rec.tableCalls != 0 {
		t.Error("RequestEdit must not trigger any render")
	}
	if svc.Count() != 1 {
		t.Error("RequestEdit mutated the collection")
	}
}

func TestTracker_RequestDelete(t *testing.T) {
	ctx := context.Background()
	tracker, _, rec := newTestTracker(t)

	created, err := tracker.SubmitNew(ctx, CreateAssetRequest{Name: "A", Category: "Laptop", Status: domain.StatusAssigned})
	if err != nil {
		t.Fatalf("SubmitNew returned error: %v", err)
	}
	fullBefore := rec.fullCalls

	removed, err := tracker.RequestDelete(ctx, created.ID)
	if err != nil {
		t.Fatalf("RequestDelete returned error: %v", err)
	}
	if !removed {
		t.Error("RequestDelete should report true for a present id")
	}
	if rec.fullCalls != fullBefore+1 {
		t.Errorf("full render called %d times after delete, want %d", rec.fullCalls, fullBefore+1)
	}

	// Deleting again: no-op and no render
	removed, err = tracker.RequestDelete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second RequestDelete returned error: %v", err)
	}
	if removed {
		t.Error("second RequestDelete should report false")
	}
	if rec.fullCalls != fullBefore+1 {
		t.Error("no-op delete must not trigger a render")
	}
}

func TestTracker_SubmitEdit(t *testing.T) {
	ctx := context.Background()
	tracker, _, rec := newTestTracker(t)

	created, err := tracker.SubmitNew(ctx, CreateAssetRequest{Name: "A", Category: "Laptop", Status: domain.StatusAvailable})
	if err != nil {
		t.Fatalf("SubmitNew returned error: %v", err)
	}

	updated, err := tracker.SubmitEdit(ctx, created.ID, AssetPatch{Status: strptr(domain.StatusFaulty)})
	if err != nil {
		t.Fatalf("SubmitEdit returned error: %v", err)
	}
	if updated.Status != domain.StatusFaulty {
		t.Errorf("Status = %q, want Faulty", updated.Status)
	}
	if rec.lastMetrics.Faulty != 1 {
		t.Errorf("rendered metrics %+v, want Faulty=1", rec.lastMetrics)
	}
}
