package services

import (
	"context"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
)

// RenderAllFunc receives the recomputed metrics together with the
// projected rows and view label after a full re-render request.
type RenderAllFunc func(metrics domain.Metrics, rows []domain.Asset, label string)

// RenderTableFunc receives only the projected rows and label; used when
// the filter changes, which never affects the metric counts.
type RenderTableFunc func(rows []domain.Asset, label string)

// Tracker is the boundary the presentation layer drives. It owns the
// current filter selector and calls back out for rendering; it never
// reaches into presentation internals.
type Tracker struct {
	store       *AssetService
	filter      domain.Filter
	renderAll   RenderAllFunc
	renderTable RenderTableFunc
}

// NewTracker creates a tracker over the store with the default "all"
// view. Either callback may be nil when a surface does not render that
// part (one-shot commands render once themselves).
func NewTracker(store *AssetService, renderAll RenderAllFunc, renderTable RenderTableFunc) *Tracker {
	return &Tracker{
		store:       store,
		filter:      domain.FilterAll,
		renderAll:   renderAll,
		renderTable: renderTable,
	}
}

// SubmitNew creates an asset from the draft and requests a full
// re-render. Persistence failures surface as the returned error.
func (t *Tracker) SubmitNew(ctx context.Context, req CreateAssetRequest) (*domain.Asset, error) {
	asset, err := t.store.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	t.Refresh()
	return asset, nil
}

// SubmitEdit applies the patch to the asset with the given id and
// requests a full re-render.
func (t *Tracker) SubmitEdit(ctx context.Context, id string, patch AssetPatch) (*domain.Asset, error) {
	asset, err := t.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	t.Refresh()
	return asset, nil
}

// RequestEdit returns the record for form prefill. No mutation.
func (t *Tracker) RequestEdit(id string) (*domain.Asset, error) {
	return t.store.Get(id)
}

// RequestDelete removes the asset with the given id and requests a full
// re-render when something was actually removed.
func (t *Tracker) RequestDelete(ctx context.Context, id string) (bool, error) {
	removed, err := t.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if removed {
		t.Refresh()
	}
	return removed, nil
}

// SetFilter updates the current selector and requests a table-only
// re-render. Selecting a filter never touches stored data.
func (t *Tracker) SetFilter(f domain.Filter) {
	t.filter = f

	if t.renderTable != nil {
		rows, label := domain.Project(t.store.All(), t.filter)
		t.renderTable(rows, label)
	}
}

// Filter returns the current selector.
func (t *Tracker) Filter() domain.Filter {
	return t.filter
}

// Project returns the rows and label of the current view without
// rendering.
func (t *Tracker) Project() ([]domain.Asset, string) {
	return domain.Project(t.store.All(), t.filter)
}

// Refresh recomputes metrics and the current projection and invokes the
// full render callback.
func (t *Tracker) Refresh() {
	if t.renderAll == nil {
		return
	}

	rows, label := domain.Project(t.store.All(), t.filter)
	t.renderAll(t.store.Metrics(), rows, label)
}
