package ports

import (
	"context"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
)

// StoreRepository defines the port for the two persisted slots backing
// the tracker: the serialized asset collection and the sequence counter.
type StoreRepository interface {
	// Load reads both slots. An absent collection slot yields an empty
	// slice; a corrupt collection slot is logged and also yields an empty
	// slice rather than an error. An absent counter slot yields 1.
	Load(ctx context.Context) ([]domain.Asset, int, error)

	// SaveAssets serializes and writes the full collection, replacing any
	// prior value in the slot.
	SaveAssets(ctx context.Context, assets []domain.Asset) error

	// SaveCounter serializes and writes the next sequence number,
	// replacing any prior value in the slot.
	SaveCounter(ctx context.Context, next int) error
}
