package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/ports"
)

// Allocator issues the two identifiers every asset carries: an opaque
// globally-unique ID and a human-facing sequence number. The sequence
// counter is persisted through the repository so numbers survive
// restarts without gaps or repeats.
type Allocator struct {
	repo ports.StoreRepository
	next int
}

// NewAllocator creates an allocator resuming from the persisted counter.
func NewAllocator(repo ports.StoreRepository, next int) *Allocator {
	if next < 1 {
		next = 1
	}
	return &Allocator{
		repo: repo,
		next: next,
	}
}

// NewOpaqueID returns a collision-resistant unique identifier.
func (a *Allocator) NewOpaqueID() string {
	return uuid.NewString()
}

// NextSequence returns the current counter value and persists the
// incremented counter before returning. If persistence fails the
// in-memory counter is left unchanged so the number can be reissued.
func (a *Allocator) NextSequence(ctx context.Context) (int, error) {
	seq := a.next

	if err := a.repo.SaveCounter(ctx, seq+1); err != nil {
		return 0, fmt.Errorf("failed to persist sequence counter: %w", err)
	}
	a.next = seq + 1

	return seq, nil
}

// Peek returns the next sequence number without issuing it.
func (a *Allocator) Peek() int {
	return a.next
}
