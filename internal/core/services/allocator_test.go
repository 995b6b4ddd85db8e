package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/ports/mocks"
)

func TestAllocator_NextSequence(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockStoreRepository()
	alloc := NewAllocator(repo, 1)

	// N calls yield N distinct consecutive integers
	for want := 1; want <= 5; want++ {
		got, err := alloc.NextSequence(ctx)
		if err != nil {
			t.Fatalf("NextSequence returned error: %v", err)
		}
		if got != want {
			t.Errorf("NextSequence = %d, want %d", got, want)
		}
	}

	// The persisted counter is always one past the last issued number
	if repo.StoredCounter() != 6 {
		t.Errorf("persisted counter = %d, want 6", repo.StoredCounter())
	}
}

func TestAllocator_ResumesFromPersistedCounter(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockStoreRepository()
	repo.Seed(nil, 42)

	// Simulate a restart: build a fresh allocator from the stored value
	_, counter, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	alloc := NewAllocator(repo, counter)
	got, err := alloc.NextSequence(ctx)
	if err != nil {
		t.Fatalf("NextSequence returned error: %v", err)
	}
	if got != 42 {
		t.Errorf("NextSequence after restart = %d, want 42", got)
	}
}

func TestAllocator_InvalidStartClampedToOne(t *testing.T) {
	repo := mocks.NewMockStoreRepository()
	alloc := NewAllocator(repo, 0)

	if alloc.Peek() != 1 {
		t.Errorf("Peek = %d, want 1", alloc.Peek())
	}
}

func TestAllocator_PersistFailureDoesNotAdvance(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockStoreRepository()
	repo.SaveCounterErr = errors.New("disk full")

	alloc := NewAllocator(repo, 7)

	if _, err := alloc.NextSequence(ctx); err == nil {
		t.Fatal("expected error when counter persistence fails")
	}
	if alloc.Peek() != 7 {
		t.Errorf("counter advanced despite failed persist: Peek = %d, want 7", alloc.Peek())
	}

	// Once persistence recovers the same number is issued
	repo.SaveCounterErr = nil
	got, err := alloc.NextSequence(ctx)
	if err != nil {
		t.Fatalf("NextSequence returned error after recovery: %v", err)
	}
	if got != 7 {
		t.Errorf("NextSequence after recovery = %d, want 7", got)
	}
}

func TestAllocator_NewOpaqueID(t *testing.T) {
	repo := mocks.NewMockStoreRepository()
	alloc := NewAllocator(repo, 1)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := alloc.NewOpaqueID()
		if id == "" {
			t.Fatal("NewOpaqueID returned empty string")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("NewOpaqueID returned duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}
