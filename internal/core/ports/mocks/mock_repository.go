package mocks

import (
	"context"
	"sync"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
)

// MockStoreRepository is an in-memory implementation of the
// StoreRepository interface for testing services without a filesystem.
type MockStoreRepository struct {
	mu      sync.RWMutex
	assets  []domain.Asset
	counter int

	// Failure injection for persistence-error paths
	SaveAssetsErr  error
	SaveCounterErr error

	// Call counters so tests can assert write behavior
	SaveAssetsCalls  int
	SaveCounterCalls int
}

// NewMockStoreRepository creates an empty mock store with the counter at
// its absent-slot default.
func NewMockStoreRepository() *MockStoreRepository {
	return &MockStoreRepository{counter: 1}
}

// Seed replaces the stored collection and counter, as if a prior session
// had persisted them.
func (m *MockStoreRepository) Seed(assets []domain.Asset, counter int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.assets = append([]domain.Asset(nil), assets...)
	m.counter = counter
}

// Load returns copies of both slots.
func (m *MockStoreRepository) Load(ctx context.Context) ([]domain.Asset, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Asset, len(m.assets))
	copy(out, m.assets)
	return out, m.counter, nil
}

// SaveAssets overwrites the collection slot.
func (m *MockStoreRepository) SaveAssets(ctx context.Context, assets []domain.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveAssetsCalls++
	if m.SaveAssetsErr != nil {
		return m.SaveAssetsErr
	}

	m.assets = make([]domain.Asset, len(assets))
	copy(m.assets, assets)
	return nil
}

// SaveCounter overwrites the counter slot.
func (m *MockStoreRepository) SaveCounter(ctx context.Context, next int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCounterCalls++
	if m.SaveCounterErr != nil {
		return m.SaveCounterErr
	}

	m.counter = next
	return nil
}

// StoredAssets returns a copy of what the mock currently holds.
func (m *MockStoreRepository) StoredAssets() []domain.Asset {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Asset, len(m.assets))
	copy(out, m.assets)
	return out
}

// StoredCounter returns the persisted counter value.
func (m *MockStoreRepository) StoredCounter() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.counter
}
