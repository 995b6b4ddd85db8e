package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/ports"
)

// ErrAssetNotFound is returned when an update or lookup references an id
// that is not in the collection. Callers check it with errors.Is.
var ErrAssetNotFound = errors.New("asset not found")

// AssetService owns the in-memory asset collection and is the single
// source of truth the rest of the system reads. Every mutation persists
// the full collection through the repository before returning.
type AssetService struct {
	repo   ports.StoreRepository
	alloc  *Allocator
	assets []domain.Asset
	now    func() time.Time
}

// NewAssetService creates the store over a collection loaded from the
// repository. The allocator must have been resumed from the same load.
func NewAssetService(repo ports.StoreRepository, alloc *Allocator, assets []domain.Asset) *AssetService {
	return &AssetService{
		repo:   repo,
		alloc:  alloc,
		assets: assets,
		now:    time.Now,
	}
}

// CreateAssetRequest carries the user-supplied draft for a new asset.
type CreateAssetRequest struct {
	Name       string
	Category   string
	AssignedTo string
	Status     string
}

// AssetPatch carries a partial edit. Nil fields are left untouched;
// id, sequence number and creation date can never change.
type AssetPatch struct {
	Name       *string
	Category   *string
	AssignedTo *string
	Status     *string
}

// Create normalizes the draft, allocates both identifiers, stamps the
// creation time, appends the record and persists the collection.
func (s *AssetService) Create(ctx context.Context, req CreateAssetRequest) (*domain.Asset, error) {
	if err := domain.ValidateName(req.Name); err != nil {
		return nil, fmt.Errorf("invalid asset: %w", err)
	}

	seq, err := s.alloc.NextSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate sequence number: %w", err)
	}

	asset := domain.Asset{
		ID:             s.alloc.NewOpaqueID(),
		SequenceNumber: seq,
		Name:           strings.TrimSpace(req.Name),
		Category:       req.Category,
		AssignedTo:     domain.NormalizeAssignee(req.AssignedTo),
		Status:         req.Status,
		DateAdded:      domain.StampDateAdded(s.now()),
	}

	s.assets = append(s.assets, asset)
	if err := s.repo.SaveAssets(ctx, s.assets); err != nil {
		// Keep memory consistent with what is actually on disk
		s.assets = s.assets[:len(s.assets)-1]
		return nil, fmt.Errorf("failed to save assets: %w", err)
	}

	return &asset, nil
}

// Update merges the patch over the record with the given id and persists
// the collection. Returns ErrAssetNotFound without touching anything if
// the id is absent.
func (s *AssetService) Update(ctx context.Context, id string, patch AssetPatch) (*domain.Asset, error) {
	idx := s.indexOf(id)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}

	prev := s.assets[idx]
	merged := prev

	if patch.Name != nil {
		if err := domain.ValidateName(*patch.Name); err != nil {
			return nil, fmt.Errorf("invalid asset: %w", err)
		}
		merged.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.AssignedTo != nil {
		merged.AssignedTo = domain.NormalizeAssignee(*patch.AssignedTo)
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}

	s.assets[idx] = merged
	if err := s.repo.SaveAssets(ctx, s.assets); err != nil {
		s.assets[idx] = prev
		return nil, fmt.Errorf("failed to save assets: %w", err)
	}

	return &merged, nil
}

// Delete removes the record with the given id. Deleting an absent id is
// a no-op that reports false without a persistence call.
func (s *AssetService) Delete(ctx context.Context, id string) (bool, error) {
	idx := s.indexOf(id)
	if idx == -1 {
		return false, nil
	}

	removed := s.assets[idx]
	s.assets = append(s.assets[:idx], s.assets[idx+1:]...)
	if err := s.repo.SaveAssets(ctx, s.assets); err != nil {
		s.assets = append(s.assets[:idx], append([]domain.Asset{removed}, s.assets[idx:]...)...)
		return false, fmt.Errorf("failed to save assets: %w", err)
	}

	return true, nil
}

// Get returns a copy of the record with the given id.
func (s *AssetService) Get(id string) (*domain.Asset, error) {
	idx := s.indexOf(id)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}

	asset := s.assets[idx]
	return &asset, nil
}

// All returns a copy of the collection in insertion order.
func (s *AssetService) All() []domain.Asset {
	out := make([]domain.Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// Count returns the number of records in the collection.
func (s *AssetService) Count() int {
	return len(s.assets)
}

// Metrics recomputes the summary counts from the current collection.
func (s *AssetService) Metrics() domain.Metrics {
	return domain.ComputeMetrics(s.assets)
}

// Search matches assets by sequence number ("12" or "#12"), by name or
// assignee substring, or by opaque id prefix. Insertion order preserved.
func (s *AssetService) Search(query string) []domain.Asset {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.All()
	}

	if seq, err := strconv.Atoi(strings.TrimPrefix(query, "#")); err == nil {
		for _, a := range s.assets {
			if a.SequenceNumber == seq {
				return []domain.Asset{a}
			}
		}
		return nil
	}

	queryLower := strings.ToLower(query)
	var matches []domain.Asset
	for _, a := range s.assets {
		if strings.Contains(strings.ToLower(a.Name), queryLower) ||
			strings.Contains(strings.ToLower(a.AssignedTo), queryLower) ||
			strings.HasPrefix(a.ID, query) {
			matches = append(matches, a)
		}
	}

	return matches
}

func (s *AssetService) indexOf(id string) int {
	for i, a := range s.assets {
		if a.ID == id {
			return i
		}
	}
	return -1
}
