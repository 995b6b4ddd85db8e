package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/internal/core/domain"
	"github.com/Gabrielgibbson/Smart-Asset-Tracking-System/pkg/vault"
)

// FileStoreRepository persists the tracker's two slots as files inside
// the vault: the asset collection as a JSON document and the sequence
// counter as a plain textual integer. Each save is a full overwrite of
// its slot; there is no transactionality across the two.
type FileStoreRepository struct {
	vault *vault.Vault
}

// NewFileStoreRepository creates a repository over the given vault.
func NewFileStoreRepository(v *vault.Vault) *FileStoreRepository {
	return &FileStoreRepository{vault: v}
}

// Load reads both slots. An absent collection slot yields an empty
// collection. A collection slot that fails to parse is logged and treated
// as empty rather than propagated; the user effectively starts fresh.
// An absent (or unreadable) counter slot defaults to 1.
func (r *FileStoreRepository) Load(ctx context.Context) ([]domain.Asset, int, error) {
	assets := []domain.Asset{}

	data, err := os.ReadFile(r.vault.AssetsSlotPath())
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, &assets); jsonErr != nil {
			log.Printf("error parsing stored assets at %s: %v", r.vault.AssetsSlotPath(), jsonErr)
			assets = []domain.Asset{}
		}
	case os.IsNotExist(err):
		// First run, nothing stored yet
	default:
		return nil, 0, fmt.Errorf("failed to read asset slot: %w", err)
	}

	counter := 1
	data, err = os.ReadFile(r.vault.CounterSlotPath())
	switch {
	case err == nil:
		n, convErr := strconv.Atoi(strings.TrimSpace(string(data)))
		switch {
		case convErr != nil:
			log.Printf("error parsing stored counter at %s: %v", r.vault.CounterSlotPath(), convErr)
		case n < 1:
			log.Printf("stored counter at %s out of range: %d", r.vault.CounterSlotPath(), n)
		default:
			counter = n
		}
	case os.IsNotExist(err):
		// Counter defaults to 1
	default:
		return nil, 0, fmt.Errorf("failed to read counter slot: %w", err)
	}

	return assets, counter, nil
}

// SaveAssets serializes and writes the full collection, replacing any
// prior value in the slot.
func (r *FileStoreRepository) SaveAssets(ctx context.Context, assets []domain.Asset) error {
	if assets == nil {
		assets = []domain.Asset{}
	}

	data, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal assets: %w", err)
	}

	if err := os.WriteFile(r.vault.AssetsSlotPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write asset slot: %w", err)
	}

	return nil
}

// SaveCounter serializes and writes the next sequence number, replacing
// any prior value in the slot.
func (r *FileStoreRepository) SaveCounter(ctx context.Context, next int) error {
	data := []byte(strconv.Itoa(next))

	if err := os.WriteFile(r.vault.CounterSlotPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write counter slot: %w", err)
	}

	return nil
}
