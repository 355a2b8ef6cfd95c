package memory

import (
	"fmt"
	"sync"

	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/domain/repositories"
)

// InventoryRepository provides in-memory inventory snapshot storage
type InventoryRepository struct {
	mu        sync.RWMutex
	snapshots []entities.InventorySnapshot
	index     map[entities.ProductID]int
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		snapshots: []entities.InventorySnapshot{},
		index:     make(map[entities.ProductID]int),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadSnapshots loads snapshots into the repository, one per product
func (r *InventoryRepository) LoadSnapshots(snapshots []*entities.InventorySnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.addAll(snapshots)
}

// Replace swaps the current snapshot set for a freshly generated one
func (r *InventoryRepository) Replace(snapshots []*entities.InventorySnapshot) error {
	fresh := NewInventoryRepository()
	if err := fresh.addAll(snapshots); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = fresh.snapshots
	r.index = fresh.index
	return nil
}

// addAll validates the whole batch before storing any of it
func (r *InventoryRepository) addAll(snapshots []*entities.InventorySnapshot) error {
	seen := make(map[entities.ProductID]struct{}, len(snapshots))
	for _, snapshot := range snapshots {
		_, stored := r.index[snapshot.Product]
		_, batched := seen[snapshot.Product]
		if stored || batched {
			return fmt.Errorf("duplicate inventory snapshot: %s", snapshot.Product)
		}
		seen[snapshot.Product] = struct{}{}
	}

	for _, snapshot := range snapshots {
		r.index[snapshot.Product] = len(r.snapshots)
		r.snapshots = append(r.snapshots, *snapshot)
	}
	return nil
}

// GetSnapshots returns a copy of all snapshots in load order
func (r *InventoryRepository) GetSnapshots() ([]entities.InventorySnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.InventorySnapshot, len(r.snapshots))
	copy(out, r.snapshots)
	return out, nil
}

// GetSnapshot returns a copy of the snapshot for a product
func (r *InventoryRepository) GetSnapshot(product entities.ProductID) (*entities.InventorySnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[product]
	if !exists {
		return nil, fmt.Errorf("inventory snapshot not found: %s", product)
	}
	snapshot := r.snapshots[i]
	return &snapshot, nil
}

// GetAvailableQuantity returns the on-hand quantity for a product
func (r *InventoryRepository) GetAvailableQuantity(product entities.ProductID) (entities.Quantity, error) {
	snapshot, err := r.GetSnapshot(product)
	if err != nil {
		return 0, err
	}
	return snapshot.OnHand, nil
}
