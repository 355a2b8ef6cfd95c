package repositories

import "github.com/lettaearth/intel/pkg/domain/entities"

// InventoryRepository provides access to the current inventory snapshot
type InventoryRepository interface {
	GetSnapshots() ([]entities.InventorySnapshot, error)
	GetSnapshot(product entities.ProductID) (*entities.InventorySnapshot, error)
	GetAvailableQuantity(product entities.ProductID) (entities.Quantity, error)
	LoadSnapshots(snapshots []*entities.InventorySnapshot) error
	Replace(snapshots []*entities.InventorySnapshot) error
}
