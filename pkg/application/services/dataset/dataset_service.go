package dataset

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/domain/repositories"
	"github.com/lettaearth/intel/pkg/infrastructure/reference"
	"github.com/lettaearth/intel/pkg/infrastructure/repositories/csv"
	"github.com/lettaearth/intel/pkg/infrastructure/synthetic"
)

// Manager populates the planning stores from a scenario directory or a seed
type Manager struct {
	salesRepo     repositories.SalesRepository
	inventoryRepo repositories.InventoryRepository
	demandRepo    repositories.DemandRepository
	log           *logrus.Logger
	now           func() time.Time
}

// NewManager creates a dataset manager over the given stores
func NewManager(
	salesRepo repositories.SalesRepository,
	inventoryRepo repositories.InventoryRepository,
	demandRepo repositories.DemandRepository,
	log *logrus.Logger,
) *Manager {
	return &Manager{
		salesRepo:     salesRepo,
		inventoryRepo: inventoryRepo,
		demandRepo:    demandRepo,
		log:           log,
		now:           time.Now,
	}
}

// LoadDir replaces store contents with the sales, inventory and demand CSVs in dir
func (m *Manager) LoadDir(dir string) (*synthetic.Dataset, error) {
	loader := csv.NewLoader()

	sales, err := loader.LoadSales(filepath.Join(dir, csv.SalesFile))
	if err != nil {
		return nil, fmt.Errorf("error loading sales: %w", err)
	}
	inventory, err := loader.LoadInventory(filepath.Join(dir, csv.InventoryFile))
	if err != nil {
		return nil, fmt.Errorf("error loading inventory: %w", err)
	}
	demand, err := loader.LoadDemand(filepath.Join(dir, csv.DemandFile))
	if err != nil {
		return nil, fmt.Errorf("error loading demand: %w", err)
	}

	ds := &synthetic.Dataset{Sales: sales, Inventory: inventory, Demand: demand}
	if err := m.Apply(ds); err != nil {
		return nil, err
	}
	m.log.WithField("dir", dir).Info("Scenario loaded")
	return ds, nil
}

// Regenerate replaces store contents with a synthetic dataset for the preset commodities
func (m *Manager) Regenerate(seed int64) (*synthetic.Dataset, error) {
	products := make([]entities.ProductID, 0, len(reference.Presets()))
	for _, p := range reference.Presets() {
		products = append(products, entities.ProductID(p))
	}

	gen, err := synthetic.NewGenerator(synthetic.Config{
		Products:    products,
		AnchorMonth: m.now(),
		Seed:        seed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	ds, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	if err := m.Apply(ds); err != nil {
		return nil, err
	}
	m.log.WithField("seed", seed).Info("Synthetic dataset generated")
	return ds, nil
}

// Apply swaps every store to the dataset's contents. If any store rejects its
// part, the stores already swapped are restored to their previous contents.
func (m *Manager) Apply(ds *synthetic.Dataset) error {
	prevSales, err := m.salesRepo.GetSales()
	if err != nil {
		return fmt.Errorf("failed to read current sales: %w", err)
	}
	prevInventory, err := m.inventoryRepo.GetSnapshots()
	if err != nil {
		return fmt.Errorf("failed to read current inventory: %w", err)
	}

	if err := m.salesRepo.Replace(ds.Sales); err != nil {
		return fmt.Errorf("failed to load sales into repository: %w", err)
	}
	if err := m.inventoryRepo.Replace(ds.Inventory); err != nil {
		m.restore(prevSales, nil)
		return fmt.Errorf("failed to load inventory into repository: %w", err)
	}
	if err := m.demandRepo.Replace(ds.Demand); err != nil {
		m.restore(prevSales, prevInventory)
		return fmt.Errorf("failed to load demand into repository: %w", err)
	}

	m.log.WithFields(logrus.Fields{
		"sales":     len(ds.Sales),
		"inventory": len(ds.Inventory),
		"demand":    len(ds.Demand),
	}).Debug("Stores replaced")
	return nil
}

// restore puts back contents read before a failed Apply. A nil inventory
// means the inventory store was never swapped.
func (m *Manager) restore(sales []entities.SalesRecord, inventory []entities.InventorySnapshot) {
	if err := m.salesRepo.Replace(pointers(sales)); err != nil {
		m.log.WithError(err).Error("Failed to restore sales after rejected dataset")
	}
	if inventory == nil {
		return
	}
	if err := m.inventoryRepo.Replace(pointers(inventory)); err != nil {
		m.log.WithError(err).Error("Failed to restore inventory after rejected dataset")
	}
}

func pointers[T any](values []T) []*T {
	out := make([]*T, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}
