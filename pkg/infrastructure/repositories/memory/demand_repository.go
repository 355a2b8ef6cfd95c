package memory

import (
	"fmt"
	"sync"

	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/domain/repositories"
)

type demandKey struct {
	product entities.ProductID
	account entities.AccountID
}

// DemandRepository provides in-memory account demand storage
type DemandRepository struct {
	mu      sync.RWMutex
	demands []entities.AccountDemand
	keys    map[demandKey]struct{}
}

// NewDemandRepository creates a new in-memory demand repository
func NewDemandRepository() *DemandRepository {
	return &DemandRepository{
		demands: []entities.AccountDemand{},
		keys:    make(map[demandKey]struct{}),
	}
}

// Verify interface compliance
var _ repositories.DemandRepository = (*DemandRepository)(nil)

// LoadAccountDemands loads demands into the repository
func (r *DemandRepository) LoadAccountDemands(demands []*entities.AccountDemand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.addAll(demands)
}

// Replace swaps the current demand set
func (r *DemandRepository) Replace(demands []*entities.AccountDemand) error {
	fresh := NewDemandRepository()
	if err := fresh.addAll(demands); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.demands = fresh.demands
	r.keys = fresh.keys
	return nil
}

// addAll validates the whole batch before storing any of it
func (r *DemandRepository) addAll(demands []*entities.AccountDemand) error {
	seen := make(map[demandKey]struct{}, len(demands))
	for _, demand := range demands {
		key := demandKey{product: demand.Product, account: demand.Account}
		_, stored := r.keys[key]
		_, batched := seen[key]
		if stored || batched {
			return fmt.Errorf("duplicate account demand: %s for %s", demand.Account, demand.Product)
		}
		seen[key] = struct{}{}
	}

	for _, demand := range demands {
		r.keys[demandKey{product: demand.Product, account: demand.Account}] = struct{}{}
		r.demands = append(r.demands, *demand)
	}
	return nil
}

// GetAccountDemands returns a copy of all account demands
func (r *DemandRepository) GetAccountDemands() ([]entities.AccountDemand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.AccountDemand, len(r.demands))
	copy(out, r.demands)
	return out, nil
}

// GetAccountDemandsForProduct returns a copy of one product's account demands
func (r *DemandRepository) GetAccountDemandsForProduct(product entities.ProductID) ([]entities.AccountDemand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.AccountDemand
	for _, demand := range r.demands {
		if demand.Product == product {
			out = append(out, demand)
		}
	}
	return out, nil
}
