package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/domain/repositories"
)

type salesKey struct {
	product entities.ProductID
	month   time.Time
}

// SalesRepository provides in-memory sales history storage
type SalesRepository struct {
	mu      sync.RWMutex
	records []entities.SalesRecord
	index   map[salesKey]int
}

// NewSalesRepository creates a new in-memory sales repository
func NewSalesRepository(expectedRecords int) *SalesRepository {
	return &SalesRepository{
		records: make([]entities.SalesRecord, 0, expectedRecords),
		index:   make(map[salesKey]int, expectedRecords),
	}
}

// Verify interface compliance
var _ repositories.SalesRepository = (*SalesRepository)(nil)

// LoadSales appends records, rejecting a second record for the same product and month
func (r *SalesRepository) LoadSales(records []*entities.SalesRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.addAll(records)
}

// Replace discards the current history and loads records in its place
func (r *SalesRepository) Replace(records []*entities.SalesRecord) error {
	fresh := NewSalesRepository(len(records))
	if err := fresh.addAll(records); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = fresh.records
	r.index = fresh.index
	return nil
}

// addAll validates the whole batch before storing any of it
func (r *SalesRepository) addAll(records []*entities.SalesRecord) error {
	batch := make([]entities.SalesRecord, 0, len(records))
	seen := make(map[salesKey]struct{}, len(records))
	for _, record := range records {
		rec := *record
		rec.Date = entities.MonthStart(rec.Date)
		key := salesKey{product: rec.Product, month: rec.Date}
		_, stored := r.index[key]
		_, batched := seen[key]
		if stored || batched {
			return fmt.Errorf("duplicate sales record: %s for %s", rec.Product, rec.Date.Format("2006-01"))
		}
		seen[key] = struct{}{}
		batch = append(batch, rec)
	}

	for _, rec := range batch {
		r.index[salesKey{product: rec.Product, month: rec.Date}] = len(r.records)
		r.records = append(r.records, rec)
	}
	return nil
}

// GetSales returns a copy of all sales records ordered by product then month
func (r *SalesRepository) GetSales() ([]entities.SalesRecord, error) {
	r.mu.RLock()
	out := make([]entities.SalesRecord, len(r.records))
	copy(out, r.records)
	r.mu.RUnlock()

	sortSales(out)
	return out, nil
}

// GetSalesForProduct returns a copy of one product's sales ordered by month
func (r *SalesRepository) GetSalesForProduct(product entities.ProductID) ([]entities.SalesRecord, error) {
	r.mu.RLock()
	var out []entities.SalesRecord
	for _, rec := range r.records {
		if rec.Product == product {
			out = append(out, rec)
		}
	}
	r.mu.RUnlock()

	sortSales(out)
	return out, nil
}

func sortSales(records []entities.SalesRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Product != records[j].Product {
			return records[i].Product < records[j].Product
		}
		return records[i].Date.Before(records[j].Date)
	})
}
