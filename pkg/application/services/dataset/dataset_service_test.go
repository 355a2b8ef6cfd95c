package dataset

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/infrastructure/repositories/csv"
	"github.com/lettaearth/intel/pkg/infrastructure/repositories/memory"
	"github.com/lettaearth/intel/pkg/infrastructure/synthetic"
)

func newManager(t *testing.T) (*Manager, *memory.SalesRepository, *memory.InventoryRepository, *memory.DemandRepository) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	sales := memory.NewSalesRepository(0)
	inventory := memory.NewInventoryRepository()
	demand := memory.NewDemandRepository()
	m := NewManager(sales, inventory, demand, logger)
	m.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }
	return m, sales, inventory, demand
}

func TestManager_Regenerate(t *testing.T) {
	m, salesRepo, inventoryRepo, demandRepo := newManager(t)

	ds, err := m.Regenerate(42)
	require.NoError(t, err)

	sales, err := salesRepo.GetSales()
	require.NoError(t, err)
	assert.Len(t, sales, len(ds.Sales))

	snapshots, err := inventoryRepo.GetSnapshots()
	require.NoError(t, err)
	assert.Len(t, snapshots, 10)

	demands, err := demandRepo.GetAccountDemandsForProduct("Cocoa")
	require.NoError(t, err)
	assert.NotEmpty(t, demands)

	// regeneration replaces rather than appends
	_, err = m.Regenerate(7)
	require.NoError(t, err)
	snapshots, err = inventoryRepo.GetSnapshots()
	require.NoError(t, err)
	assert.Len(t, snapshots, 10)
}

func TestManager_LoadDir(t *testing.T) {
	m, salesRepo, _, _ := newManager(t)

	ds, err := m.Regenerate(1)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, csv.NewWriter().WriteScenario(dir, ds.Sales, ds.Inventory, ds.Demand))

	other, otherSales, _, _ := newManager(t)
	loaded, err := other.LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, loaded.Sales, len(ds.Sales))

	want, _ := salesRepo.GetSales()
	got, _ := otherSales.GetSales()
	assert.Equal(t, want, got)
}

func TestManager_LoadDirMissingFiles(t *testing.T) {
	m, _, _, _ := newManager(t)
	_, err := m.LoadDir(t.TempDir())
	assert.Error(t, err)
}

func TestManager_ApplyRejectedDatasetKeepsPreviousStores(t *testing.T) {
	m, salesRepo, inventoryRepo, demandRepo := newManager(t)
	_, err := m.Regenerate(42)
	require.NoError(t, err)

	wantSales, _ := salesRepo.GetSales()
	wantInventory, _ := inventoryRepo.GetSnapshots()
	wantDemand, _ := demandRepo.GetAccountDemands()

	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	sales := []*entities.SalesRecord{{Date: march, Product: "Corn", Quantity: 5}}
	inventory := []*entities.InventorySnapshot{{Product: "Corn", OnHand: 1, LeadTimeDays: 7}}

	testCases := []struct {
		name string
		ds   *synthetic.Dataset
	}{
		{
			name: "duplicate inventory",
			ds: &synthetic.Dataset{
				Sales: sales,
				Inventory: []*entities.InventorySnapshot{
					{Product: "Corn", OnHand: 1, LeadTimeDays: 7},
					{Product: "Corn", OnHand: 2, LeadTimeDays: 7},
				},
			},
		},
		{
			name: "duplicate demand",
			ds: &synthetic.Dataset{
				Sales:     sales,
				Inventory: inventory,
				Demand: []*entities.AccountDemand{
					{Product: "Corn", Account: "A", Forecast30d: 1},
					{Product: "Corn", Account: "A", Forecast30d: 2},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, m.Apply(tc.ds))

			gotSales, _ := salesRepo.GetSales()
			gotInventory, _ := inventoryRepo.GetSnapshots()
			gotDemand, _ := demandRepo.GetAccountDemands()
			assert.Equal(t, wantSales, gotSales)
			assert.Equal(t, wantInventory, gotInventory)
			assert.Equal(t, wantDemand, gotDemand)
		})
	}
}
