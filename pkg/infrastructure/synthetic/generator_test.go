package synthetic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettaearth/intel/pkg/domain/entities"
)

func testConfig(seed int64) Config {
	return Config{
		Products:      []entities.ProductID{"Cocoa", "Coffee", "Wheat"},
		HistoryMonths: 6,
		AnchorMonth:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Seed:          seed,
	}
}

func generate(t *testing.T, cfg Config) *Dataset {
	t.Helper()
	gen, err := NewGenerator(cfg)
	require.NoError(t, err)
	ds, err := gen.Generate()
	require.NoError(t, err)
	return ds
}

func TestGenerate_Shape(t *testing.T) {
	ds := generate(t, testConfig(7))

	assert.Len(t, ds.Sales, 18)
	assert.Len(t, ds.Inventory, 3)

	first := ds.Sales[0]
	last := ds.Sales[5]
	assert.True(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Equal(first.Date), "got %v", first.Date)
	assert.True(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Equal(last.Date), "got %v", last.Date)

	for _, s := range ds.Inventory {
		assert.Positive(t, s.LeadTimeDays)
		assert.True(t, s.UnitCost.IsPositive())
		assert.GreaterOrEqual(t, int64(s.OnHand), int64(0))
	}

	perProduct := map[entities.ProductID]map[entities.AccountID]bool{}
	for _, d := range ds.Demand {
		if perProduct[d.Product] == nil {
			perProduct[d.Product] = map[entities.AccountID]bool{}
		}
		assert.False(t, perProduct[d.Product][d.Account], "duplicate %s/%s", d.Product, d.Account)
		perProduct[d.Product][d.Account] = true
	}
	for _, p := range testConfig(7).Products {
		assert.GreaterOrEqual(t, len(perProduct[p]), 2, "product %s", p)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a := generate(t, testConfig(42))
	b := generate(t, testConfig(42))
	assert.Equal(t, a, b)

	c := generate(t, testConfig(43))
	assert.NotEqual(t, a, c)
}

func TestNewGenerator_RequiresProducts(t *testing.T) {
	_, err := NewGenerator(Config{})
	assert.Error(t, err)
}
