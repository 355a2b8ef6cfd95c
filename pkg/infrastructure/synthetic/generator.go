package synthetic

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lettaearth/intel/pkg/domain/entities"
)

// Config controls synthetic dataset generation
type Config struct {
	Products      []entities.ProductID
	Accounts      []entities.AccountID
	HistoryMonths int
	// AnchorMonth is the last month of generated history
	AnchorMonth time.Time
	Seed        int64
}

// Dataset is one consistent set of store contents
type Dataset struct {
	Sales     []*entities.SalesRecord
	Inventory []*entities.InventorySnapshot
	Demand    []*entities.AccountDemand
}

// DefaultAccounts are the downstream buyers used when none are configured
var DefaultAccounts = []entities.AccountID{
	"Anatolia Confections",
	"Baltic Mills",
	"Coastal Roasters",
	"Delta Foods",
	"Evergreen Bakeries",
}

// Generator produces reproducible synthetic data
type Generator struct {
	config Config
	rand   *rand.Rand
}

// NewGenerator creates a generator; the same seed always yields the same dataset
func NewGenerator(config Config) (*Generator, error) {
	if len(config.Products) == 0 {
		return nil, fmt.Errorf("at least one product is required")
	}
	if len(config.Accounts) == 0 {
		config.Accounts = DefaultAccounts
	}
	if config.HistoryMonths <= 0 {
		config.HistoryMonths = 12
	}
	if config.AnchorMonth.IsZero() {
		config.AnchorMonth = time.Now()
	}
	config.AnchorMonth = entities.MonthStart(config.AnchorMonth)

	return &Generator{
		config: config,
		rand:   rand.New(rand.NewSource(config.Seed)),
	}, nil
}

// Generate builds sales history, inventory and account demand for every product
func (g *Generator) Generate() (*Dataset, error) {
	ds := &Dataset{}
	start := g.config.AnchorMonth.AddDate(0, -(g.config.HistoryMonths - 1), 0)

	for _, product := range g.config.Products {
		baseDemand := 50 + g.rand.Intn(451) // 50-500 units a month

		for m := 0; m < g.config.HistoryMonths; m++ {
			// +/-20% around the base
			qty := entities.Quantity(float64(baseDemand) * (0.8 + 0.4*g.rand.Float64()))
			rec, err := entities.NewSalesRecord(start.AddDate(0, m, 0), product, qty)
			if err != nil {
				return nil, fmt.Errorf("sales for %s: %w", product, err)
			}
			ds.Sales = append(ds.Sales, rec)
		}

		snapshot, err := g.snapshot(product, baseDemand)
		if err != nil {
			return nil, err
		}
		ds.Inventory = append(ds.Inventory, snapshot)

		demands, err := g.accountDemand(product, baseDemand)
		if err != nil {
			return nil, err
		}
		ds.Demand = append(ds.Demand, demands...)
	}

	return ds, nil
}

func (g *Generator) snapshot(product entities.ProductID, baseDemand int) (*entities.InventorySnapshot, error) {
	// between 0 and 3 months of cover, so all health classes show up
	onHand := entities.Quantity(g.rand.Intn(baseDemand*3 + 1))
	var onOrder entities.Quantity
	if g.rand.Float64() < 0.5 {
		onOrder = entities.Quantity(g.rand.Intn(baseDemand + 1))
	}
	leadTime := 7 + g.rand.Intn(84)
	cents := 50 + g.rand.Intn(2451) // 0.50-25.00
	unitCost := decimal.New(int64(cents), -2)

	snapshot, err := entities.NewInventorySnapshot(product, onHand, onOrder, leadTime, unitCost)
	if err != nil {
		return nil, fmt.Errorf("inventory for %s: %w", product, err)
	}
	return snapshot, nil
}

func (g *Generator) accountDemand(product entities.ProductID, baseDemand int) ([]*entities.AccountDemand, error) {
	accounts := g.config.Accounts
	count := len(accounts)
	if count > 2 {
		count = 2 + g.rand.Intn(len(accounts)-1)
	}

	picked := g.rand.Perm(len(accounts))[:count]
	demands := make([]*entities.AccountDemand, 0, count)
	for _, i := range picked {
		forecast := entities.Quantity(g.rand.Intn(baseDemand/2 + 1))
		stock := entities.Quantity(g.rand.Intn(int(forecast)*2 + 1))

		demand, err := entities.NewAccountDemand(product, accounts[i], stock, forecast)
		if err != nil {
			return nil, fmt.Errorf("demand for %s/%s: %w", product, accounts[i], err)
		}
		demands = append(demands, demand)
	}
	return demands, nil
}
