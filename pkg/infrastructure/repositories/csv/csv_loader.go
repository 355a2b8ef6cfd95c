package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lettaearth/intel/pkg/domain/entities"
)

// MonthLayout is the date format of the sales CSV
const MonthLayout = "2006-01"

var (
	salesHeader     = []string{"date", "product", "quantity"}
	inventoryHeader = []string{"product", "on_hand", "on_order", "lead_time_days", "unit_cost"}
	demandHeader    = []string{"product", "account", "current_stock", "forecast_30d"}
)

// Loader handles loading planning data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadSales loads monthly sales records from a CSV file
func (l *Loader) LoadSales(filename string) ([]*entities.SalesRecord, error) {
	records, err := readRecords(filename, "sales", salesHeader)
	if err != nil {
		return nil, err
	}

	var sales []*entities.SalesRecord
	for i, record := range records {
		rec, err := parseSalesRecord(record)
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: %w", i+2, err)
		}
		sales = append(sales, rec)
	}
	return sales, nil
}

// LoadInventory loads inventory snapshots from a CSV file
func (l *Loader) LoadInventory(filename string) ([]*entities.InventorySnapshot, error) {
	records, err := readRecords(filename, "inventory", inventoryHeader)
	if err != nil {
		return nil, err
	}

	var snapshots []*entities.InventorySnapshot
	for i, record := range records {
		snapshot, err := parseInventorySnapshot(record)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

// LoadDemand loads per-account demand from a CSV file
func (l *Loader) LoadDemand(filename string) ([]*entities.AccountDemand, error) {
	records, err := readRecords(filename, "demand", demandHeader)
	if err != nil {
		return nil, err
	}

	var demands []*entities.AccountDemand
	for i, record := range records {
		demand, err := parseAccountDemand(record)
		if err != nil {
			return nil, fmt.Errorf("demand CSV row %d: %w", i+2, err)
		}
		demands = append(demands, demand)
	}
	return demands, nil
}

// readRecords opens a CSV file, validates its header and returns the data rows
func readRecords(filename, kind string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	return parseRecords(file, kind, expectedHeader)
}

func parseRecords(r io.Reader, kind string, expectedHeader []string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", kind, expectedHeader, header)
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d", kind, i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseSalesRecord(record []string) (*entities.SalesRecord, error) {
	date, err := time.Parse(MonthLayout, strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM)", record[0])
	}

	quantity, err := parseQuantity("quantity", record[2])
	if err != nil {
		return nil, err
	}

	return entities.NewSalesRecord(date, entities.ProductID(strings.TrimSpace(record[1])), quantity)
}

func parseInventorySnapshot(record []string) (*entities.InventorySnapshot, error) {
	onHand, err := parseQuantity("on_hand", record[1])
	if err != nil {
		return nil, err
	}

	onOrder, err := parseQuantity("on_order", record[2])
	if err != nil {
		return nil, err
	}

	leadTime, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_days: %s", record[3])
	}

	unitCost, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, fmt.Errorf("invalid unit_cost: %s", record[4])
	}

	return entities.NewInventorySnapshot(
		entities.ProductID(strings.TrimSpace(record[0])),
		onHand,
		onOrder,
		leadTime,
		unitCost,
	)
}

func parseAccountDemand(record []string) (*entities.AccountDemand, error) {
	stock, err := parseQuantity("current_stock", record[2])
	if err != nil {
		return nil, err
	}

	forecast, err := parseQuantity("forecast_30d", record[3])
	if err != nil {
		return nil, err
	}

	return entities.NewAccountDemand(
		entities.ProductID(strings.TrimSpace(record[0])),
		entities.AccountID(strings.TrimSpace(record[1])),
		stock,
		forecast,
	)
}

func parseQuantity(column, value string) (entities.Quantity, error) {
	q, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", column, value)
	}
	return entities.Quantity(q), nil
}
