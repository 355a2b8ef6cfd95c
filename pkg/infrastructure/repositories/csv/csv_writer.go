package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lettaearth/intel/pkg/domain/entities"
)

// Scenario file names inside a scenario directory
const (
	SalesFile     = "sales.csv"
	InventoryFile = "inventory.csv"
	DemandFile    = "demand.csv"
)

// Writer writes planning data in the format Loader reads
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteScenario writes sales, inventory and demand CSVs into dir
func (w *Writer) WriteScenario(
	dir string,
	sales []*entities.SalesRecord,
	inventory []*entities.InventorySnapshot,
	demand []*entities.AccountDemand,
) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	salesRows := make([][]string, 0, len(sales))
	for _, s := range sales {
		salesRows = append(salesRows, []string{
			s.Date.Format(MonthLayout),
			string(s.Product),
			strconv.FormatInt(int64(s.Quantity), 10),
		})
	}
	if err := writeFile(filepath.Join(dir, SalesFile), salesHeader, salesRows); err != nil {
		return err
	}

	inventoryRows := make([][]string, 0, len(inventory))
	for _, s := range inventory {
		inventoryRows = append(inventoryRows, []string{
			string(s.Product),
			strconv.FormatInt(int64(s.OnHand), 10),
			strconv.FormatInt(int64(s.OnOrder), 10),
			strconv.Itoa(s.LeadTimeDays),
			s.UnitCost.StringFixed(2),
		})
	}
	if err := writeFile(filepath.Join(dir, InventoryFile), inventoryHeader, inventoryRows); err != nil {
		return err
	}

	demandRows := make([][]string, 0, len(demand))
	for _, d := range demand {
		demandRows = append(demandRows, []string{
			string(d.Product),
			string(d.Account),
			strconv.FormatInt(int64(d.CurrentStock), 10),
			strconv.FormatInt(int64(d.Forecast30d), 10),
		})
	}
	return writeFile(filepath.Join(dir, DemandFile), demandHeader, demandRows)
}

func writeFile(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", filename, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
