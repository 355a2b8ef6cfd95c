package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lettaearth/intel/pkg/application/dto"
	"github.com/lettaearth/intel/pkg/domain/entities"
)

// Format names an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (expected: text, json, csv, or xlsx)", s)
	}
}

// PlanCSVHeader is the column order of the supply plan CSV
var PlanCSVHeader = []string{
	"product", "on_hand", "on_order", "daily_demand", "target_stock_qty",
	"total_pipeline", "net_requirement", "health",
}

// AllocationCSVHeader is the column order of the allocation CSV
var AllocationCSVHeader = []string{
	"account", "product", "daily_burn_rate", "current_dos", "allocated_qty",
	"projected_stock", "projected_dos",
}

// Config holds configuration for output generation
type Config struct {
	Format    Format
	OutputDir string
	Verbose   bool
}

// GeneratePlan writes a planning result to stdout, or to OutputDir when set
func GeneratePlan(result *dto.PlanningResult, config Config) error {
	return generate(config, "supply_plan", func(w io.Writer) error {
		return WritePlan(w, result, config.Format)
	})
}

// GenerateAllocation writes an allocation result to stdout, or to OutputDir when set
func GenerateAllocation(result *dto.AllocationResult, config Config) error {
	name := "allocation_" + strings.ReplaceAll(strings.ToLower(string(result.Product)), " ", "_")
	return generate(config, name, func(w io.Writer) error {
		return WriteAllocation(w, result, config.Format)
	})
}

func generate(config Config, basename string, write func(io.Writer) error) error {
	if config.OutputDir == "" {
		if config.Format == FormatXLSX {
			return fmt.Errorf("output directory required for xlsx format")
		}
		return write(os.Stdout)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, basename+"."+extension(config.Format))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return err
	}

	if config.Verbose {
		fmt.Printf("💾 Results saved to: %s\n", filename)
	}
	return nil
}

func extension(f Format) string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// WritePlan encodes a planning result in the given format
func WritePlan(w io.Writer, result *dto.PlanningResult, format Format) error {
	switch format {
	case FormatText:
		return writePlanText(w, result)
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return writePlanCSV(w, result.Plan)
	case FormatXLSX:
		return WritePlanXLSX(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteAllocation encodes an allocation result in the given format
func WriteAllocation(w io.Writer, result *dto.AllocationResult, format Format) error {
	switch format {
	case FormatText:
		return writeAllocationText(w, result)
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return writeAllocationCSV(w, result.Rows)
	case FormatXLSX:
		return WriteAllocationXLSX(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

func writePlanText(w io.Writer, result *dto.PlanningResult) error {
	s := result.Summary
	fmt.Fprintf(w, "📊 Supply Plan Summary\n")
	fmt.Fprintf(w, "======================\n\n")
	fmt.Fprintf(w, "Run ID: %s\n", result.RunID)
	fmt.Fprintf(w, "Horizon: %d months\n", result.Horizon)
	fmt.Fprintf(w, "Target Days of Supply: %g\n", result.TargetDOS)
	fmt.Fprintf(w, "Products: %d (understocked %d, healthy %d, overstocked %d)\n",
		s.Products, s.Understocked, s.Healthy, s.Overstocked)
	fmt.Fprintf(w, "Total Net Requirement: %d\n", s.TotalNetRequirement)
	fmt.Fprintf(w, "Purchase Cost: %s\n\n", s.PurchaseCost.StringFixed(2))

	if len(result.Forecast) > 0 {
		fmt.Fprintf(w, "📈 Forecast:\n")
		fmt.Fprintf(w, "%-15s %-10s %-12s\n", "Product", "Month", "Qty")
		fmt.Fprintf(w, "%-15s %-10s %-12s\n", "---------------", "----------", "------------")
		for _, p := range result.Forecast {
			fmt.Fprintf(w, "%-15s %-10s %-12d\n", p.Product, p.Date.Format("2006-01"), p.ForecastQty)
		}
		fmt.Fprintln(w)
	}

	if len(result.Plan) > 0 {
		fmt.Fprintf(w, "📋 Supply Plan:\n")
		fmt.Fprintf(w, "%-15s %-10s %-10s %-10s %-10s %-10s %-10s %-12s\n",
			"Product", "On Hand", "On Order", "Daily", "Target", "Pipeline", "Net Req", "Health")
		fmt.Fprintf(w, "%-15s %-10s %-10s %-10s %-10s %-10s %-10s %-12s\n",
			"---------------", "----------", "----------", "----------", "----------", "----------", "----------", "------------")
		for _, row := range result.Plan {
			fmt.Fprintf(w, "%-15s %-10d %-10d %-10.1f %-10d %-10d %-10d %-12s\n",
				row.Product,
				row.OnHand,
				row.OnOrder,
				row.DailyDemand,
				row.TargetStockQty,
				row.TotalPipeline,
				row.NetRequirement,
				row.Health)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func writeAllocationText(w io.Writer, result *dto.AllocationResult) error {
	fmt.Fprintf(w, "📦 Allocation: %s\n", result.Product)
	fmt.Fprintf(w, "======================\n\n")
	fmt.Fprintf(w, "Run ID: %s\n", result.RunID)
	fmt.Fprintf(w, "Available: %d\n", result.Available)
	fmt.Fprintf(w, "Allocated: %d\n", result.Allocated)
	fmt.Fprintf(w, "Unallocated: %d\n\n", result.Unallocated)

	fmt.Fprintf(w, "%-20s %-10s %-12s %-10s %-12s %-12s\n",
		"Account", "Burn/Day", "Current DOS", "Allocated", "Projected", "Proj. DOS")
	fmt.Fprintf(w, "%-20s %-10s %-12s %-10s %-12s %-12s\n",
		"--------------------", "----------", "------------", "----------", "------------", "------------")
	for _, row := range result.Rows {
		fmt.Fprintf(w, "%-20s %-10.1f %-12s %-10d %-12d %-12s\n",
			row.Account,
			row.DailyBurnRate,
			row.CurrentDOS,
			row.AllocatedQty,
			row.ProjectedStock,
			row.ProjectedDOS)
	}
	fmt.Fprintln(w)
	return nil
}

func writePlanCSV(w io.Writer, rows []entities.SupplyPlanRow) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			string(row.Product),
			formatQty(row.OnHand),
			formatQty(row.OnOrder),
			strconv.FormatFloat(row.DailyDemand, 'f', 2, 64),
			formatQty(row.TargetStockQty),
			formatQty(row.TotalPipeline),
			formatQty(row.NetRequirement),
			row.Health.String(),
		})
	}
	return writeCSV(w, PlanCSVHeader, records)
}

func writeAllocationCSV(w io.Writer, rows []entities.AllocationRow) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			string(row.Account),
			string(row.Product),
			strconv.FormatFloat(row.DailyBurnRate, 'f', 2, 64),
			row.CurrentDOS.String(),
			formatQty(row.AllocatedQty),
			formatQty(row.ProjectedStock),
			row.ProjectedDOS.String(),
		})
	}
	return writeCSV(w, AllocationCSVHeader, records)
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func formatQty(q entities.Quantity) string {
	return strconv.FormatInt(int64(q), 10)
}
