package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/lettaearth/intel/pkg/application/dto"
)

const (
	SupplyPlanSheet = "Supply Plan"
	ForecastSheet   = "Forecast"
	AllocationSheet = "Allocation"
)

// WritePlanXLSX writes the supply plan and forecast as a two-sheet workbook
func WritePlanXLSX(w io.Writer, result *dto.PlanningResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SupplyPlanSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(ForecastSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}

	planRows := make([][]interface{}, 0, len(result.Plan))
	for _, row := range result.Plan {
		planRows = append(planRows, []interface{}{
			string(row.Product),
			int64(row.OnHand),
			int64(row.OnOrder),
			row.DailyDemand,
			int64(row.TargetStockQty),
			int64(row.TotalPipeline),
			int64(row.NetRequirement),
			row.Health.String(),
		})
	}
	if err := writeSheet(f, SupplyPlanSheet, PlanCSVHeader, planRows, headerStyle); err != nil {
		return err
	}

	forecastRows := make([][]interface{}, 0, len(result.Forecast))
	for _, p := range result.Forecast {
		forecastRows = append(forecastRows, []interface{}{
			string(p.Product),
			p.Date.Format("2006-01"),
			int64(p.ForecastQty),
		})
	}
	if err := writeSheet(f, ForecastSheet, []string{"product", "month", "forecast_qty"}, forecastRows, headerStyle); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteAllocationXLSX writes allocation rows as a single-sheet workbook
func WriteAllocationXLSX(w io.Writer, result *dto.AllocationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AllocationSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, []interface{}{
			string(row.Account),
			string(row.Product),
			row.DailyBurnRate,
			row.CurrentDOS.String(),
			int64(row.AllocatedQty),
			int64(row.ProjectedStock),
			row.ProjectedDOS.String(),
		})
	}
	if err := writeSheet(f, AllocationSheet, AllocationCSVHeader, rows, headerStyle); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func newHeaderStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create header style: %w", err)
	}
	return style, nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}, headerStyle int) error {
	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return err
		}
	}

	for r, values := range rows {
		for c, value := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
