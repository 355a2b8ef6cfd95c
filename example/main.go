package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lettaearth/intel/pkg/application/services/allocation"
	"github.com/lettaearth/intel/pkg/application/services/forecast"
	"github.com/lettaearth/intel/pkg/application/services/supplyplan"
	"github.com/lettaearth/intel/pkg/domain/entities"
)

func main() {
	// Three months of hazelnut sales
	var sales []entities.SalesRecord
	for i, qty := range []entities.Quantity{900, 1200, 1500} {
		month := time.Date(2025, time.January+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		rec, err := entities.NewSalesRecord(month, "Hazelnuts", qty)
		if err != nil {
			fmt.Printf("❌ Invalid sales record: %v\n", err)
			return
		}
		sales = append(sales, *rec)
	}

	snapshot, err := entities.NewInventorySnapshot("Hazelnuts", 800, 300, 45, decimal.RequireFromString("7.25"))
	if err != nil {
		fmt.Printf("❌ Invalid inventory snapshot: %v\n", err)
		return
	}

	fmt.Println("🌰 Planning hazelnut supply...")
	points, err := forecast.Forecast(sales, forecast.DefaultHorizon)
	if err != nil {
		fmt.Printf("❌ Forecast failed: %v\n", err)
		return
	}

	fmt.Println("📈 Forecast:")
	for _, p := range points {
		fmt.Printf("  %s: %d units\n", p.Date.Format("Jan 2006"), p.ForecastQty)
	}
	fmt.Println()

	rows, err := supplyplan.Plan([]entities.InventorySnapshot{*snapshot}, points, supplyplan.DefaultTargetDaysOfSupply)
	if err != nil {
		fmt.Printf("❌ Supply planning failed: %v\n", err)
		return
	}

	row := rows[0]
	fmt.Println("📋 Supply Plan:")
	fmt.Printf("  Daily demand: %.1f units\n", row.DailyDemand)
	fmt.Printf("  Target stock (%g days): %d units\n", supplyplan.DefaultTargetDaysOfSupply, row.TargetStockQty)
	fmt.Printf("  Pipeline: %d units (on hand %d, on order %d)\n", row.TotalPipeline, row.OnHand, row.OnOrder)
	fmt.Printf("  Net requirement: %d units\n", row.NetRequirement)
	fmt.Printf("  Health: %s\n", row.Health)
	fmt.Printf("  Purchase cost: %s\n", snapshot.UnitCost.Mul(decimal.NewFromInt(int64(row.NetRequirement))).StringFixed(2))
	fmt.Println()

	// Release the on-hand stock across three confectioners
	var demand []entities.AccountDemand
	for _, d := range []struct {
		account  entities.AccountID
		stock    entities.Quantity
		forecast entities.Quantity
	}{
		{"Anatolia Confections", 120, 600},
		{"Baltic Mills", 40, 300},
		{"Coastal Roasters", 75, 0},
	} {
		ad, err := entities.NewAccountDemand("Hazelnuts", d.account, d.stock, d.forecast)
		if err != nil {
			fmt.Printf("❌ Invalid account demand: %v\n", err)
			return
		}
		demand = append(demand, *ad)
	}

	allocations, err := allocation.Allocate(demand, "Hazelnuts", row.OnHand)
	if err != nil {
		fmt.Printf("❌ Allocation failed: %v\n", err)
		return
	}

	fmt.Printf("📦 Allocation of %d units:\n", row.OnHand)
	for _, a := range allocations {
		fmt.Printf("  %-22s +%-5d DOS %s → %s\n", a.Account, a.AllocatedQty, a.CurrentDOS, a.ProjectedDOS)
	}
	fmt.Printf("  Unallocated: %d\n", row.OnHand-allocation.TotalAllocated(allocations))
}
