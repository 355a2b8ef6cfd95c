package supplyplan

import (
	"fmt"
	"math"

	"github.com/lettaearth/intel/pkg/domain/entities"
)

// DefaultTargetDaysOfSupply is used when the caller does not choose a target
const DefaultTargetDaysOfSupply = 45.0

// Plan computes one SupplyPlanRow per inventory snapshot, in snapshot order.
//
// Each product's monthly demand is the mean of its forecast points; the
// target stock covers targetDOS days of that demand. Forecast points for
// products absent from inventory are ignored.
func Plan(
	inventory []entities.InventorySnapshot,
	forecast []entities.ForecastPoint,
	targetDOS float64,
) ([]entities.SupplyPlanRow, error) {
	if !(targetDOS > 0) || math.IsInf(targetDOS, 0) {
		return nil, fmt.Errorf("%w: target days of supply must be positive, got %v", entities.ErrInvalidParameter, targetDOS)
	}

	monthly := averageMonthlyDemand(forecast)

	rows := make([]entities.SupplyPlanRow, 0, len(inventory))
	for _, snapshot := range inventory {
		avg, ok := monthly[snapshot.Product]
		if !ok {
			return nil, fmt.Errorf("%w: no forecast points for %s", entities.ErrMissingForecast, snapshot.Product)
		}
		row, err := planRow(snapshot, avg, targetDOS)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// maxTargetStock is 2^63, the first float64 that no longer fits a Quantity
const maxTargetStock = float64(math.MaxInt64)

func planRow(snapshot entities.InventorySnapshot, avgMonthlyDemand, targetDOS float64) (entities.SupplyPlanRow, error) {
	dailyDemand := avgMonthlyDemand / entities.DaysPerMonth
	targetQty := math.Floor(dailyDemand * targetDOS)
	if targetQty >= maxTargetStock {
		return entities.SupplyPlanRow{}, fmt.Errorf("%w: target stock for %s is out of range (%g days of %g per day)",
			entities.ErrInvalidParameter, snapshot.Product, targetDOS, dailyDemand)
	}
	if snapshot.OnOrder > math.MaxInt64-snapshot.OnHand {
		return entities.SupplyPlanRow{}, fmt.Errorf("%w: pipeline for %s overflows (on hand %d + on order %d)",
			entities.ErrInvalidParameter, snapshot.Product, snapshot.OnHand, snapshot.OnOrder)
	}
	target := entities.Quantity(targetQty)
	pipeline := snapshot.TotalPipeline()

	net := target - pipeline
	if net < 0 {
		net = 0
	}

	return entities.SupplyPlanRow{
		Product:        snapshot.Product,
		OnHand:         snapshot.OnHand,
		OnOrder:        snapshot.OnOrder,
		DailyDemand:    dailyDemand,
		TargetStockQty: target,
		TotalPipeline:  pipeline,
		NetRequirement: net,
		Health:         entities.ClassifyHealth(pipeline, target),
	}, nil
}

func averageMonthlyDemand(forecast []entities.ForecastPoint) map[entities.ProductID]float64 {
	sums := make(map[entities.ProductID]float64)
	counts := make(map[entities.ProductID]int)
	for _, point := range forecast {
		sums[point.Product] += float64(point.ForecastQty)
		counts[point.Product]++
	}

	averages := make(map[entities.ProductID]float64, len(sums))
	for product, sum := range sums {
		averages[product] = sum / float64(counts[product])
	}
	return averages
}
