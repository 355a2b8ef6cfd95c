package forecast

import (
	"fmt"
	"sort"

	"github.com/lettaearth/intel/pkg/domain/entities"
)

const (
	// DefaultHorizon is the number of future months projected when the caller has no preference
	DefaultHorizon = 3
	// TrailingWindow is the number of most recent months averaged per product
	TrailingWindow = 3
)

// Forecast projects each product's trailing average flat across horizon
// future months, starting the month after the product's latest sale.
//
// Quantities are truncated, not rounded. A product with no history yields
// ErrInsufficientData; horizon 0 yields an empty result.
func Forecast(sales []entities.SalesRecord, horizon int) ([]entities.ForecastPoint, error) {
	if horizon < 0 {
		return nil, fmt.Errorf("%w: horizon must not be negative, got %d", entities.ErrInvalidParameter, horizon)
	}
	if horizon == 0 {
		return []entities.ForecastPoint{}, nil
	}
	if len(sales) == 0 {
		return nil, fmt.Errorf("%w: no sales history", entities.ErrInsufficientData)
	}

	history := groupByProduct(sales)

	products := make([]entities.ProductID, 0, len(history))
	for product := range history {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i] < products[j] })

	points := make([]entities.ForecastPoint, 0, len(products)*horizon)
	for _, product := range products {
		records := history[product]
		mean, err := trailingMean(records)
		if err != nil {
			return nil, fmt.Errorf("forecast for %s: %w", product, err)
		}

		latest := entities.MonthStart(records[len(records)-1].Date)
		for period := 1; period <= horizon; period++ {
			points = append(points, entities.ForecastPoint{
				Date:        latest.AddDate(0, period, 0),
				Product:     product,
				ForecastQty: mean,
			})
		}
	}

	return points, nil
}

// groupByProduct buckets records per product, each bucket ordered by month
func groupByProduct(sales []entities.SalesRecord) map[entities.ProductID][]entities.SalesRecord {
	history := make(map[entities.ProductID][]entities.SalesRecord)
	for _, rec := range sales {
		history[rec.Product] = append(history[rec.Product], rec)
	}
	for _, records := range history {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.Before(records[j].Date)
		})
	}
	return history
}

// trailingMean averages the last TrailingWindow quantities, or all of them
// when the history is shorter
func trailingMean(records []entities.SalesRecord) (entities.Quantity, error) {
	if len(records) == 0 {
		return 0, entities.ErrInsufficientData
	}

	window := records
	if len(window) > TrailingWindow {
		window = window[len(window)-TrailingWindow:]
	}

	var sum entities.Quantity
	for _, rec := range window {
		sum += rec.Quantity
	}
	return sum / entities.Quantity(len(window)), nil
}
