package allocation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/lettaearth/intel/pkg/domain/entities"
)

// Allocate distributes available units of product across its accounts in
// proportion to each account's 30-day forecast.
//
// Shares are floored, so the allocated total can fall short of available but
// never exceed it. Accounts with a zero forecast get nothing and report an
// undefined days-of-supply. A product whose accounts forecast nothing at all
// yields ErrNoDemandSignal.
func Allocate(
	demand []entities.AccountDemand,
	product entities.ProductID,
	available entities.Quantity,
) ([]entities.AllocationRow, error) {
	if available < 0 {
		return nil, fmt.Errorf("%w: available quantity must not be negative, got %d", entities.ErrInvalidParameter, available)
	}

	accounts := make([]entities.AccountDemand, 0, len(demand))
	totalForecast := decimal.Zero
	for _, d := range demand {
		if d.Product != product {
			continue
		}
		accounts = append(accounts, d)
		totalForecast = totalForecast.Add(decimal.NewFromInt(int64(d.Forecast30d)))
	}

	if totalForecast.IsZero() {
		return nil, fmt.Errorf("%w: total 30 day forecast for %s is zero across %d accounts",
			entities.ErrNoDemandSignal, product, len(accounts))
	}

	rows := make([]entities.AllocationRow, 0, len(accounts))
	for _, account := range accounts {
		burnRate := float64(account.Forecast30d) / entities.DaysPerMonth
		allocated := fairShare(account.Forecast30d, available, totalForecast)
		if allocated > math.MaxInt64-account.CurrentStock {
			return nil, fmt.Errorf("%w: projected stock for %s overflows (current %d + allocated %d)",
				entities.ErrInvalidParameter, account.Account, account.CurrentStock, allocated)
		}
		projected := account.CurrentStock + allocated

		rows = append(rows, entities.AllocationRow{
			Account:        account.Account,
			Product:        product,
			DailyBurnRate:  burnRate,
			CurrentDOS:     entities.NewDaysOfSupply(account.CurrentStock, burnRate),
			AllocatedQty:   allocated,
			ProjectedStock: projected,
			ProjectedDOS:   entities.NewDaysOfSupply(projected, burnRate),
		})
	}

	return rows, nil
}

// fairShare returns floor(forecast * available / total) in exact decimal
// arithmetic. forecast <= total, so the result never exceeds available.
func fairShare(forecast, available entities.Quantity, total decimal.Decimal) entities.Quantity {
	numerator := decimal.NewFromInt(int64(forecast)).Mul(decimal.NewFromInt(int64(available)))
	quotient, _ := numerator.QuoRem(total, 0)
	return entities.Quantity(quotient.IntPart())
}

// TotalAllocated sums AllocatedQty across rows
func TotalAllocated(rows []entities.AllocationRow) entities.Quantity {
	var total entities.Quantity
	for _, row := range rows {
		total += row.AllocatedQty
	}
	return total
}
