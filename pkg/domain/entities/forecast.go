package entities

import "time"

// ForecastPoint is the projected quantity for one product in one future month
type ForecastPoint struct {
	Date        time.Time `json:"date"`
	Product     ProductID `json:"product"`
	ForecastQty Quantity  `json:"forecast_qty"`
}
