package entities

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// ProductID represents a unique product (commodity) identifier
type ProductID string

// AccountID represents a downstream customer account
type AccountID string

// Quantity represents an integer quantity of stock units
type Quantity int64

// DaysPerMonth converts monthly demand figures to daily rates
const DaysPerMonth = 30

// DaysOfSupply is stock divided by daily demand. It is +Inf when the daily
// demand is zero, which marshals to JSON null.
type DaysOfSupply float64

// UndefinedDaysOfSupply is reported when there is no demand to divide by
var UndefinedDaysOfSupply = DaysOfSupply(math.Inf(1))

// NewDaysOfSupply divides stock by a daily rate
func NewDaysOfSupply(stock Quantity, dailyRate float64) DaysOfSupply {
	if dailyRate <= 0 {
		return UndefinedDaysOfSupply
	}
	return DaysOfSupply(float64(stock) / dailyRate)
}

// IsDefined reports whether the value is a finite number of days
func (d DaysOfSupply) IsDefined() bool {
	return !math.IsInf(float64(d), 0) && !math.IsNaN(float64(d))
}

// String formats the value with one decimal, or "n/a"
func (d DaysOfSupply) String() string {
	if !d.IsDefined() {
		return "n/a"
	}
	return strconv.FormatFloat(float64(d), 'f', 1, 64)
}

// MarshalJSON renders undefined values as null
func (d DaysOfSupply) MarshalJSON() ([]byte, error) {
	if !d.IsDefined() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(d))
}

// UnmarshalJSON accepts null as undefined
func (d *DaysOfSupply) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = UndefinedDaysOfSupply
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*d = DaysOfSupply(f)
	return nil
}

// MonthStart truncates t to the first day of its month in UTC
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
