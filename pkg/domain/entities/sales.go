package entities

import (
	"fmt"
	"time"
)

// SalesRecord is one month of sales for one product
type SalesRecord struct {
	Date     time.Time `json:"date"`
	Product  ProductID `json:"product"`
	Quantity Quantity  `json:"quantity"`
}

// NewSalesRecord creates a validated SalesRecord. The date is normalized to
// the first day of its month.
func NewSalesRecord(date time.Time, product ProductID, quantity Quantity) (*SalesRecord, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("date cannot be empty")
	}
	if string(product) == "" {
		return nil, fmt.Errorf("product cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}

	return &SalesRecord{
		Date:     MonthStart(date),
		Product:  product,
		Quantity: quantity,
	}, nil
}
