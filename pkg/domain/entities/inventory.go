package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InventorySnapshot is the current stock position of one product
type InventorySnapshot struct {
	Product      ProductID       `json:"product"`
	OnHand       Quantity        `json:"on_hand"`
	OnOrder      Quantity        `json:"on_order"`
	LeadTimeDays int             `json:"lead_time_days"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
}

// NewInventorySnapshot creates a validated InventorySnapshot
func NewInventorySnapshot(
	product ProductID,
	onHand, onOrder Quantity,
	leadTimeDays int,
	unitCost decimal.Decimal,
) (*InventorySnapshot, error) {
	if string(product) == "" {
		return nil, fmt.Errorf("product cannot be empty")
	}
	if onHand < 0 {
		return nil, fmt.Errorf("on hand quantity cannot be negative, got %d", onHand)
	}
	if onOrder < 0 {
		return nil, fmt.Errorf("on order quantity cannot be negative, got %d", onOrder)
	}
	if leadTimeDays <= 0 {
		return nil, fmt.Errorf("lead time must be positive, got %d", leadTimeDays)
	}
	if !unitCost.IsPositive() {
		return nil, fmt.Errorf("unit cost must be positive, got %s", unitCost.String())
	}

	return &InventorySnapshot{
		Product:      product,
		OnHand:       onHand,
		OnOrder:      onOrder,
		LeadTimeDays: leadTimeDays,
		UnitCost:     unitCost,
	}, nil
}

// TotalPipeline returns on-hand plus on-order stock
func (s InventorySnapshot) TotalPipeline() Quantity {
	return s.OnHand + s.OnOrder
}
