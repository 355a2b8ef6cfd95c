package entities

import "fmt"

// AccountDemand is the stock and 30-day forecast of one account for one product
type AccountDemand struct {
	Product      ProductID `json:"product"`
	Account      AccountID `json:"account"`
	CurrentStock Quantity  `json:"current_stock"`
	Forecast30d  Quantity  `json:"forecast_30d"`
}

// NewAccountDemand creates a validated AccountDemand
func NewAccountDemand(product ProductID, account AccountID, currentStock, forecast30d Quantity) (*AccountDemand, error) {
	if string(product) == "" {
		return nil, fmt.Errorf("product cannot be empty")
	}
	if string(account) == "" {
		return nil, fmt.Errorf("account cannot be empty")
	}
	if currentStock < 0 {
		return nil, fmt.Errorf("current stock cannot be negative, got %d", currentStock)
	}
	if forecast30d < 0 {
		return nil, fmt.Errorf("30 day forecast cannot be negative, got %d", forecast30d)
	}

	return &AccountDemand{
		Product:      product,
		Account:      account,
		CurrentStock: currentStock,
		Forecast30d:  forecast30d,
	}, nil
}
