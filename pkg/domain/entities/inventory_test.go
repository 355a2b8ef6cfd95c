package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInventorySnapshot_Validation(t *testing.T) {
	validSnapshot, err := NewInventorySnapshot("Cocoa", 100, 20, 14, decimal.RequireFromString("2.50"))
	if err != nil {
		t.Fatalf("Expected valid snapshot creation to succeed: %v", err)
	}
	if validSnapshot.TotalPipeline() != 120 {
		t.Errorf("Expected total pipeline 120, got %d", validSnapshot.TotalPipeline())
	}

	testCases := []struct {
		name        string
		product     ProductID
		onHand      Quantity
		onOrder     Quantity
		leadTime    int
		unitCost    decimal.Decimal
		expectError string
	}{
		{"empty product", "", 1, 1, 1, decimal.NewFromInt(1), "product cannot be empty"},
		{"negative on hand", "Cocoa", -1, 1, 1, decimal.NewFromInt(1), "on hand quantity cannot be negative, got -1"},
		{"negative on order", "Cocoa", 1, -2, 1, decimal.NewFromInt(1), "on order quantity cannot be negative, got -2"},
		{"zero lead time", "Cocoa", 1, 1, 0, decimal.NewFromInt(1), "lead time must be positive, got 0"},
		{"zero unit cost", "Cocoa", 1, 1, 1, decimal.Zero, "unit cost must be positive, got 0"},
		{"negative unit cost", "Cocoa", 1, 1, 1, decimal.RequireFromString("-0.5"), "unit cost must be positive, got -0.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInventorySnapshot(tc.product, tc.onHand, tc.onOrder, tc.leadTime, tc.unitCost)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestAccountDemand_Validation(t *testing.T) {
	if _, err := NewAccountDemand("Cocoa", "ACME", 0, 0); err != nil {
		t.Fatalf("Expected zero stock and zero forecast to be valid: %v", err)
	}

	testCases := []struct {
		name        string
		product     ProductID
		account     AccountID
		stock       Quantity
		forecast    Quantity
		expectError string
	}{
		{"empty product", "", "ACME", 1, 1, "product cannot be empty"},
		{"empty account", "Cocoa", "", 1, 1, "account cannot be empty"},
		{"negative stock", "Cocoa", "ACME", -3, 1, "current stock cannot be negative, got -3"},
		{"negative forecast", "Cocoa", "ACME", 1, -4, "30 day forecast cannot be negative, got -4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAccountDemand(tc.product, tc.account, tc.stock, tc.forecast)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}
