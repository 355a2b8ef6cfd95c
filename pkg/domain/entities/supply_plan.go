package entities

import "fmt"

// Health classifies a product's pipeline against its target stock
type Health int

const (
	Healthy Health = iota
	Understocked
	Overstocked
)

// OverstockFactor is the multiple of target stock above which a pipeline is overstocked
const OverstockFactor = 1.5

// String method for Health enum
func (h Health) String() string {
	switch h {
	case Healthy:
		return "Healthy"
	case Understocked:
		return "Understocked"
	case Overstocked:
		return "Overstocked"
	default:
		return "Unknown"
	}
}

// MarshalText renders the health name
func (h Health) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText parses a health name
func (h *Health) UnmarshalText(text []byte) error {
	parsed, err := ParseHealth(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHealth converts a health name to its enum value
func ParseHealth(s string) (Health, error) {
	switch s {
	case "Healthy":
		return Healthy, nil
	case "Understocked":
		return Understocked, nil
	case "Overstocked":
		return Overstocked, nil
	default:
		return Healthy, fmt.Errorf("invalid health: %s (expected: Healthy, Understocked, or Overstocked)", s)
	}
}

// ClassifyHealth evaluates the guards in order: Understocked, then
// Overstocked, else Healthy. A zero target makes both guards false.
func ClassifyHealth(totalPipeline, targetStockQty Quantity) Health {
	switch {
	case totalPipeline < targetStockQty:
		return Understocked
	case float64(totalPipeline) > float64(targetStockQty)*OverstockFactor:
		return Overstocked
	default:
		return Healthy
	}
}

// SupplyPlanRow is the planning outcome for one product
type SupplyPlanRow struct {
	Product        ProductID `json:"product"`
	OnHand         Quantity  `json:"on_hand"`
	OnOrder        Quantity  `json:"on_order"`
	DailyDemand    float64   `json:"daily_demand"`
	TargetStockQty Quantity  `json:"target_stock_qty"`
	TotalPipeline  Quantity  `json:"total_pipeline"`
	NetRequirement Quantity  `json:"net_requirement"`
	Health         Health    `json:"health"`
}
