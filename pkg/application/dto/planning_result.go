package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lettaearth/intel/pkg/domain/entities"
)

// PlanningResult contains the complete output of a forecast and supply planning run
type PlanningResult struct {
	RunID     string                   `json:"run_id"`
	PlannedAt time.Time                `json:"planned_at"`
	Horizon   int                      `json:"horizon"`
	TargetDOS float64                  `json:"target_dos"`
	Forecast  []entities.ForecastPoint `json:"forecast"`
	Plan      []entities.SupplyPlanRow `json:"plan"`
	Summary   PlanSummary              `json:"summary"`
}

// PlanSummary aggregates a supply plan for display
type PlanSummary struct {
	Products            int               `json:"products"`
	Understocked        int               `json:"understocked"`
	Healthy             int               `json:"healthy"`
	Overstocked         int               `json:"overstocked"`
	TotalNetRequirement entities.Quantity `json:"total_net_requirement"`
	// PurchaseCost is the sum of net requirement times unit cost
	PurchaseCost decimal.Decimal `json:"purchase_cost"`
}

// AllocationResult contains the output of a fair-share allocation run
type AllocationResult struct {
	RunID       string                   `json:"run_id"`
	AllocatedAt time.Time                `json:"allocated_at"`
	Product     entities.ProductID       `json:"product"`
	Available   entities.Quantity        `json:"available"`
	Allocated   entities.Quantity        `json:"allocated"`
	Unallocated entities.Quantity        `json:"unallocated"`
	Rows        []entities.AllocationRow `json:"rows"`
}
