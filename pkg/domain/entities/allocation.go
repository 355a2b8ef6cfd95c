package entities

// AllocationRow is the fair-share outcome for one account
type AllocationRow struct {
	Account        AccountID    `json:"account"`
	Product        ProductID    `json:"product"`
	DailyBurnRate  float64      `json:"daily_burn_rate"`
	CurrentDOS     DaysOfSupply `json:"current_dos"`
	AllocatedQty   Quantity     `json:"allocated_qty"`
	ProjectedStock Quantity     `json:"projected_stock"`
	ProjectedDOS   DaysOfSupply `json:"projected_dos"`
}
