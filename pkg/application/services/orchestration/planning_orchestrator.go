package orchestration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/lettaearth/intel/pkg/application/dto"
	"github.com/lettaearth/intel/pkg/application/services/allocation"
	"github.com/lettaearth/intel/pkg/application/services/forecast"
	"github.com/lettaearth/intel/pkg/application/services/supplyplan"
	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/domain/repositories"
)

// PlanningOrchestrator reads the data stores and runs the planning engines
type PlanningOrchestrator struct {
	salesRepo     repositories.SalesRepository
	inventoryRepo repositories.InventoryRepository
	demandRepo    repositories.DemandRepository
	log           *logrus.Logger
	now           func() time.Time
}

// NewPlanningOrchestrator creates a new planning orchestrator
func NewPlanningOrchestrator(
	salesRepo repositories.SalesRepository,
	inventoryRepo repositories.InventoryRepository,
	demandRepo repositories.DemandRepository,
	log *logrus.Logger,
) *PlanningOrchestrator {
	return &PlanningOrchestrator{
		salesRepo:     salesRepo,
		inventoryRepo: inventoryRepo,
		demandRepo:    demandRepo,
		log:           log,
		now:           time.Now,
	}
}

// RunForecast projects demand for every product with sales history
func (po *PlanningOrchestrator) RunForecast(ctx context.Context, horizon int) ([]entities.ForecastPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sales, err := po.salesRepo.GetSales()
	if err != nil {
		return nil, fmt.Errorf("failed to read sales history: %w", err)
	}

	points, err := forecast.Forecast(sales, horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to forecast demand: %w", err)
	}
	return points, nil
}

// RunSupplyPlan runs Forecast then Plan over the current stores
func (po *PlanningOrchestrator) RunSupplyPlan(ctx context.Context, horizon int, targetDOS float64) (*dto.PlanningResult, error) {
	runID := uuid.NewString()
	logger := po.log.WithFields(logrus.Fields{
		"run_id":     runID,
		"horizon":    horizon,
		"target_dos": targetDOS,
	})
	start := po.now()

	points, err := po.RunForecast(ctx, horizon)
	if err != nil {
		logger.WithError(err).Warn("forecast failed")
		return nil, err
	}

	snapshots, err := po.inventoryRepo.GetSnapshots()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	rows, err := supplyplan.Plan(snapshots, points, targetDOS)
	if err != nil {
		logger.WithError(err).Warn("supply planning failed")
		return nil, fmt.Errorf("failed to plan supply: %w", err)
	}

	result := &dto.PlanningResult{
		RunID:     runID,
		PlannedAt: start,
		Horizon:   horizon,
		TargetDOS: targetDOS,
		Forecast:  points,
		Plan:      rows,
		Summary:   summarize(rows, snapshots),
	}

	logger.WithFields(logrus.Fields{
		"products":        result.Summary.Products,
		"understocked":    result.Summary.Understocked,
		"net_requirement": result.Summary.TotalNetRequirement,
		"elapsed":         po.now().Sub(start).String(),
	}).Info("supply plan computed")

	return result, nil
}

// RunAllocation distributes available units of a product across its accounts.
// Available is not checked against on-hand stock; exceeding it is logged.
func (po *PlanningOrchestrator) RunAllocation(
	ctx context.Context,
	product entities.ProductID,
	available entities.Quantity,
) (*dto.AllocationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := po.log.WithFields(logrus.Fields{
		"run_id":    runID,
		"product":   product,
		"available": available,
	})

	if onHand, err := po.inventoryRepo.GetAvailableQuantity(product); err == nil && available > onHand {
		logger.WithField("on_hand", onHand).Warn("release quantity exceeds on-hand stock")
	}

	demand, err := po.demandRepo.GetAccountDemandsForProduct(product)
	if err != nil {
		return nil, fmt.Errorf("failed to read account demand: %w", err)
	}

	rows, err := allocation.Allocate(demand, product, available)
	if err != nil {
		logger.WithError(err).Warn("allocation failed")
		return nil, fmt.Errorf("failed to allocate %s: %w", product, err)
	}

	allocated := allocation.TotalAllocated(rows)
	logger.WithFields(logrus.Fields{
		"accounts":  len(rows),
		"allocated": allocated,
	}).Info("allocation computed")

	return &dto.AllocationResult{
		RunID:       runID,
		AllocatedAt: po.now(),
		Product:     product,
		Available:   available,
		Allocated:   allocated,
		Unallocated: available - allocated,
		Rows:        rows,
	}, nil
}

func summarize(rows []entities.SupplyPlanRow, snapshots []entities.InventorySnapshot) dto.PlanSummary {
	unitCosts := make(map[entities.ProductID]decimal.Decimal, len(snapshots))
	for _, s := range snapshots {
		unitCosts[s.Product] = s.UnitCost
	}

	summary := dto.PlanSummary{Products: len(rows), PurchaseCost: decimal.Zero}
	for _, row := range rows {
		switch row.Health {
		case entities.Understocked:
			summary.Understocked++
		case entities.Overstocked:
			summary.Overstocked++
		default:
			summary.Healthy++
		}
		summary.TotalNetRequirement += row.NetRequirement
		cost := unitCosts[row.Product].Mul(decimal.NewFromInt(int64(row.NetRequirement)))
		summary.PurchaseCost = summary.PurchaseCost.Add(cost)
	}
	return summary
}
