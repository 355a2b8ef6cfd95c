package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lettaearth/intel/pkg/application/services/dataset"
	"github.com/lettaearth/intel/pkg/application/services/orchestration"
	"github.com/lettaearth/intel/pkg/infrastructure/repositories/memory"
)

// ScenarioConfig selects where planning data comes from
type ScenarioConfig struct {
	// ScenarioDir holds sales.csv, inventory.csv and demand.csv; empty means synthetic
	ScenarioDir string
	Seed        int64
}

// workspace wires the memory stores to the dataset manager and the orchestrator
type workspace struct {
	datasets     *dataset.Manager
	orchestrator *orchestration.PlanningOrchestrator
}

func newWorkspace(log *logrus.Logger) *workspace {
	salesRepo := memory.NewSalesRepository(0)
	inventoryRepo := memory.NewInventoryRepository()
	demandRepo := memory.NewDemandRepository()

	return &workspace{
		datasets:     dataset.NewManager(salesRepo, inventoryRepo, demandRepo, log),
		orchestrator: orchestration.NewPlanningOrchestrator(salesRepo, inventoryRepo, demandRepo, log),
	}
}

func (w *workspace) load(cfg ScenarioConfig) error {
	if cfg.ScenarioDir != "" {
		if _, err := w.datasets.LoadDir(cfg.ScenarioDir); err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
		return nil
	}
	if _, err := w.datasets.Regenerate(cfg.Seed); err != nil {
		return fmt.Errorf("failed to generate scenario: %w", err)
	}
	return nil
}
