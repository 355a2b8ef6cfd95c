package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/infrastructure/repositories/csv"
)

func TestGenerateThenPlan(t *testing.T) {
	ctx := context.Background()
	scenario := t.TempDir()

	gen := NewGenerateCommand(GenerateConfig{
		Products:      "Cocoa, Coffee",
		Accounts:      "North,South,East",
		HistoryMonths: 6,
		AnchorMonth:   "2025-05",
		OutputDir:     scenario,
		Seed:          42,
	})
	require.NoError(t, gen.Execute(ctx))

	for _, name := range []string{csv.SalesFile, csv.InventoryFile, csv.DemandFile} {
		assert.FileExists(t, filepath.Join(scenario, name))
	}

	sales, err := csv.NewLoader().LoadSales(filepath.Join(scenario, csv.SalesFile))
	require.NoError(t, err)
	assert.Len(t, sales, 12)

	logger, _ := test.NewNullLogger()
	out := t.TempDir()
	plan := NewPlanCommand(PlanConfig{
		Scenario:  ScenarioConfig{ScenarioDir: scenario},
		Horizon:   3,
		TargetDOS: 45,
		OutputDir: out,
		Format:    "csv",
	}, logger)
	require.NoError(t, plan.Execute(ctx))

	data, err := os.ReadFile(filepath.Join(out, "supply_plan.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Cocoa,"))
}

func TestGenerate_Validation(t *testing.T) {
	err := NewGenerateCommand(GenerateConfig{}).Execute(context.Background())
	assert.Error(t, err)

	err = NewGenerateCommand(GenerateConfig{OutputDir: t.TempDir(), AnchorMonth: "May 2025"}).Execute(context.Background())
	assert.Error(t, err)
}

func TestAllocateCommand(t *testing.T) {
	logger, _ := test.NewNullLogger()
	out := t.TempDir()

	cmd := NewAllocateCommand(AllocateConfig{
		Scenario:  ScenarioConfig{Seed: 3},
		Product:   "Palm Oil",
		Available: 250,
		OutputDir: out,
		Format:    "json",
	}, logger)
	require.NoError(t, cmd.Execute(context.Background()))
	assert.FileExists(t, filepath.Join(out, "allocation_palm_oil.json"))
}

func TestAllocateCommand_Errors(t *testing.T) {
	logger, _ := test.NewNullLogger()

	err := NewAllocateCommand(AllocateConfig{Format: "text"}, logger).Execute(context.Background())
	assert.Error(t, err)

	err = NewAllocateCommand(AllocateConfig{Product: "Cocoa", Format: "pdf"}, logger).Execute(context.Background())
	assert.Error(t, err)

	err = NewAllocateCommand(AllocateConfig{
		Scenario:  ScenarioConfig{Seed: 3},
		Product:   "Cocoa",
		Available: -1,
		Format:    "text",
	}, logger).Execute(context.Background())
	assert.ErrorIs(t, err, entities.ErrInvalidParameter)
}

func TestPlanCommand_InvalidFormat(t *testing.T) {
	logger, _ := test.NewNullLogger()
	err := NewPlanCommand(PlanConfig{Format: "gantt"}, logger).Execute(context.Background())
	assert.Error(t, err)
}
