package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lettaearth/intel/pkg/interfaces/cli/output"
)

// PlanConfig holds configuration for the plan command
type PlanConfig struct {
	Scenario  ScenarioConfig
	Horizon   int
	TargetDOS float64
	OutputDir string
	Format    string
	Verbose   bool
	Help      bool
}

// PlanCommand runs the forecast and supply planning pipeline
type PlanCommand struct {
	config PlanConfig
	log    *logrus.Logger
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config PlanConfig, log *logrus.Logger) *PlanCommand {
	return &PlanCommand{config: config, log: log}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	format, err := output.ParseFormat(c.config.Format)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	ws := newWorkspace(c.log)
	if err := ws.load(c.config.Scenario); err != nil {
		return err
	}

	start := time.Now()
	result, err := ws.orchestrator.RunSupplyPlan(ctx, c.config.Horizon, c.config.TargetDOS)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("⚡ Planning completed in %v\n\n", time.Since(start))
	}

	return output.GeneratePlan(result, output.Config{
		Format:    format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

func (c *PlanCommand) showHelp() {
	fmt.Println("intel plan - forecast demand and compute a supply plan")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  intel plan [-scenario DIR | -seed N] [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -scenario DIR     directory with sales.csv, inventory.csv, demand.csv")
	fmt.Println("  -seed N           generate a synthetic scenario when no directory is given")
	fmt.Println("  -horizon N        forecast months (default 3)")
	fmt.Println("  -target-dos D     target days of supply (default 45)")
	fmt.Println("  -format F         text, json, csv or xlsx (default text)")
	fmt.Println("  -output DIR       write results to DIR instead of stdout")
	fmt.Println("  -verbose          enable verbose output")
}
