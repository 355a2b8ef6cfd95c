package commands

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/interfaces/cli/output"
)

// AllocateConfig holds configuration for the allocate command
type AllocateConfig struct {
	Scenario  ScenarioConfig
	Product   string
	Available int64
	OutputDir string
	Format    string
	Verbose   bool
	Help      bool
}

// AllocateCommand distributes a release quantity across a product's accounts
type AllocateCommand struct {
	config AllocateConfig
	log    *logrus.Logger
}

// NewAllocateCommand creates a new allocate command with the given configuration
func NewAllocateCommand(config AllocateConfig, log *logrus.Logger) *AllocateCommand {
	return &AllocateCommand{config: config, log: log}
}

// Execute runs the allocate command
func (c *AllocateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.Product == "" {
		return fmt.Errorf("validation error: -product is required")
	}
	format, err := output.ParseFormat(c.config.Format)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	ws := newWorkspace(c.log)
	if err := ws.load(c.config.Scenario); err != nil {
		return err
	}

	result, err := ws.orchestrator.RunAllocation(
		ctx,
		entities.ProductID(c.config.Product),
		entities.Quantity(c.config.Available),
	)
	if err != nil {
		return err
	}

	return output.GenerateAllocation(result, output.Config{
		Format:    format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

func (c *AllocateCommand) showHelp() {
	fmt.Println("intel allocate - split a release quantity across accounts by forecast share")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  intel allocate -product NAME -available N [-scenario DIR | -seed N] [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -product NAME     product to allocate (required)")
	fmt.Println("  -available N      units available for release")
	fmt.Println("  -scenario DIR     directory with sales.csv, inventory.csv, demand.csv")
	fmt.Println("  -seed N           generate a synthetic scenario when no directory is given")
	fmt.Println("  -format F         text, json, csv or xlsx (default text)")
	fmt.Println("  -output DIR       write results to DIR instead of stdout")
}
