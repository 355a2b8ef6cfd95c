package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lettaearth/intel/pkg/domain/entities"
	"github.com/lettaearth/intel/pkg/infrastructure/reference"
	"github.com/lettaearth/intel/pkg/infrastructure/repositories/csv"
	"github.com/lettaearth/intel/pkg/infrastructure/synthetic"
)

// GenerateConfig holds configuration for scenario generation
type GenerateConfig struct {
	Products      string // Comma-separated products; empty uses the commodity presets
	Accounts      string // Comma-separated accounts; empty uses the default accounts
	HistoryMonths int    // Months of sales history per product
	AnchorMonth   string // Last history month as YYYY-MM; empty means the current month
	OutputDir     string // Output directory for generated files
	Seed          int64  // Random seed for reproducible generation
	Help          bool   // Show help
	Verbose       bool   // Verbose output
}

// GenerateCommand handles scenario generation
type GenerateCommand struct {
	config GenerateConfig
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	return &GenerateCommand{config: config}
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	if cmd.config.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}

	genConfig, err := cmd.generatorConfig()
	if err != nil {
		return err
	}

	if cmd.config.Verbose {
		fmt.Printf(
			"🔧 Generating scenario with %d products, %d months of history\n",
			len(genConfig.Products),
			genConfig.HistoryMonths,
		)
		fmt.Printf("📁 Output directory: %s\n", cmd.config.OutputDir)
		fmt.Printf("🎲 Random seed: %d\n", cmd.config.Seed)
	}

	gen, err := synthetic.NewGenerator(genConfig)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	ds, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate scenario: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := csv.NewWriter().WriteScenario(cmd.config.OutputDir, ds.Sales, ds.Inventory, ds.Demand); err != nil {
		return fmt.Errorf("failed to write scenario: %w", err)
	}

	fmt.Printf("✅ Generated scenario in %s\n", cmd.config.OutputDir)
	fmt.Printf("  Sales records: %d\n", len(ds.Sales))
	fmt.Printf("  Inventory snapshots: %d\n", len(ds.Inventory))
	fmt.Printf("  Account demands: %d\n", len(ds.Demand))
	return nil
}

func (cmd *GenerateCommand) generatorConfig() (synthetic.Config, error) {
	cfg := synthetic.Config{
		HistoryMonths: cmd.config.HistoryMonths,
		Seed:          cmd.config.Seed,
	}

	products := splitList(cmd.config.Products)
	if len(products) == 0 {
		products = reference.Presets()
	}
	for _, p := range products {
		cfg.Products = append(cfg.Products, entities.ProductID(p))
	}

	for _, a := range splitList(cmd.config.Accounts) {
		cfg.Accounts = append(cfg.Accounts, entities.AccountID(a))
	}

	if cmd.config.AnchorMonth != "" {
		anchor, err := time.Parse(csv.MonthLayout, cmd.config.AnchorMonth)
		if err != nil {
			return cfg, fmt.Errorf("invalid anchor month %q (expected YYYY-MM): %w", cmd.config.AnchorMonth, err)
		}
		cfg.AnchorMonth = anchor
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (cmd *GenerateCommand) printHelp() {
	fmt.Println("intel generate - write a synthetic planning scenario")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  intel generate -output DIR [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -output DIR       directory for sales.csv, inventory.csv, demand.csv (required)")
	fmt.Println("  -products LIST    comma-separated products (default: commodity presets)")
	fmt.Println("  -accounts LIST    comma-separated accounts")
	fmt.Println("  -months N         months of sales history (default 12)")
	fmt.Println("  -anchor YYYY-MM   last month of history (default: current month)")
	fmt.Println("  -seed N           random seed (default 42)")
	fmt.Println("  -verbose          enable verbose output")
}
