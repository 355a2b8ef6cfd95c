package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/lettaearth/intel/pkg/infrastructure/config"
	"github.com/lettaearth/intel/pkg/infrastructure/logging"
	"github.com/lettaearth/intel/pkg/interfaces/cli/commands"
)

// Command is a runnable subcommand
type Command interface {
	Execute(ctx context.Context) error
}

func main() {
	if len(os.Args) < 2 || os.Args[1] == "-help" || os.Args[1] == "--help" || os.Args[1] == "help" {
		usage()
		if len(os.Args) < 2 {
			os.Exit(2)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd, log, err := parse(os.Args[1], os.Args[2:], cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		log.WithError(err).Debug("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func parse(name string, args []string, cfg *config.Config) (Command, *logrus.Logger, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var (
		scenarioDir = fs.String("scenario", "", "Path to scenario directory containing CSV files")
		seed        = fs.Int64("seed", cfg.DataSeed, "Random seed for synthetic data")
		logLevel    = fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
		verbose     = fs.Bool("verbose", false, "Enable verbose output")
		help        = fs.Bool("help", false, "Show help message")
	)

	var build func(log *logrus.Logger) Command

	switch name {
	case "plan":
		horizon := fs.Int("horizon", cfg.ForecastHorizon, "Forecast horizon in months")
		targetDOS := fs.Float64("target-dos", cfg.TargetDOS, "Target days of supply")
		outputDir := fs.String("output", "", "Output directory for results (optional)")
		format := fs.String("format", "text", "Output format: text, json, csv, xlsx")
		build = func(log *logrus.Logger) Command {
			return commands.NewPlanCommand(commands.PlanConfig{
				Scenario:  commands.ScenarioConfig{ScenarioDir: *scenarioDir, Seed: *seed},
				Horizon:   *horizon,
				TargetDOS: *targetDOS,
				OutputDir: *outputDir,
				Format:    *format,
				Verbose:   *verbose,
				Help:      *help,
			}, log)
		}

	case "allocate":
		product := fs.String("product", "", "Product to allocate")
		available := fs.Int64("available", 0, "Units available for release")
		outputDir := fs.String("output", "", "Output directory for results (optional)")
		format := fs.String("format", "text", "Output format: text, json, csv, xlsx")
		build = func(log *logrus.Logger) Command {
			return commands.NewAllocateCommand(commands.AllocateConfig{
				Scenario:  commands.ScenarioConfig{ScenarioDir: *scenarioDir, Seed: *seed},
				Product:   *product,
				Available: *available,
				OutputDir: *outputDir,
				Format:    *format,
				Verbose:   *verbose,
				Help:      *help,
			}, log)
		}

	case "generate":
		outputDir := fs.String("output", "", "Output directory for generated files")
		products := fs.String("products", "", "Comma-separated products")
		accounts := fs.String("accounts", "", "Comma-separated accounts")
		months := fs.Int("months", 12, "Months of sales history")
		anchor := fs.String("anchor", "", "Last month of history (YYYY-MM)")
		build = func(log *logrus.Logger) Command {
			return commands.NewGenerateCommand(commands.GenerateConfig{
				Products:      *products,
				Accounts:      *accounts,
				HistoryMonths: *months,
				AnchorMonth:   *anchor,
				OutputDir:     *outputDir,
				Seed:          *seed,
				Help:          *help,
				Verbose:       *verbose,
			})
		}

	case "serve":
		port := fs.String("port", cfg.Port, "HTTP port")
		warm := fs.Bool("warm", false, "Warm the news cache on startup")
		build = func(log *logrus.Logger) Command {
			cfg.Port = *port
			cfg.DataSeed = *seed
			return commands.NewServeCommand(commands.ServeConfig{
				App:         cfg,
				ScenarioDir: *scenarioDir,
				WarmOnStart: *warm,
				Help:        *help,
			}, log)
		}

	default:
		return nil, nil, fmt.Errorf("unknown command %q (expected: plan, allocate, generate, serve)", name)
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	log := logging.New(*logLevel, cfg.LogFormat, os.Stderr)
	return build(log), log, nil
}

func usage() {
	fmt.Println("intel - demand forecasting, supply planning and allocation")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  intel <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  plan        forecast demand and compute a supply plan")
	fmt.Println("  allocate    split a release quantity across accounts")
	fmt.Println("  generate    write a synthetic scenario as CSV")
	fmt.Println("  serve       run the HTTP API")
	fmt.Println()
	fmt.Println("Run 'intel <command> -help' for command flags.")
}
