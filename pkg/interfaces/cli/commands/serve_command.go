package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lettaearth/intel/pkg/infrastructure/config"
	"github.com/lettaearth/intel/pkg/infrastructure/news"
	"github.com/lettaearth/intel/pkg/infrastructure/reference"
	"github.com/lettaearth/intel/pkg/interfaces/api"
)

// ServeConfig holds configuration for the serve command
type ServeConfig struct {
	App         *config.Config
	ScenarioDir string
	WarmOnStart bool
	Help        bool
}

// ServeCommand runs the HTTP API until the context is cancelled
type ServeCommand struct {
	config ServeConfig
	log    *logrus.Logger
}

// NewServeCommand creates a new serve command
func NewServeCommand(config ServeConfig, log *logrus.Logger) *ServeCommand {
	return &ServeCommand{config: config, log: log}
}

// Execute runs the serve command
func (c *ServeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	cfg := c.config.App

	ws := newWorkspace(c.log)
	if err := ws.load(ScenarioConfig{ScenarioDir: c.config.ScenarioDir, Seed: cfg.DataSeed}); err != nil {
		return err
	}

	cache, closeCache, err := c.newsCache(ctx)
	if err != nil {
		return err
	}
	defer closeCache()

	catalog := reference.NewCatalog()
	client := news.NewClient(cfg.NewsBaseURL, cfg.NewsMaxItems, c.log)
	newsService := news.NewService(client, cache, cfg.NewsCacheTTL, c.log)

	warmer, err := news.NewWarmer(newsService, reference.Presets(), cfg.NewsRefreshSchedule, c.log)
	if err != nil {
		return err
	}
	if c.config.WarmOnStart {
		go warmer.Run(ctx)
	}
	warmer.Start()
	defer warmer.Stop()

	handler := api.NewHandler(ws.orchestrator, ws.datasets, catalog, newsService, api.Defaults{
		Horizon:   cfg.ForecastHorizon,
		TargetDOS: cfg.TargetDOS,
		Seed:      cfg.DataSeed,
	}, c.log)

	if c.log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(handler, c.log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.log.WithField("port", cfg.Port).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	c.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func (c *ServeCommand) newsCache(ctx context.Context) (news.Cache, func(), error) {
	cfg := c.config.App
	if cfg.RedisURL == "" {
		c.log.Info("Using in-memory news cache")
		return news.NewMemoryCache(), func() {}, nil
	}

	redisCache, err := news.NewRedisCache(ctx, cfg.RedisURL, cfg.NewsCacheTTL)
	if err != nil {
		return nil, nil, err
	}
	c.log.Info("Using Redis news cache")
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			c.log.WithError(err).Warn("Failed to close Redis connection")
		}
	}, nil
}

func (c *ServeCommand) showHelp() {
	fmt.Println("intel serve - run the planning and commodity intelligence HTTP API")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  intel serve [-scenario DIR] [-port N] [-warm]")
	fmt.Println()
	fmt.Println("Configuration is read from the environment (and .env):")
	fmt.Println("  PORT, LOG_LEVEL, LOG_FORMAT, TARGET_DOS, FORECAST_HORIZON, DATA_SEED,")
	fmt.Println("  NEWS_BASE_URL, NEWS_CACHE_TTL, NEWS_MAX_ITEMS, NEWS_REFRESH_SCHEDULE, REDIS_URL")
}
