package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	TargetDOS       float64
	ForecastHorizon int
	DataSeed        int64

	NewsBaseURL         string
	NewsCacheTTL        time.Duration
	NewsMaxItems        int
	NewsRefreshSchedule string
	RedisURL            string
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables with defaults
func FromEnv() (*Config, error) {
	targetDOS, err := strconv.ParseFloat(getEnv("TARGET_DOS", "45"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TARGET_DOS: %w", err)
	}
	horizon, err := strconv.Atoi(getEnv("FORECAST_HORIZON", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid FORECAST_HORIZON: %w", err)
	}
	seed, err := strconv.ParseInt(getEnv("DATA_SEED", "42"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DATA_SEED: %w", err)
	}
	ttl, err := time.ParseDuration(getEnv("NEWS_CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid NEWS_CACHE_TTL: %w", err)
	}
	maxItems, err := strconv.Atoi(getEnv("NEWS_MAX_ITEMS", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid NEWS_MAX_ITEMS: %w", err)
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		TargetDOS:           targetDOS,
		ForecastHorizon:     horizon,
		DataSeed:            seed,
		NewsBaseURL:         getEnv("NEWS_BASE_URL", "https://news.google.com/rss/search"),
		NewsCacheTTL:        ttl,
		NewsMaxItems:        maxItems,
		NewsRefreshSchedule: getEnv("NEWS_REFRESH_SCHEDULE", "@every 1h"),
		RedisURL:            getEnv("REDIS_URL", ""),
	}

	if cfg.TargetDOS <= 0 {
		return nil, fmt.Errorf("TARGET_DOS must be positive, got %v", cfg.TargetDOS)
	}
	if cfg.ForecastHorizon < 0 {
		return nil, fmt.Errorf("FORECAST_HORIZON cannot be negative, got %d", cfg.ForecastHorizon)
	}
	if cfg.NewsMaxItems <= 0 {
		return nil, fmt.Errorf("NEWS_MAX_ITEMS must be positive, got %d", cfg.NewsMaxItems)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
