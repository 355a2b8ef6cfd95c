package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "TARGET_DOS", "FORECAST_HORIZON", "DATA_SEED",
	"NEWS_BASE_URL", "NEWS_CACHE_TTL", "NEWS_MAX_ITEMS", "NEWS_REFRESH_SCHEDULE", "REDIS_URL",
}

// clearEnv unsets the config variables for the duration of a test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 45.0, cfg.TargetDOS)
	assert.Equal(t, 3, cfg.ForecastHorizon)
	assert.Equal(t, time.Hour, cfg.NewsCacheTTL)
	assert.Equal(t, 12, cfg.NewsMaxItems)
	assert.Empty(t, cfg.RedisURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("TARGET_DOS", "60.5")
	t.Setenv("NEWS_CACHE_TTL", "15m")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 60.5, cfg.TargetDOS)
	assert.Equal(t, 15*time.Minute, cfg.NewsCacheTTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestFromEnv_Invalid(t *testing.T) {
	testCases := []struct {
		key   string
		value string
	}{
		{"TARGET_DOS", "abc"},
		{"TARGET_DOS", "0"},
		{"FORECAST_HORIZON", "-1"},
		{"DATA_SEED", "x"},
		{"NEWS_CACHE_TTL", "soon"},
		{"NEWS_MAX_ITEMS", "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
