package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Error Missing required backend URL", func(t *testing.T) {
		_, err := LoadConfig("nonexistent.env")
		assert.Error(t, err)
	})

	t.Run("Success Defaults applied", func(t *testing.T) {
		t.Setenv("BACKEND_BASE_URL", "http://backend:9000")

		cfg, err := LoadConfig("nonexistent.env")

		require.NoError(t, err)
		assert.Equal(t, "8085", cfg.Server.Port)
		assert.Equal(t, "http://backend:9000", cfg.Backend.BaseURL)
		assert.Equal(t, "/api/health/stream", cfg.Backend.StreamPath)
		assert.Equal(t, 5*time.Minute, cfg.Sync.CacheTTL)
		assert.Equal(t, "3", cfg.Sync.CacheVersion)
		assert.Equal(t, 30*time.Second, cfg.Sync.PollInterval)
		assert.Equal(t, 10*time.Second, cfg.Sync.ManualRefreshInterval)
		assert.Equal(t, 3, cfg.Sync.DegradedThreshold)
		assert.Equal(t, 5, cfg.Sync.OfflineThreshold)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.False(t, cfg.Mail.AlertsEnabled)
	})

	t.Run("Success Environment overrides defaults", func(t *testing.T) {
		t.Setenv("BACKEND_BASE_URL", "http://backend:9000")
		t.Setenv("SYNC_CACHE_TTL", "2m")
		t.Setenv("SYNC_OFFLINE_THRESHOLD", "7")

		cfg, err := LoadConfig("nonexistent.env")

		require.NoError(t, err)
		assert.Equal(t, 2*time.Minute, cfg.Sync.CacheTTL)
		assert.Equal(t, 7, cfg.Sync.OfflineThreshold)
	})
}
