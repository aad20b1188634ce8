package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := LoadFrom(map[string]string{EnvUsername: "Zezima"})
	require.NoError(t, err)
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Port = 0 }, "PORT"},
		{"relative hiscores url", func(c *Config) { c.HiscoresURL = "/index_lite.ws" }, "HISCORES_URL"},
		{"ftp hiscores url", func(c *Config) { c.HiscoresURL = "ftp://example.com/x" }, "HISCORES_URL"},
		{"zero timeout", func(c *Config) { c.HiscoresTimeout = 0 }, "HISCORES_TIMEOUT"},
		{"negative retries", func(c *Config) { c.HiscoresRetries = -1 }, "HISCORES_RETRIES"},
		{"too many retries", func(c *Config) { c.HiscoresRetries = MaxHiscoresRetries + 1 }, "HISCORES_RETRIES"},
		{"cache size zero", func(c *Config) { c.ViewCacheSize = 0 }, "VIEW_CACHE_SIZE"},
		{"cache ttl zero", func(c *Config) { c.ViewCacheTTL = 0 }, "VIEW_CACHE_TTL"},
		{"body limit zero", func(c *Config) { c.MaxBodyBytes = 0 }, "MAX_BODY_BYTES"},
		{"shutdown zero", func(c *Config) { c.ShutdownTimeout = 0 }, "SHUTDOWN_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWarnings(t *testing.T) {
	t.Run("missing item db", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.ItemDBPath = filepath.Join(t.TempDir(), "missing.json")
		assert.Contains(t, cfg.Warnings(), WarnItemDBMissing)
	})

	t.Run("clean config", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.ItemDBPath = filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, os.WriteFile(cfg.ItemDBPath, []byte("{}"), 0644))
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("risky settings", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.HiscoresRetries = 0
		cfg.ViewCacheTTL = 100 * time.Millisecond
		cfg.Environment = "prod"

		warnings := cfg.Warnings()
		assert.Contains(t, warnings, WarnNoRetries)
		assert.Contains(t, warnings, WarnShortCacheTTL)
		assert.Contains(t, warnings, WarnProdTextFormat)
	})
}
