package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RuneStatus_Go/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvUsername, "Zezima")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Port)
	assert.Equal(t, ":80", cfg.Addr())
	assert.Equal(t, "Zezima", cfg.Username)
	assert.Equal(t, "osrsreboxed-db/docs/items-complete.json", cfg.ItemDBPath)
	assert.Equal(t, "https://secure.runescape.com/m=hiscore_oldschool/index_lite.ws", cfg.HiscoresURL)
	assert.Equal(t, 10*time.Second, cfg.HiscoresTimeout)
	assert.Equal(t, 2, cfg.HiscoresRetries)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "runestatus", cfg.ServiceName)
	assert.Equal(t, 16, cfg.ViewCacheSize)
	assert.Equal(t, 30*time.Second, cfg.ViewCacheTTL)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvUsername, "  Lynx Titan ")
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvHiscoresTimeout, "3s")
	t.Setenv(EnvHiscoresRetries, "0")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvViewCacheTTL, "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Lynx Titan", cfg.Username)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 3*time.Second, cfg.HiscoresTimeout)
	assert.Equal(t, 0, cfg.HiscoresRetries)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, time.Minute, cfg.ViewCacheTTL)
}

func TestLoad_UsernameRequired(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		_, err := LoadFrom(map[string]string{})
		assert.ErrorIs(t, err, domain.ErrUsernameRequired)
	})

	t.Run("blank", func(t *testing.T) {
		_, err := LoadFrom(map[string]string{EnvUsername: "   "})
		assert.ErrorIs(t, err, domain.ErrUsernameRequired)
	})
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := map[string]map[string]string{
		"port not a number":    {EnvPort: "eighty"},
		"timeout without unit": {EnvHiscoresTimeout: "100"},
		"cache size float":     {EnvViewCacheSize: "1.5"},
	}

	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			environ[EnvUsername] = "Zezima"
			_, err := LoadFrom(environ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), ErrMsgParseEnv)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := LoadFrom(map[string]string{
		EnvUsername:  "Zezima",
		EnvPort:      "70000",
		EnvLogFormat: "xml",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}
