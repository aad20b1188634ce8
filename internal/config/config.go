package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/RuneStatus_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port     int    `env:"PORT" envDefault:"80"`
	Username string `env:"OSRS_USERNAME"`

	ItemDBPath string `env:"ITEM_DB_PATH" envDefault:"osrsreboxed-db/docs/items-complete.json"`

	HiscoresURL     string        `env:"HISCORES_URL" envDefault:"https://secure.runescape.com/m=hiscore_oldschool/index_lite.ws"`
	HiscoresTimeout time.Duration `env:"HISCORES_TIMEOUT" envDefault:"10s"`
	HiscoresRetries int           `env:"HISCORES_RETRIES" envDefault:"2"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"runestatus"`
	Version     string `env:"VERSION" envDefault:"dev"`

	ViewCacheSize int           `env:"VIEW_CACHE_SIZE" envDefault:"16"`
	ViewCacheTTL  time.Duration `env:"VIEW_CACHE_TTL" envDefault:"30s"`

	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	return parse(env.Options{})
}

// LoadFrom parses configuration from environ instead of the process
// environment. No .env file is read.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	cfg.Username = strings.TrimSpace(cfg.Username)
	if cfg.Username == "" {
		return nil, fmt.Errorf("%s: %w", EnvUsername, domain.ErrUsernameRequired)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
