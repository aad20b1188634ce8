package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
)

// Validate checks that every value is in range. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Port < 1 || c.Port > 65535 {
		add(ErrFmtPort, c.Port)
	}
	if u, err := url.Parse(c.HiscoresURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		add(ErrFmtHiscoresURL, c.HiscoresURL)
	}
	if c.HiscoresTimeout <= 0 {
		add(ErrFmtHiscoresTimeout, c.HiscoresTimeout)
	}
	if c.HiscoresRetries < 0 || c.HiscoresRetries > MaxHiscoresRetries {
		add(ErrFmtHiscoresRetries, MaxHiscoresRetries, c.HiscoresRetries)
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatText {
		add(ErrFmtLogFormat, c.LogFormat)
	}
	if c.ViewCacheSize < 1 || c.ViewCacheSize > MaxViewCacheSize {
		add(ErrFmtViewCacheSize, MaxViewCacheSize, c.ViewCacheSize)
	}
	if c.ViewCacheTTL <= 0 {
		add(ErrFmtViewCacheTTL, c.ViewCacheTTL)
	}
	if c.MaxBodyBytes <= 0 {
		add(ErrFmtMaxBodyBytes, c.MaxBodyBytes)
	}
	if c.ShutdownTimeout <= 0 {
		add(ErrFmtShutdownTimeout, c.ShutdownTimeout)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Warnings returns non-fatal issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if _, err := os.Stat(c.ItemDBPath); err != nil {
		warnings = append(warnings, WarnItemDBMissing)
	}
	if c.HiscoresRetries == 0 {
		warnings = append(warnings, WarnNoRetries)
	}
	if c.ViewCacheTTL < time.Second {
		warnings = append(warnings, WarnShortCacheTTL)
	}
	if c.Environment == "prod" && c.LogFormat == LogFormatText {
		warnings = append(warnings, WarnProdTextFormat)
	}

	return warnings
}
