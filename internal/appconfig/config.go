// Package appconfig defines the CLI-level configuration the core docking
// packages never see: logging setup, the run's PRNG seed, cache and
// metrics endpoints, and search-stage defaults the `dock run` command
// falls back to when a protocol file doesn't override them.
package appconfig

import (
	"fmt"
	"time"
)

// LogConfig mirrors logging.Config's mapstructure tags so a YAML/env value
// can be unmarshalled straight into it without appconfig importing
// logging's zap-backed implementation.
type LogConfig struct {
	Level       string   `mapstructure:"level"`
	Format      string   `mapstructure:"format"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// RedisConfig holds the optional pose-cache connection parameters.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
	Enabled  bool          `mapstructure:"enabled"`
}

// MetricsConfig holds the Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
	Path    string `mapstructure:"path"`
}

// RunConfig holds the defaults a `dock run` invocation applies when a
// protocol file doesn't set its own value, and the run-identity fields
// logged alongside every score.
type RunConfig struct {
	Seed             int64  `mapstructure:"seed"`
	OutputSDPath     string `mapstructure:"output_sd_path"`
	RestartPath      string `mapstructure:"restart_path"`
	ProtocolSections string `mapstructure:"protocol_sections"`
	SFSections       string `mapstructure:"sf_sections"`
}

// Config is the root CLI configuration, bound from a YAML file plus
// DOCKVEDIC_-prefixed environment variables and cobra flag overrides.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Run     RunConfig     `mapstructure:"run"`
}

// Validate checks the fully-populated Config for values the rest of the
// CLI cannot safely run with.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("appconfig: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("appconfig: log.format %q is invalid; expected json|console", c.Log.Format)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("appconfig: redis.addr is required when redis.enabled is true")
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("appconfig: metrics.addr is required when metrics.enabled is true")
	}
	return nil
}
