package appconfig

import "time"

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisTTL  = time.Hour

	DefaultMetricsAddr = ":9090"
	DefaultMetricsPath = "/metrics"

	DefaultSeed             = int64(42)
	DefaultProtocolSections = ""
	DefaultSFSections       = ""
)

// ApplyDefaults fills every zero-value field in cfg with the package
// default. Fields already set (non-zero) by a config file, environment
// variable, or flag are left unchanged.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = DefaultRedisTTL
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = DefaultMetricsAddr
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Run.Seed == 0 {
		cfg.Run.Seed = DefaultSeed
	}
}
