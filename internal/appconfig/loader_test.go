package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutConfigPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultRedisAddr, cfg.Redis.Addr)
	assert.Equal(t, DefaultSeed, cfg.Run.Seed)
}

func TestLoadReadsValuesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dockvedic.yaml")
	contents := "log:\n  level: debug\n  format: console\nrun:\n  seed: 99\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, int64(99), cfg.Run.Seed)
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv("DOCKVEDIC_LOG_LEVEL", "warn")
	t.Setenv("DOCKVEDIC_REDIS_ADDR", "cache.internal:6379")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr)
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSurfacesValidationFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dockvedic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: chatty\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
