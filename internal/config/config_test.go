package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Adventure: AdventureConfig{Path: "data/adventure.yaml"},
		Store:     StoreConfig{Backend: "file"},
		Logging:   LoggingConfig{Level: "info", Format: "console", Output: "adventure.log"},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/adventure.yaml", cfg.Adventure.Path)
	assert.Equal(t, 0, cfg.Adventure.StartLocation)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "adventure:", cfg.Store.RedisPrefix)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "adventure.log", cfg.Logging.Output)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
adventure:
  path: worlds/cellar.yaml
  start_location: 2
store:
  backend: redis
  redis_addr: 127.0.0.1:6380
logging:
  level: debug
  format: json
  output: stderr
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "worlds/cellar.yaml", cfg.Adventure.Path)
	assert.Equal(t, 2, cfg.Adventure.StartLocation)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "127.0.0.1:6380", cfg.Store.RedisAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ADVENTURE_ADVENTURE_PATH", "env.yaml")
	t.Setenv("ADVENTURE_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", cfg.Adventure.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: postgres\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.backend")
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Adventure.Path = ""
	cfg.Adventure.StartLocation = -1
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adventure.path")
	assert.Contains(t, err.Error(), "adventure.start_location")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidateRedisNeedsAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Backend = "redis"
	assert.Error(t, cfg.Validate())

	cfg.Store.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}
