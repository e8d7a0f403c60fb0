package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picksplaydoit-ai/superappprofe/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "./data/reports", cfg.Export.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRADEBOOK_STORAGE_DRIVER", "redis")
	t.Setenv("GRADEBOOK_STORAGE_REDIS_ADDR", "cache:6379")
	t.Setenv("GRADEBOOK_STORAGE_REDIS_DB", "3")
	t.Setenv("GRADEBOOK_LOG_FORMAT", "json")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, 3, cfg.Storage.RedisDB)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradebook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  driver: postgres
  dsn: postgres://profe@localhost/gradebook
  key_prefix: "edupro:"
export:
  dir: /tmp/reports
log:
  level: debug
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "postgres://profe@localhost/gradebook", cfg.Storage.DSN)
	assert.Equal(t, "edupro:", cfg.Storage.KeyPrefix)
	assert.Equal(t, "/tmp/reports", cfg.Export.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	t.Setenv("GRADEBOOK_STORAGE_DRIVER", "mongo")
	_, err = config.Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Config{
		Storage: config.StorageConfig{Driver: "redis"},
		Log:     config.LogConfig{Level: "info", Format: "json"},
	}
	assert.Error(t, cfg.Validate(), "redis needs an address")

	cfg.Storage.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())

	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())
}
