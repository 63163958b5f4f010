package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "Garment Geek", cfg.Server.AppName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "garments", cfg.Storage.Bucket)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "./inventory.txt", cfg.Catalog.Path)
	assert.Equal(t, 300, cfg.Catalog.CacheTTLSeconds)
	assert.False(t, cfg.Catalog.SkipInvalid)
	assert.Equal(t, "orders/", cfg.Order.Prefix)
	assert.Equal(t, 1800, cfg.Order.SessionTTLSeconds)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "storage")
	t.Setenv("CATALOG_SKIP_INVALID", "true")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "storage", cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.SkipInvalid)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ORDER_PREFIX=confirmations/\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ORDER_PREFIX") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "confirmations/", cfg.Order.Prefix)
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Catalog.Source = "ftp"
	assert.Error(t, cfg.Validate())

	cfg.Catalog.Source = "file"
	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = ""
	assert.NoError(t, cfg.Validate())

	cfg.Catalog.CacheTTLSeconds = -1
	assert.Error(t, cfg.Validate())
}
