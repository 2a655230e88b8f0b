package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deckforge.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "svg", cfg.Export.DefaultFormat)
	assert.True(t, cfg.Cache.Enabled)
	assert.NotEmpty(t, cfg.Cache.Dir)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9000"

[storage]
backend = "redis"

[storage.redis]
addr = "localhost:6379"
db = 2

[export]
preview_width = 1920.0
default_format = "png"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, 1920.0, cfg.Export.PreviewWidth)
	assert.Equal(t, "png", cfg.Export.DefaultFormat)
	// Untouched sections keep defaults.
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeConfig(t, `[server` + "\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateBackend(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "dynamo"
	assert.Error(t, cfg.Validate())

	cfg.Storage.Backend = BackendRedis
	cfg.Storage.Redis.Addr = ""
	assert.Error(t, cfg.Validate(), "redis backend without addr")

	cfg.Storage.Backend = BackendMongo
	cfg.Storage.Mongo.URI = ""
	assert.Error(t, cfg.Validate(), "mongo backend without uri")
}

func TestValidateExportDefaults(t *testing.T) {
	cfg := Default()
	cfg.Export.DefaultFormat = "pdf"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Export.PreviewWidth = -1
	assert.Error(t, cfg.Validate())
}
