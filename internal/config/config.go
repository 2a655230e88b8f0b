// Package config loads the deckforge server configuration from a TOML file.
//
// Every field has a working default so `deckforge serve` runs with no config
// file at all: memory-backed stores, a file artifact cache under the user
// cache dir, and the canonical preview width.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/pipeline"
)

// Storage backend names accepted in [storage].backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the full server configuration.
type Config struct {
	Server  Server  `toml:"server"`
	Storage Storage `toml:"storage"`
	Export  Export  `toml:"export"`
	Cache   Cache   `toml:"cache"`
}

// Server configures the HTTP listener.
type Server struct {
	Addr string `toml:"addr"`
}

// Storage selects and configures the template/job backends.
type Storage struct {
	// Backend is one of memory, redis, mongo. Redis serves the job store;
	// mongo serves the template repository. Memory serves both.
	Backend string `toml:"backend"`

	Redis Redis `toml:"redis"`
	Mongo Mongo `toml:"mongo"`
}

// Redis holds connection settings for the redis job store.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Mongo holds connection settings for the mongo template repository.
type Mongo struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Export holds rendering defaults applied when a request names none.
type Export struct {
	PreviewWidth  float64 `toml:"preview_width"`
	DefaultFormat string  `toml:"default_format"`
}

// Cache configures the artifact cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return Config{
		Server:  Server{Addr: ":8080"},
		Storage: Storage{Backend: BackendMemory},
		Export: Export{
			PreviewWidth:  pipeline.DefaultWidth,
			DefaultFormat: pipeline.FormatSVG,
		},
		Cache: Cache{
			Enabled: true,
			Dir:     filepath.Join(cacheDir, "deckforge"),
		},
	}
}

// Load reads a TOML config file over the defaults. An empty path returns the
// defaults unchanged; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the TOML decoder cannot express.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendRedis, BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"unknown storage backend %q (must be memory, redis, or mongo)", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendRedis && c.Storage.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "storage.redis.addr is required for the redis backend")
	}
	if c.Storage.Backend == BackendMongo && c.Storage.Mongo.URI == "" {
		return errors.New(errors.ErrCodeInvalidInput, "storage.mongo.uri is required for the mongo backend")
	}
	if err := pipeline.ValidateFormat(c.Export.DefaultFormat); err != nil {
		return err
	}
	if c.Export.PreviewWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"export.preview_width must be positive, got %g", c.Export.PreviewWidth)
	}
	return nil
}
