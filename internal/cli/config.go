package cli

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shapeboard/pkg/cache"
	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/pipeline"
	"github.com/matzehuels/shapeboard/pkg/store"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheFile   = "file"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Config holds defaults read from the TOML config file. Command-line flags
// override it.
//
//	[render]
//	formats = ["svg", "png"]
//	style = "outline"
//	width = 1024.0
//	height = 768.0
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig holds render defaults. A zero width or height leaves the
// scene's viewport, or the built-in default, in effect.
type RenderConfig struct {
	Formats []string `toml:"formats"`
	Style   string   `toml:"style"`
	Engine  string   `toml:"engine"`
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Scale   float64  `toml:"scale"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	MemoryEntries int    `toml:"memory_entries"`
	RedisURL      string `toml:"redis_url"`
	RedisPrefix   string `toml:"redis_prefix"`
	// Namespace scopes every cache key, for shared backends.
	Namespace string `toml:"namespace"`
}

// StoreConfig selects and configures the scene store used by serve.
type StoreConfig struct {
	Backend  string `toml:"backend"`
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// ServerConfig configures serve.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Formats: []string{pipeline.FormatSVG},
			Style:   pipeline.DefaultStyle,
			Engine:  pipeline.EngineNative,
			Scale:   pipeline.DefaultScale,
		},
		Cache: CacheConfig{
			Backend:       CacheFile,
			MemoryEntries: cache.DefaultMemoryEntries,
			RedisURL:      "redis://localhost:6379/0",
			RedisPrefix:   appName + ":",
		},
		Store: StoreConfig{
			Backend:  StoreMemory,
			Database: store.DefaultMongoDatabase,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the config file at path over the defaults. A missing file
// is an error only when required is true. Unknown keys are rejected.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidOptions, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidOptions,
			"unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
