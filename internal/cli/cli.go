// Package cli implements the shapeboard command-line interface.
//
// Commands:
//   - render: draw a scene to SVG, HTML, PNG, PDF, JSON or DOT
//   - resolve: print the placement set of a scene
//   - preview: interactive terminal preview with re-randomization
//   - serve: run the HTTP API
//   - cache: inspect and clear the artifact cache
//
// All commands accept --verbose (-v) for debug logging and --config to read
// defaults from a TOML file.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeboard/pkg/buildinfo"
	"github.com/matzehuels/shapeboard/pkg/cache"
	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "shapeboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
}

// New creates a CLI with default configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Shapeboard draws boards of circles, squares and triangles",
		Long: `Shapeboard renders scenes of simple colored shapes. Shapes sit at fixed
positions or are scattered at random across the viewport; boards are written
as SVG, HTML, PNG, PDF, JSON or Graphviz DOT, or served over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if ns := c.Config.Cache.Namespace; ns != "" {
		keyer = cache.NewScopedKeyer(nil, ns)
	}
	return pipeline.NewRunner(ch, keyer, c.Logger), nil
}

// newCache opens the configured cache backend. A file cache that cannot be
// created degrades to no caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg := c.Config.Cache
	switch cfg.Backend {
	case CacheNone:
		return cache.NewNullCache(), nil
	case CacheFile, "":
		dir := cfg.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, caching disabled", "dir", dir, "error", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	case CacheMemory:
		mc, err := cache.NewMemoryCache(cfg.MemoryEntries)
		if err != nil {
			return nil, err
		}
		return mc, nil
	case CacheRedis:
		c.Logger.Debug("connecting to redis", "url", cfg.RedisURL)
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{URL: cfg.RedisURL, Prefix: cfg.RedisPrefix})
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidOptions,
			"unknown cache backend %q (must be one of: none, file, memory, redis)", cfg.Backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/shapeboard/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the default config file (~/.config/shapeboard/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
