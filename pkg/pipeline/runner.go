package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapeboard/pkg/cache"
	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/observability"
	"github.com/matzehuels/shapeboard/pkg/render/board"
	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different scenes.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs resolve → build → render for sc.
func (r *Runner) Execute(ctx context.Context, sc scene.Scene, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := errors.ValidateShapeCount(len(sc.Shapes), opts.MaxShapes); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Randomized: opts.RandomizeFor(sc),
		Seed:       opts.SeedFor(sc),
	}
	result.Stats.ShapeCount = len(sc.Shapes)

	// Stage 1: Resolve
	resolveStart := time.Now()
	tracker := r.Resolve(ctx, sc, opts)
	result.Placements = tracker.Set()
	result.Stats.Recomputes = tracker.Recomputes()
	result.Stats.ResolveTime = time.Since(resolveStart)

	// Stage 2: Build
	vp := opts.ViewportFor(sc)
	result.Container = board.Build(sc.Shapes, tracker, sc.Style(), vp)
	result.Stats.Drawn = len(result.Container.Children)
	result.Stats.Skipped = len(result.Container.Skipped)
	for _, s := range result.Container.Skipped {
		opts.Logger.Warn("shape not drawn", "index", s.Index, "reason", s.Reason)
	}

	opts.Logger.Info("resolved placements",
		"shapes", result.Stats.ShapeCount,
		"randomize", result.Randomized,
		"viewport", vp,
		"duration", result.Stats.ResolveTime)

	// Stage 3: Render
	renderStart := time.Now()
	pl := Placement{Set: result.Placements, Randomized: result.Randomized, Seed: result.Seed}
	artifacts, hit, hash, err := r.renderWithCache(ctx, sc, result.Container, pl, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheHit = hit
	result.SceneHash = hash
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Resolve runs the placement stage for sc and returns the synced tracker.
// A seed, when present, makes the random draw reproducible.
func (r *Runner) Resolve(ctx context.Context, sc scene.Scene, opts Options) *placement.Tracker {
	randomize := opts.RandomizeFor(sc)
	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, len(sc.Shapes), randomize)
	start := time.Now()

	var rng placement.Rand
	if seed := opts.SeedFor(sc); seed != nil {
		rng = placement.NewRand(*seed)
	}
	tracker := placement.NewTracker(opts.ViewportFor(sc), rng)
	tracker.SetShapes(sc.Shapes)
	tracker.SetRandomize(randomize)
	tracker.Sync()

	hooks.OnResolveComplete(ctx, len(tracker.Set()), time.Since(start))
	return tracker
}

// renderWithCache serves artifacts from the cache when the placement is
// deterministic and renders (and stores) them otherwise.
func (r *Runner) renderWithCache(ctx context.Context, sc scene.Scene, c board.Container, pl Placement, opts Options) (map[string][]byte, bool, string, error) {
	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()

	hash, err := SceneHash(sc)
	if err != nil {
		return nil, false, "", err
	}
	cacheable := !pl.Randomized || pl.Seed != nil

	if cacheable && !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format, sc))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				cacheHooks.OnCacheMiss(ctx, "artifact")
				break
			}
			cacheHooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, hash, nil
		}
	}

	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts, err := Render(ctx, c, pl, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, hash, err
	}

	if cacheable {
		for format, data := range artifacts {
			key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format, sc))
			if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
				opts.Logger.Debug("cache write failed", "format", format, "error", err)
				continue
			}
			cacheHooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return artifacts, false, hash, nil
}

// SceneHash returns the content hash of sc's JSON encoding.
func SceneHash(sc scene.Scene) (string, error) {
	data, err := json.Marshal(sc)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize scene for cache key")
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
