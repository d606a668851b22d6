// Package cache stores rendered artifacts keyed by scene content and options.
//
// Only deterministic renders are cached: a board with randomized placement and
// no seed is drawn fresh on every request, so its artifacts are never stored.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [MemoryCache]: bounded in-process LRU
//   - [RedisCache]: shared cache for API deployments
//   - [NullCache]: caching disabled
//
// # Keys
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the scene content together
// with every option that affects the output, so a changed option never serves
// a stale artifact. [ScopedKeyer] adds a prefix for tenant isolation.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss returns ok=false and a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// TTLs for cached entries.
const (
	// TTLArtifact bounds how long a rendered artifact is kept.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLScene bounds how long a stored scene is served from the cache.
	TTLScene = 24 * time.Hour
)
