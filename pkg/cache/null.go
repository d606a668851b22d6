package cache

import (
	"context"
	"time"
)

// NullCache never stores anything. It backs the "none" cache backend and
// --no-cache, and is what a [pipeline.Runner] gets when given a nil cache.
//
// [pipeline.Runner]: github.com/matzehuels/shapeboard/pkg/pipeline#Runner
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
