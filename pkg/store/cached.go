package store

import (
	"context"
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapeboard/pkg/cache"
	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/observability"
	"github.com/matzehuels/shapeboard/pkg/scene"
)

// CachedStore reads records through a cache in front of another store.
// Save and Delete go to the inner store; Delete also evicts the cached
// record. Cache failures are logged and never fail an operation.
type CachedStore struct {
	inner  Store
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
}

// NewCachedStore wraps inner. A nil keyer uses [cache.DefaultKeyer]; a nil
// logger discards cache failures.
func NewCachedStore(inner Store, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *CachedStore {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &CachedStore{inner: inner, cache: c, keyer: keyer, logger: logger}
}

func (s *CachedStore) Save(ctx context.Context, sc scene.Scene) (Record, error) {
	rec, err := s.inner.Save(ctx, sc)
	if err != nil {
		return Record{}, err
	}
	s.put(ctx, rec)
	return rec, nil
}

func (s *CachedStore) Get(ctx context.Context, id string) (Record, error) {
	if err := errors.ValidateSceneID(id); err != nil {
		return Record{}, err
	}
	key := s.keyer.SceneKey(id)
	hooks := observability.Cache()

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Debug("scene cache read failed", "id", id, "error", err)
	} else if ok {
		var rec Record
		if err := json.Unmarshal(data, &rec); err == nil {
			hooks.OnCacheHit(ctx, "scene")
			return rec, nil
		}
		s.logger.Debug("dropping unreadable cached scene", "id", id)
		_ = s.cache.Delete(ctx, key)
	}
	hooks.OnCacheMiss(ctx, "scene")

	rec, err := s.inner.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	s.put(ctx, rec)
	return rec, nil
}

// List always reads the inner store.
func (s *CachedStore) List(ctx context.Context, limit int) ([]Summary, error) {
	return s.inner.List(ctx, limit)
}

func (s *CachedStore) Delete(ctx context.Context, id string) error {
	if err := s.inner.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, s.keyer.SceneKey(id)); err != nil {
		s.logger.Debug("scene cache evict failed", "id", id, "error", err)
	}
	return nil
}

// Close closes the inner store. The cache belongs to the caller.
func (s *CachedStore) Close(ctx context.Context) error {
	return s.inner.Close(ctx)
}

func (s *CachedStore) put(ctx context.Context, rec Record) {
	data, err := json.Marshal(rec)
	if err != nil {
		s.logger.Debug("scene not cacheable", "id", rec.ID, "error", err)
		return
	}
	if err := s.cache.Set(ctx, s.keyer.SceneKey(rec.ID), data, cache.TTLScene); err != nil {
		s.logger.Debug("scene cache write failed", "id", rec.ID, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "scene", len(data))
}

var _ Store = (*CachedStore)(nil)
