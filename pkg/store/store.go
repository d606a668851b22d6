// Package store persists scenes for the HTTP API.
//
// Records are keyed by random UUIDs. [MemoryStore] keeps records in process
// and is the default; [MongoStore] persists them in a MongoDB collection.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/scene"
)

// DefaultListLimit bounds List when no limit is given.
const DefaultListLimit = 100

// Record is a stored scene.
type Record struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Scene     scene.Scene `json:"scene"`
	CreatedAt time.Time   `json:"created_at"`
}

// Summary is the listing form of a record.
type Summary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ShapeCount int       `json:"shape_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Summary returns the listing form of r.
func (r Record) Summary() Summary {
	return Summary{ID: r.ID, Name: r.Name, ShapeCount: len(r.Scene.Shapes), CreatedAt: r.CreatedAt}
}

// Store saves and retrieves scenes. Implementations must be safe for
// concurrent use.
type Store interface {
	// Save stores sc under a new ID.
	Save(ctx context.Context, sc scene.Scene) (Record, error)
	// Get returns the record with id, or a SCENE_NOT_FOUND error.
	Get(ctx context.Context, id string) (Record, error)
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]Summary, error)
	// Delete removes the record with id, or returns a SCENE_NOT_FOUND error.
	Delete(ctx context.Context, id string) error
	// Close releases backend resources.
	Close(ctx context.Context) error
}

// newRecord validates sc and assigns it an ID and creation time. The name
// defaults to the scene name, then to the ID.
func newRecord(sc scene.Scene, now time.Time) (Record, error) {
	if err := errors.ValidateSceneName(sc.Name); err != nil {
		return Record{}, err
	}
	id := uuid.NewString()
	name := sc.Name
	if name == "" {
		name = id
	}
	return Record{ID: id, Name: name, Scene: sc, CreatedAt: now.UTC()}, nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeSceneNotFound, "scene %s not found", id)
}

func listLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}
