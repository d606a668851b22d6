package cache

import "fmt"

// ArtifactKeyOpts lists every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Style     string  `json:"style"`
	Engine    string  `json:"engine"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Scale     float64 `json:"scale"`
	Randomize bool    `json:"randomize"`
	Seed      uint64  `json:"seed"`
	Title     string  `json:"title,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey keys one rendered format of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
	// SceneKey keys a stored scene record by ID.
	SceneKey(id string) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey hashes the scene hash with the options.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

// SceneKey returns "scene:<id>".
func (DefaultKeyer) SceneKey(id string) string {
	return fmt.Sprintf("scene:%s", id)
}
