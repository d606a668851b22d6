package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Servers sharing one Redis instance use distinct prefixes so their
// artifacts never collide.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "shapeboard:prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}

// SceneKey generates a prefixed key for a stored scene.
func (k *ScopedKeyer) SceneKey(id string) string {
	return k.prefix + k.inner.SceneKey(id)
}
