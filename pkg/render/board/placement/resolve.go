package placement

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/shapeboard/pkg/shape"
)

// Viewport is the size of the ambient display area read at randomization time.
type Viewport struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

func (v Viewport) String() string {
	return fmt.Sprintf("%gx%g", v.Width, v.Height)
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// Set is the ordered sequence of resolved points, one per descriptor.
type Set []shape.Point

// Rand is the random source used for scattering. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG source. The same seed always scatters the same
// shape list to the same points.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Entropy returns a source seeded from the runtime's random generator.
func Entropy() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Resolve computes one point per shape.
//
// When randomize is true, each point is drawn uniformly from the viewport.
// A nil rng uses [Entropy]. When randomize is false, the descriptor's position
// is used, or the origin if it has none. Resolve never fails; malformed
// descriptors are passed through.
func Resolve(shapes []shape.Descriptor, randomize bool, vp Viewport, rng Rand) Set {
	set := make(Set, len(shapes))
	if !randomize {
		for i, d := range shapes {
			set[i] = d.FixedPosition()
		}
		return set
	}
	if rng == nil {
		rng = Entropy()
	}
	for i := range shapes {
		set[i] = shape.Point{
			X: randomIn(rng, vp.Width),
			Y: randomIn(rng, vp.Height),
		}
	}
	return set
}

// randomIn samples [0, limit). A non-positive limit collapses to 0.
func randomIn(rng Rand, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return rng.Float64() * limit
}
