package placement

import "github.com/matzehuels/shapeboard/pkg/shape"

// Tracker holds placements as state derived from a shape list and a randomize
// flag. It is owned by a single render loop and is not safe for concurrent use.
type Tracker struct {
	viewport  Viewport
	rng       Rand
	shapes    []shape.Descriptor
	randomize bool

	dirty      bool
	set        Set // nil until resolved
	recomputes int
}

// NewTracker creates an unresolved tracker with randomization enabled.
func NewTracker(vp Viewport, rng Rand) *Tracker {
	if rng == nil {
		rng = Entropy()
	}
	return &Tracker{viewport: vp, rng: rng, randomize: true, dirty: true}
}

// SetShapes replaces the shape list. A new list always invalidates the
// placements, even if its contents equal the previous one.
func (t *Tracker) SetShapes(shapes []shape.Descriptor) {
	t.shapes = shapes
	t.dirty = true
}

// SetRandomize updates the randomize flag, invalidating placements only when
// the flag actually changes.
func (t *Tracker) SetRandomize(on bool) {
	if t.randomize == on {
		return
	}
	t.randomize = on
	t.dirty = true
}

// SetViewport updates the viewport used by the next recomputation. It does not
// invalidate current placements.
func (t *Tracker) SetViewport(vp Viewport) { t.viewport = vp }

// Sync runs pending recomputation. With randomization enabled the whole set is
// redrawn; otherwise the random set is discarded. It reports whether a
// recomputation happened.
func (t *Tracker) Sync() bool {
	if !t.dirty {
		return false
	}
	t.dirty = false
	if !t.randomize {
		t.set = nil
		return false
	}
	t.set = Resolve(t.shapes, true, t.viewport, t.rng)
	t.recomputes++
	return true
}

// Invalidate forces the next Sync to recompute.
func (t *Tracker) Invalidate() { t.dirty = true }

// Placement returns the point for shape i. For randomized boards it reports
// false until the set is resolved or when i is outside the resolved set.
func (t *Tracker) Placement(i int) (shape.Point, bool) {
	if i < 0 || i >= len(t.shapes) {
		return shape.Point{}, false
	}
	if !t.randomize {
		return t.shapes[i].FixedPosition(), true
	}
	if i >= len(t.set) {
		return shape.Point{}, false
	}
	return t.set[i], true
}

// Shapes returns the tracked shape list.
func (t *Tracker) Shapes() []shape.Descriptor { return t.shapes }

// Randomize returns the tracked randomize flag.
func (t *Tracker) Randomize() bool { return t.randomize }

// Viewport returns the current viewport.
func (t *Tracker) Viewport() Viewport { return t.viewport }

// Resolved reports whether placements are available for every shape.
func (t *Tracker) Resolved() bool {
	return !t.randomize || (t.set != nil && len(t.set) == len(t.shapes))
}

// Set returns the current placements: the random set when randomizing, or the
// fixed positions otherwise. It returns nil for an unresolved randomized board.
func (t *Tracker) Set() Set {
	if !t.randomize {
		return Resolve(t.shapes, false, t.viewport, nil)
	}
	return t.set
}

// Recomputes returns how many random sets have been drawn.
func (t *Tracker) Recomputes() int { return t.recomputes }
