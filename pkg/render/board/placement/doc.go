// Package placement resolves on-screen coordinates for shape descriptors.
//
// # Resolution
//
// [Resolve] is a pure function from (shapes, randomize, viewport, rng) to a
// [Set] with one point per descriptor. With randomization enabled every point
// is drawn independently and uniformly from [0, width) x [0, height); without
// it each descriptor's own position is used, defaulting to the origin.
//
// # Tracking
//
// [Tracker] models placements as derived state. It remembers the inputs the
// current set was computed from and recomputes the whole set, never
// incrementally, when the shape list is replaced or the randomize flag
// changes. Before the first [Tracker.Sync] a randomized board has no
// placements and nothing is drawn for it.
//
//	tr := placement.NewTracker(viewport, placement.Entropy())
//	tr.SetShapes(shapes)
//	tr.Sync()
//	p, ok := tr.Placement(0)
package placement
