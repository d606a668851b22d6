package board

import (
	"math"

	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/shape"
)

// Container is the root of a rendered board.
type Container struct {
	Style    Style              `json:"style"`
	Viewport placement.Viewport `json:"viewport"`
	Children []Primitive        `json:"children"`
	Skipped  []Skip             `json:"skipped,omitempty"`
}

// SkipReason says why a descriptor produced no primitive.
type SkipReason string

const (
	SkipUnknownKind SkipReason = "unknown_kind"
	SkipUnresolved  SkipReason = "unresolved"
)

// Skip records a descriptor that was not drawn.
type Skip struct {
	Index  int        `json:"index"`
	Reason SkipReason `json:"reason"`
}

// Placer supplies the point for each descriptor index. *placement.Tracker
// satisfies it.
type Placer interface {
	Placement(i int) (shape.Point, bool)
}

// SetPlacer adapts a resolved set to [Placer].
type SetPlacer placement.Set

// Placement returns set[i] when present.
func (s SetPlacer) Placement(i int) (shape.Point, bool) {
	if i < 0 || i >= len(s) {
		return shape.Point{}, false
	}
	return s[i], true
}

// Build renders every descriptor at its placement and wraps the primitives in
// a container styled with containerStyle over the base style. Descriptors of
// unknown kind, and descriptors whose placement is not yet resolved, are left
// out and recorded in Skipped.
func Build(shapes []shape.Descriptor, at Placer, containerStyle Style, vp placement.Viewport) Container {
	c := Container{
		Style:    BaseContainerStyle().Merge(containerStyle),
		Viewport: vp,
		Children: make([]Primitive, 0, len(shapes)),
	}
	for i, d := range shapes {
		pos, ok := at.Placement(i)
		if !ok {
			c.Skipped = append(c.Skipped, Skip{Index: i, Reason: SkipUnresolved})
			continue
		}
		p, ok := RenderShape(d, pos)
		if !ok {
			c.Skipped = append(c.Skipped, Skip{Index: i, Reason: SkipUnknownKind})
			continue
		}
		p.Index = i
		c.Children = append(c.Children, p)
	}
	return c
}

// Extent returns the smallest rectangle anchored at the origin that holds
// every child, including borders. Negative coordinates are clamped out.
func (c Container) Extent() (w, h float64) {
	for _, p := range c.Children {
		w = math.Max(w, p.Left+p.OuterWidth())
		h = math.Max(h, p.Top+p.OuterHeight())
	}
	return w, h
}

// Frame returns the drawing area: the viewport when it has area, otherwise
// the children's extent.
func (c Container) Frame() (w, h float64) {
	if !c.Viewport.Empty() {
		return c.Viewport.Width, c.Viewport.Height
	}
	return c.Extent()
}
