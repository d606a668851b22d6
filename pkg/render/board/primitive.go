package board

import "github.com/matzehuels/shapeboard/pkg/shape"

// Edge is one side of a box border.
type Edge struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

// Visible reports whether the edge paints anything.
func (e Edge) Visible() bool { return e.Width > 0 && e.Color != shape.Transparent }

// Border holds the sides a primitive may paint. Top is never used by the
// built-in kinds.
type Border struct {
	Left   Edge `json:"left"`
	Right  Edge `json:"right"`
	Bottom Edge `json:"bottom"`
}

// Primitive is a single absolutely positioned box.
type Primitive struct {
	Index      int        `json:"index"` // descriptor index in the input list
	Kind       shape.Kind `json:"kind"`
	Left       float64    `json:"left"`
	Top        float64    `json:"top"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Background string     `json:"background"`
	Rounded    bool       `json:"rounded,omitempty"` // border-radius: 50%
	Border     Border     `json:"border"`
}

// BoundingArea is the content-box area, excluding borders.
func (p Primitive) BoundingArea() float64 { return p.Width * p.Height }

// OuterWidth is the painted width including left and right borders.
func (p Primitive) OuterWidth() float64 {
	return p.Width + p.Border.Left.Width + p.Border.Right.Width
}

// OuterHeight is the painted height including the bottom border.
func (p Primitive) OuterHeight() float64 {
	return p.Height + p.Border.Bottom.Width
}

// VisibleBase is the width of the painted shape along its bottom edge.
func (p Primitive) VisibleBase() float64 {
	if p.Border.Bottom.Visible() {
		return p.OuterWidth()
	}
	return p.Width
}

// VisibleHeight is the height of the painted shape.
func (p Primitive) VisibleHeight() float64 { return p.OuterHeight() }

// Fill returns the color that paints the primitive's visible area: the
// background for boxes and the bottom border for border-built triangles.
func (p Primitive) Fill() string {
	if p.Width == 0 && p.Height == 0 && p.Border.Bottom.Visible() {
		return p.Border.Bottom.Color
	}
	return p.Background
}

// Vertices returns the triangle corners for a border-built primitive, in
// apex, bottom-right, bottom-left order. ok is false for boxes.
func (p Primitive) Vertices() (pts [3]shape.Point, ok bool) {
	if p.Width != 0 || p.Height != 0 || !p.Border.Bottom.Visible() {
		return pts, false
	}
	base := p.OuterWidth()
	h := p.OuterHeight()
	pts[0] = shape.Point{X: p.Left + p.Border.Left.Width, Y: p.Top}
	pts[1] = shape.Point{X: p.Left + base, Y: p.Top + h}
	pts[2] = shape.Point{X: p.Left, Y: p.Top + h}
	return pts, true
}

// RenderShape maps one descriptor at one position to a primitive. It reports
// false for unknown kinds, which are not drawn.
func RenderShape(d shape.Descriptor, at shape.Point) (Primitive, bool) {
	p := Primitive{
		Kind:       d.Kind,
		Left:       at.X,
		Top:        at.Y,
		Width:      d.Size,
		Height:     d.Size,
		Background: d.Color,
	}

	switch d.Kind {
	case shape.Circle:
		p.Rounded = true
	case shape.Square:
	case shape.Triangle:
		p.Width, p.Height = 0, 0
		p.Background = shape.Transparent
		p.Border = Border{
			Left:   Edge{Width: d.Size / 2, Color: shape.Transparent},
			Right:  Edge{Width: d.Size / 2, Color: shape.Transparent},
			Bottom: Edge{Width: d.Size, Color: d.Color},
		}
	default:
		return Primitive{}, false
	}
	return p, true
}
