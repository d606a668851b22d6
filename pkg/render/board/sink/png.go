package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/shapeboard/pkg/render/board"
	"github.com/matzehuels/shapeboard/pkg/shape"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// maxPNGSide bounds each image side to keep allocations sane for absurd
// viewports or sizes.
const maxPNGSide = 16384

// RenderPNG rasterizes the container. Primitives with unparseable colors or
// non-positive sizes paint nothing.
func RenderPNG(c board.Container, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("invalid PNG scale %g", r.scale)
	}

	fw, fh := c.Frame()
	w := pixels(fw * r.scale)
	h := pixels(fh * r.scale)

	dc := gg.NewContext(w, h)
	if col, ok := shape.ParseColor(background(c.Style)); ok {
		dc.SetColor(col)
		dc.Clear()
	}
	dc.Scale(r.scale, r.scale)

	for _, p := range c.Children {
		drawPrimitive(dc, p)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPrimitive(dc *gg.Context, p board.Primitive) {
	col, ok := shape.ParseColor(p.Fill())
	if !ok {
		return
	}
	dc.SetColor(col)

	if pts, ok := p.Vertices(); ok {
		dc.MoveTo(pts[0].X, pts[0].Y)
		dc.LineTo(pts[1].X, pts[1].Y)
		dc.LineTo(pts[2].X, pts[2].Y)
		dc.ClosePath()
		dc.Fill()
		return
	}
	if p.Width <= 0 || p.Height <= 0 {
		return
	}
	if p.Rounded {
		dc.DrawEllipse(p.Left+p.Width/2, p.Top+p.Height/2, p.Width/2, p.Height/2)
	} else {
		dc.DrawRectangle(p.Left, p.Top, p.Width, p.Height)
	}
	dc.Fill()
}

func pixels(v float64) int {
	n := int(math.Ceil(v))
	return min(max(n, 1), maxPNGSide)
}
