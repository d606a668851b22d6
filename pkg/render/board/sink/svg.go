package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/shapeboard/pkg/render/board"
	"github.com/matzehuels/shapeboard/pkg/render/board/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// RenderSVG renders the container as a standalone SVG document sized to the
// container frame.
func RenderSVG(c board.Container, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Flat{}}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := c.Frame()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)

	r.style.RenderDefs(&buf)
	if bg := background(c.Style); bg != "" {
		fmt.Fprintf(&buf, `  <rect class="container" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, escape(bg))
	}
	fmt.Fprintf(&buf, `  <g class="board" data-style="%s">`+"\n", escape(c.Style.CSS()))
	for _, p := range c.Children {
		r.style.RenderPrimitive(&buf, p)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// background extracts the container's background color, if any.
func background(s board.Style) string {
	if v, ok := s["background-color"]; ok {
		return v
	}
	return s["background"]
}
