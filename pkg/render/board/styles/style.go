// Package styles defines how board primitives are drawn in SVG output.
package styles

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/shapeboard/pkg/render/board"
)

// Style defines the SVG appearance of primitives.
type Style interface {
	// Name identifies the style in options and JSON output.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderPrimitive writes the SVG for a single primitive.
	RenderPrimitive(buf *bytes.Buffer, p board.Primitive)
}

// Style names.
const (
	NameFlat    = "flat"
	NameOutline = "outline"
)

// ByName returns the style registered under name.
func ByName(name string) (Style, bool) {
	switch name {
	case NameFlat, "":
		return Flat{}, true
	case NameOutline:
		return Outline{}, true
	default:
		return nil, false
	}
}

// Names lists the available style names.
func Names() []string { return []string{NameFlat, NameOutline} }

func attr(s string) string { return html.EscapeString(s) }

// writeShape emits the element for p using paint as its presentation
// attributes (fill and stroke).
func writeShape(buf *bytes.Buffer, p board.Primitive, paint string) {
	id := fmt.Sprintf(`data-index="%d" data-kind="%s"`, p.Index, attr(p.Kind.Name()))

	if pts, ok := p.Vertices(); ok {
		fmt.Fprintf(buf, `  <polygon %s points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" %s/>`+"\n",
			id, pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y, paint)
		return
	}
	if p.Rounded {
		fmt.Fprintf(buf, `  <rect %s x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" %s/>`+"\n",
			id, p.Left, p.Top, p.Width, p.Height, p.Width/2, p.Height/2, paint)
		return
	}
	fmt.Fprintf(buf, `  <rect %s x="%.2f" y="%.2f" width="%.2f" height="%.2f" %s/>`+"\n",
		id, p.Left, p.Top, p.Width, p.Height, paint)
}
