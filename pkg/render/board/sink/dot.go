package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/shapeboard/pkg/render/board"
)

// pointsPerInch converts board pixels to Graphviz node sizes, which are inches.
const pointsPerInch = 72.0

// ToDOT converts a container to a Graphviz graph with one pinned node per
// primitive. Positions are node centers with the y axis flipped, since
// Graphviz places the origin at the bottom-left.
func ToDOT(c board.Container) string {
	w, h := c.Frame()

	var buf bytes.Buffer
	buf.WriteString("graph board {\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  outputorder=nodesfirst;\n")
	buf.WriteString("  splines=false;\n")
	if bg := background(c.Style); bg != "" {
		fmt.Fprintf(&buf, "  bgcolor=%s;\n", dotQuote(bg))
	} else {
		buf.WriteString("  bgcolor=\"transparent\";\n")
	}
	buf.WriteString("  node [label=\"\", style=filled, penwidth=0, fixedsize=true];\n")
	// Invisible corner anchors keep the drawing the size of the frame.
	buf.WriteString("  _origin [pos=\"0,0!\", width=0, height=0, style=invis];\n")
	fmt.Fprintf(&buf, "  _corner [pos=\"%.2f,%.2f!\", width=0, height=0, style=invis];\n", w, h)

	for _, p := range c.Children {
		ow, oh := p.OuterWidth(), p.OuterHeight()
		cx := p.Left + ow/2
		cy := h - (p.Top + oh/2)
		fmt.Fprintf(&buf, "  n%d [shape=%s, pos=\"%.2f,%.2f!\", width=%.4f, height=%.4f, fillcolor=%s];\n",
			p.Index, dotShape(p), cx, cy, ow/pointsPerInch, oh/pointsPerInch, dotQuote(p.Fill()))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotQuote wraps s in a DOT quoted string. DOT only escapes the double
// quote; a trailing backslash is doubled so it cannot swallow the closing
// quote, and newlines become spaces.
func dotQuote(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, `"`, `\"`)
	if strings.HasSuffix(s, `\`) {
		s += `\`
	}
	return `"` + s + `"`
}

func dotShape(p board.Primitive) string {
	if _, ok := p.Vertices(); ok {
		return "triangle"
	}
	if p.Rounded {
		return "ellipse"
	}
	return "box"
}

// RenderDOT lays out the container's DOT graph with neato and renders it as
// "svg" or "png".
func RenderDOT(ctx context.Context, c board.Container, format string) ([]byte, error) {
	var f graphviz.Format
	switch format {
	case "svg":
		f = graphviz.SVG
	case "png":
		f = graphviz.PNG
	default:
		return nil, fmt.Errorf("graphviz engine does not support %s", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(ToDOT(c)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, f, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
