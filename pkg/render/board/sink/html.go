package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/matzehuels/shapeboard/pkg/render/board"
)

type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	document bool
	title    string
}

// WithDocument wraps the board in a complete HTML page with the given title.
func WithDocument(title string) HTMLOption {
	return func(r *htmlRenderer) { r.document = true; r.title = title }
}

// RenderHTML renders the container as nested <div> elements: the container
// with its merged style and one absolutely positioned child per primitive.
func RenderHTML(c board.Container, opts ...HTMLOption) []byte {
	var r htmlRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	if r.document {
		fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", escape(r.title))
	}
	fmt.Fprintf(&buf, "<div class=\"board\" style=\"%s\">\n", escape(c.Style.CSS()))
	for _, p := range c.Children {
		fmt.Fprintf(&buf, "  <div data-index=\"%d\" data-kind=\"%s\" style=\"%s\"></div>\n",
			p.Index, escape(p.Kind.Name()), escape(PrimitiveCSS(p).CSS()))
	}
	buf.WriteString("</div>\n")
	if r.document {
		buf.WriteString("</body>\n</html>\n")
	}
	return buf.Bytes()
}

// PrimitiveCSS returns the inline style for a primitive's element.
func PrimitiveCSS(p board.Primitive) board.Style {
	s := board.Style{
		"position":         "absolute",
		"left":             px(p.Left),
		"top":              px(p.Top),
		"width":            px(p.Width),
		"height":           px(p.Height),
		"background-color": p.Background,
	}
	if p.Rounded {
		s["border-radius"] = "50%"
	}
	if e := p.Border.Left; e.Width > 0 {
		s["border-left"] = edgeCSS(e)
	}
	if e := p.Border.Right; e.Width > 0 {
		s["border-right"] = edgeCSS(e)
	}
	if e := p.Border.Bottom; e.Width > 0 {
		s["border-bottom"] = edgeCSS(e)
	}
	return s
}

func edgeCSS(e board.Edge) string {
	return px(e.Width) + " solid " + e.Color
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func escape(s string) string { return html.EscapeString(s) }
