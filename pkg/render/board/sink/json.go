package sink

import (
	"encoding/json"

	"github.com/matzehuels/shapeboard/pkg/render/board"
	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	placements placement.Set
	randomize  bool
	seed       *uint64
	style      string
}

// WithJSONPlacements records the resolved placement set alongside the primitives.
func WithJSONPlacements(set placement.Set, randomized bool) JSONOption {
	return func(r *jsonRenderer) { r.placements = set; r.randomize = randomized }
}

// WithJSONSeed records the seed a randomized set was drawn with, enabling
// reproducible re-rendering.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = &seed }
}

// WithJSONStyle records the style name for documentation or round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// Document is the JSON representation of a rendered board.
type Document struct {
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Viewport   placement.Viewport `json:"viewport"`
	Style      string             `json:"style,omitempty"`
	Randomize  bool               `json:"randomize"`
	Seed       *uint64            `json:"seed,omitempty"`
	Container  board.Style        `json:"container_style"`
	Placements placement.Set      `json:"placements,omitempty"`
	Primitives []board.Primitive  `json:"primitives"`
	Skipped    []board.Skip       `json:"skipped,omitempty"`
}

// RenderJSON serializes the container with its metadata as indented JSON.
func RenderJSON(c board.Container, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	w, h := c.Frame()
	doc := Document{
		Width:      w,
		Height:     h,
		Viewport:   c.Viewport,
		Style:      r.style,
		Randomize:  r.randomize,
		Seed:       r.seed,
		Container:  c.Style,
		Placements: r.placements,
		Primitives: c.Children,
		Skipped:    c.Skipped,
	}
	if doc.Primitives == nil {
		doc.Primitives = []board.Primitive{}
	}
	return json.MarshalIndent(doc, "", "  ")
}
