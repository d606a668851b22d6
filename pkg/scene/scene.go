// Package scene reads and writes board descriptions.
//
// A scene bundles the inputs of one board: the ordered shape list, the
// randomize flag (default true), container style overrides, and optionally a
// viewport and seed. Scenes are read from JSON or TOML:
//
//	{
//	  "name": "confetti",
//	  "randomize": false,
//	  "container_style": {"background": "#fafafa"},
//	  "shapes": [
//	    {"type": "square", "size": 10, "color": "red", "position": {"x": 5, "y": 5}}
//	  ]
//	}
//
// A bare JSON array of shape descriptors is also accepted and yields a scene
// with default options.
package scene

import (
	"github.com/matzehuels/shapeboard/pkg/render/board"
	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/shape"
)

// Scene is the caller-owned input of one board.
type Scene struct {
	Name           string              `json:"name,omitempty" toml:"name"`
	Shapes         []shape.Descriptor  `json:"shapes" toml:"shapes"`
	Randomize      *bool               `json:"randomize,omitempty" toml:"randomize"`
	ContainerStyle map[string]string   `json:"container_style,omitempty" toml:"container_style"`
	Viewport       *placement.Viewport `json:"viewport,omitempty" toml:"viewport"`
	Seed           *uint64             `json:"seed,omitempty" toml:"seed"`
}

// RandomizeEnabled returns the randomize flag, defaulting to true.
func (s Scene) RandomizeEnabled() bool {
	return s.Randomize == nil || *s.Randomize
}

// Style returns the container style overrides.
func (s Scene) Style() board.Style {
	return board.Style(s.ContainerStyle)
}

// Issues validates every shape. Issues are informational only.
func (s Scene) Issues() []shape.Issue {
	return shape.ValidateAll(s.Shapes)
}

// Bool returns a pointer to b, for populating optional fields.
func Bool(b bool) *bool { return &b }
