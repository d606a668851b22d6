package shape

import "fmt"

// Point is a coordinate in board space, measured in pixels from the
// container's top-left corner.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Origin is the placement used for fixed-mode descriptors without a position.
var Origin = Point{}

// Descriptor specifies one shape on the board.
type Descriptor struct {
	Kind     Kind    `json:"type" toml:"type"`
	Size     float64 `json:"size" toml:"size"`   // edge length or diameter in pixels
	Color    string  `json:"color" toml:"color"` // any CSS color; not interpreted
	Position *Point  `json:"position,omitempty" toml:"position,omitempty"`
}

// FixedPosition returns the descriptor's own position, or [Origin] when unset.
func (d Descriptor) FixedPosition() Point {
	if d.Position == nil {
		return Origin
	}
	return *d.Position
}

// Issue describes a descriptor field that will render malformed or not at all.
// Issues are informational; nothing in shapeboard rejects a descriptor.
type Issue struct {
	Index   int    // position in the descriptor list, -1 when not known
	Field   string // "type", "size" or "color"
	Message string
}

func (i Issue) String() string {
	if i.Index < 0 {
		return fmt.Sprintf("%s: %s", i.Field, i.Message)
	}
	return fmt.Sprintf("shape %d: %s: %s", i.Index, i.Field, i.Message)
}

// Validate reports issues with d. The returned issues carry Index -1.
func (d Descriptor) Validate() []Issue {
	var issues []Issue
	if !d.Kind.Known() {
		issues = append(issues, Issue{Index: -1, Field: "type", Message: fmt.Sprintf("unknown shape %q is not rendered", d.Kind.Name())})
	}
	if d.Size <= 0 {
		issues = append(issues, Issue{Index: -1, Field: "size", Message: fmt.Sprintf("non-positive size %g", d.Size)})
	}
	if _, ok := ParseColor(d.Color); !ok {
		issues = append(issues, Issue{Index: -1, Field: "color", Message: fmt.Sprintf("unrecognized color %q", d.Color)})
	}
	return issues
}

// ValidateAll validates every descriptor and stamps each issue with its index.
func ValidateAll(shapes []Descriptor) []Issue {
	var issues []Issue
	for i, d := range shapes {
		for _, is := range d.Validate() {
			is.Index = i
			issues = append(issues, is)
		}
	}
	return issues
}
