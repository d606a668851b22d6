package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/shapeboard/pkg/render/board"
)

const outlineWidth = 2.0

// Outline strokes each primitive's edge in its color and leaves it unfilled.
type Outline struct{}

func (Outline) Name() string                 { return NameOutline }
func (Outline) RenderDefs(buf *bytes.Buffer) {}

func (Outline) RenderPrimitive(buf *bytes.Buffer, p board.Primitive) {
	writeShape(buf, p, fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%.1f"`, attr(p.Fill()), outlineWidth))
}
