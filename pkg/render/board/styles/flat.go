package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/shapeboard/pkg/render/board"
)

// Flat fills each primitive with its color, matching the box-model rendering.
type Flat struct{}

func (Flat) Name() string                 { return NameFlat }
func (Flat) RenderDefs(buf *bytes.Buffer) {}

func (Flat) RenderPrimitive(buf *bytes.Buffer, p board.Primitive) {
	writeShape(buf, p, fmt.Sprintf(`fill="%s"`, attr(p.Fill())))
}
