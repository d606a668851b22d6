package shape

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Transparent is the CSS keyword for a fully transparent color.
const Transparent = "transparent"

// ParseColor converts a CSS color to an RGBA value. It accepts "#rgb" and
// "#rrggbb" hex notation, the CSS named colors and "transparent". Any other
// value reports ok=false.
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}
	if s == Transparent {
		return color.Transparent, true
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, false
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	return nil, false
}
