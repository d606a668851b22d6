package board

import (
	"maps"
	"slices"
	"strings"
)

// Style is a set of CSS properties keyed by property name.
type Style map[string]string

// BaseContainerStyle establishes the positioning context for the children.
func BaseContainerStyle() Style {
	return Style{"position": "relative"}
}

// Merge returns a copy of s with every property of over applied on top.
func (s Style) Merge(over Style) Style {
	out := make(Style, len(s)+len(over))
	maps.Copy(out, s)
	maps.Copy(out, over)
	return out
}

// Keys returns the property names in sorted order.
func (s Style) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// CSS renders the style as an inline declaration list with sorted keys,
// e.g. "background: white; position: relative".
func (s Style) CSS() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Keys() {
		parts = append(parts, k+": "+s[k])
	}
	return strings.Join(parts, "; ")
}
