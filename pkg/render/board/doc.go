// Package board maps shape descriptors and their placements to positioned
// visual primitives.
//
// # Primitives
//
// A [Primitive] is a box in CSS box-model terms: a top-left corner, a width
// and height, a background and optional borders. The three shape kinds map to
// boxes as follows:
//
//   - circle: a size x size box with full corner rounding
//   - square: the same box without rounding
//   - triangle: a zero-size box whose left and right borders are size/2 wide
//     and transparent and whose bottom border is size wide in the shape color,
//     producing an upward isosceles triangle with base and height equal to size
//
// Descriptors of unknown kind produce no primitive.
//
// # Container
//
// [Build] wraps the primitives in a [Container], which establishes the
// coordinate origin for the absolutely positioned children. The container's
// style starts from "position: relative" and applies caller overrides on top.
//
// Rendering to concrete formats lives in the [sink] subpackage.
//
// [sink]: github.com/matzehuels/shapeboard/pkg/render/board/sink
package board
