// Package sink renders a board container to output formats.
//
// # Formats
//
//   - SVG ([RenderSVG]): one element per primitive, styled by a [styles.Style]
//   - HTML ([RenderHTML]): a container <div> with absolutely positioned
//     children carrying the box-model CSS of each primitive
//   - PNG ([RenderPNG]): rasterized in-process
//   - PDF ([RenderPDF]): the SVG converted with rsvg-convert
//   - JSON ([RenderJSON]): primitives, placements and frame metadata
//   - DOT ([ToDOT], [RenderDOT]): Graphviz graph with pinned node positions
//
// All sinks draw children in input order, so later shapes paint over earlier
// ones.
//
// [styles.Style]: github.com/matzehuels/shapeboard/pkg/render/board/styles
package sink
