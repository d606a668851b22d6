// Package render provides board rendering for shapeboard.
//
// # Overview
//
// This package contains the rendering layers that turn shape descriptors into
// visual outputs:
//
//   - Generic format conversion (SVG to PDF) in this package
//   - The board model (in [board]): primitives and their container
//   - Placement resolution (in [board/placement])
//   - Output formats (in [board/sink]) and SVG styles (in [board/styles])
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool (from
// librsvg).
//
//	svg := sink.RenderSVG(container)
//	pdf, err := render.ToPDF(svg)
//
// [board]: github.com/matzehuels/shapeboard/pkg/render/board
// [board/placement]: github.com/matzehuels/shapeboard/pkg/render/board/placement
// [board/sink]: github.com/matzehuels/shapeboard/pkg/render/board/sink
// [board/styles]: github.com/matzehuels/shapeboard/pkg/render/board/styles
package render
