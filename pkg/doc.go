// Package pkg holds the shapeboard libraries.
//
// # Overview
//
// Shapeboard draws boards of simple shapes. Each shape is a descriptor
// (circle, square or triangle with a size, a color and an optional position).
// Shapes are either placed where their descriptors say or scattered at random
// across the viewport, then drawn as absolutely positioned boxes inside a
// relatively positioned container.
//
// # Architecture
//
//	scene file (JSON/TOML)
//	        ↓
//	   [scene] package (descriptors + board options)
//	        ↓
//	   [render/board/placement] package (fixed or random placement set)
//	        ↓
//	   [render/board] package (primitives + container)
//	        ↓
//	   [render/board/sink] package (SVG/HTML/PNG/PDF/JSON/DOT)
//
// [pipeline] runs these stages with caching and is shared by the CLI and the
// HTTP API in [server].
//
// # Quick Start
//
//	sc, _ := scene.Import("board.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(ctx, sc, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("board.svg", res.Artifacts["svg"], 0o644)
//
// # Main Packages
//
//   - [shape]: descriptors, kinds and color parsing
//   - [scene]: scene files
//   - [render/board/placement]: placement resolution and the recompute tracker
//   - [render/board]: primitives and the container
//   - [render/board/sink], [render/board/styles]: output formats and SVG styles
//   - [pipeline]: resolve → build → render with caching
//   - [cache]: file, memory, Redis and null artifact caches
//   - [store]: in-memory and MongoDB scene storage
//   - [server]: HTTP API
//   - [errors], [observability], [buildinfo]: shared infrastructure
//
// [shape]: github.com/matzehuels/shapeboard/pkg/shape
// [scene]: github.com/matzehuels/shapeboard/pkg/scene
// [render/board/placement]: github.com/matzehuels/shapeboard/pkg/render/board/placement
// [render/board]: github.com/matzehuels/shapeboard/pkg/render/board
// [render/board/sink]: github.com/matzehuels/shapeboard/pkg/render/board/sink
// [render/board/styles]: github.com/matzehuels/shapeboard/pkg/render/board/styles
// [pipeline]: github.com/matzehuels/shapeboard/pkg/pipeline
// [cache]: github.com/matzehuels/shapeboard/pkg/cache
// [store]: github.com/matzehuels/shapeboard/pkg/store
// [server]: github.com/matzehuels/shapeboard/pkg/server
// [errors]: github.com/matzehuels/shapeboard/pkg/errors
// [observability]: github.com/matzehuels/shapeboard/pkg/observability
// [buildinfo]: github.com/matzehuels/shapeboard/pkg/buildinfo
package pkg
