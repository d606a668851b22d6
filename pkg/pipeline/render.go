package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/render"
	"github.com/matzehuels/shapeboard/pkg/render/board"
	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/render/board/sink"
	"github.com/matzehuels/shapeboard/pkg/render/board/styles"
)

// Placement describes how a container's placements were produced, for the
// JSON artifact.
type Placement struct {
	Set        placement.Set
	Randomized bool
	Seed       *uint64
}

// Render produces every requested format from a built container. Options must
// already be validated.
func Render(ctx context.Context, c board.Container, pl Placement, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, c, pl, format, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, c board.Container, pl Placement, format string, opts Options) ([]byte, error) {
	style, _ := styles.ByName(opts.Style)

	switch format {
	case FormatHTML:
		var htmlOpts []sink.HTMLOption
		if opts.Title != "" {
			htmlOpts = append(htmlOpts, sink.WithDocument(opts.Title))
		}
		return sink.RenderHTML(c, htmlOpts...), nil
	case FormatJSON:
		jsonOpts := []sink.JSONOption{
			sink.WithJSONPlacements(pl.Set, pl.Randomized),
			sink.WithJSONStyle(opts.Style),
		}
		if pl.Seed != nil {
			jsonOpts = append(jsonOpts, sink.WithJSONSeed(*pl.Seed))
		}
		return sink.RenderJSON(c, jsonOpts...)
	case FormatDOT:
		return []byte(sink.ToDOT(c)), nil
	}

	if opts.Engine == EngineGraphviz {
		return renderGraphviz(ctx, c, format)
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(c, sink.WithStyle(style)), nil
	case FormatPNG:
		return sink.RenderPNG(c, sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(c, sink.WithPDFSVGOptions(sink.WithStyle(style)))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// renderGraphviz draws SVG and PNG through neato, and PDF from the neato SVG.
func renderGraphviz(ctx context.Context, c board.Container, format string) ([]byte, error) {
	switch format {
	case FormatSVG, FormatPNG:
		return sink.RenderDOT(ctx, c, format)
	case FormatPDF:
		svg, err := sink.RenderDOT(ctx, c, FormatSVG)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "graphviz engine does not support %s", format)
	}
}
