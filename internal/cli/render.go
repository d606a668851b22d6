package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeboard/pkg/pipeline"
	"github.com/matzehuels/shapeboard/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	board   boardFlags
	output  string // output file, base path for several formats, or "-" for stdout
	formats string // comma-separated formats
	style   string
	engine  string
	scale   float64
	title   string
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a scene to SVG, HTML, PNG, PDF, JSON or DOT",
		Long: `Render a scene file (JSON or TOML) to one or more output formats.

Without --output, files are written next to the scene with the format as
extension. Boards with random placement and no --seed are drawn fresh each
run; all other boards are cached.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			po := c.renderOptions(cmd, &opts)
			return c.runRender(cmd.Context(), args[0], po, &opts)
		},
	}

	opts.board.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, base path for several formats, or - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), html, png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: flat (default), outline")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "drawing engine: native (default), graphviz")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.title, "title", "", "wrap HTML output in a page with this title")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	registerValueCompletions(cmd)

	return cmd
}

// renderOptions merges config defaults with the flags the user set.
func (c *CLI) renderOptions(cmd *cobra.Command, opts *renderOpts) pipeline.Options {
	po := c.baseOptions()
	opts.board.apply(cmd, &po)
	if opts.formats != "" {
		po.Formats = pipeline.ParseFormats(opts.formats)
	}
	if opts.style != "" {
		po.Style = opts.style
	}
	if opts.engine != "" {
		po.Engine = opts.engine
	}
	if cmd.Flags().Changed("scale") {
		po.Scale = opts.scale
	}
	po.Title = opts.title
	po.Refresh = opts.refresh
	return po
}

func (c *CLI) runRender(ctx context.Context, input string, po pipeline.Options, opts *renderOpts) error {
	sc, err := scene.Import(input)
	if err != nil {
		return err
	}
	for _, is := range sc.Issues() {
		c.Logger.Debug("shape issue", "index", is.Index, "field", is.Field, "message", is.Message)
	}
	if err := po.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if opts.output == "-" && len(po.Formats) != 1 {
		return fmt.Errorf("--output - requires exactly one format, got %d", len(po.Formats))
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Loading %s...", sc.Name))
	restore := followStages(spinner)
	spinner.Start()
	res, err := runner.Execute(ctx, sc, po)
	restore()
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if opts.output == "-" {
		_, err := c.Out.Write(res.Artifacts[po.Formats[0]])
		return err
	}

	paths := outputPaths(opts.output, input, po.Formats)
	for _, format := range po.Formats {
		if err := os.WriteFile(paths[format], res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[format], err)
		}
	}

	printSuccess("Rendered %s", sc.Name)
	fmt.Println(statsLine(res.Stats.ShapeCount, res.Stats.Skipped, res.Randomized, res.CacheHit))
	for _, format := range po.Formats {
		printFile(paths[format])
	}
	for _, s := range res.Container.Skipped {
		printWarning("shape %d not drawn (%s)", s.Index, s.Reason)
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(po.Formats)))
	if res.Randomized {
		printNextStep("Preview interactively", fmt.Sprintf("%s preview %s", appName, input))
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to its output file. A single format with an
// explicit output path writes exactly there.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
