package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeboard/pkg/pipeline"
)

// boardFlags are the placement flags shared by render, resolve and preview.
type boardFlags struct {
	width     float64
	height    float64
	seed      uint64
	randomize bool
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", pipeline.DefaultWidth, "viewport width in pixels")
	cmd.Flags().Float64Var(&f.height, "height", pipeline.DefaultHeight, "viewport height in pixels")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for a reproducible random placement")
	cmd.Flags().BoolVar(&f.randomize, "randomize", true, "scatter shapes at random (overrides the scene)")
}

// apply copies the flags the user set onto opts. Unset flags leave the scene
// and config values in effect.
func (f *boardFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		opts.Width = f.width
	}
	if flags.Changed("height") {
		opts.Height = f.height
	}
	if flags.Changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	if flags.Changed("randomize") {
		on := f.randomize
		opts.Randomize = &on
	}
}

// baseOptions returns pipeline options seeded from the config file.
func (c *CLI) baseOptions() pipeline.Options {
	r := c.Config.Render
	return pipeline.Options{
		Formats: append([]string(nil), r.Formats...),
		Style:   r.Style,
		Engine:  r.Engine,
		Width:   r.Width,
		Height:  r.Height,
		Scale:   r.Scale,
		Logger:  c.Logger,
	}
}
