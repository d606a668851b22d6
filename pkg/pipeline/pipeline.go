// Package pipeline runs the resolve → build → render flow for a scene.
//
// The CLI and the HTTP API share this package so that defaults, validation
// and caching behave the same at every entry point.
//
// # Stages
//
//  1. Resolve: compute one placement per shape through a [placement.Tracker]
//  2. Build: turn descriptors and placements into a [board.Container]
//  3. Render: produce each requested output format from the container
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, sc, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Randomized scenes without a seed are drawn fresh on every run and never
// cached.
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapeboard/pkg/cache"
	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/render/board"
	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/render/board/styles"
	"github.com/matzehuels/shapeboard/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 600.0

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// DefaultMaxShapes bounds the number of shapes per board.
	DefaultMaxShapes = 10000
)

// DefaultStyle is the default visual style.
const DefaultStyle = styles.NameFlat

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Engine constants select how SVG, PNG and PDF are drawn.
const (
	EngineNative   = "native"
	EngineGraphviz = "graphviz"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatHTML: true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidEngines is the set of supported rendering engines.
var ValidEngines = map[string]bool{
	EngineNative:   true,
	EngineGraphviz: true,
}

// ContentType returns the MIME type of an artifact format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/octet-stream"
	}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run. Randomize, Seed, Width and Height
// override the scene's own values when set.
type Options struct {
	Formats   []string `json:"formats,omitempty"`
	Style     string   `json:"style,omitempty"`
	Engine    string   `json:"engine,omitempty"`
	Width     float64  `json:"width,omitempty"`
	Height    float64  `json:"height,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	Randomize *bool    `json:"randomize,omitempty"`
	Seed      *uint64  `json:"seed,omitempty"`
	MaxShapes int      `json:"max_shapes,omitempty"`
	Title     string   `json:"title,omitempty"`
	Refresh   bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Placements is the resolved placement set, one point per shape.
	Placements placement.Set

	// Container is the built board.
	Container board.Container

	// Randomized reports whether placements were drawn at random.
	Randomized bool

	// Seed is the seed used for a reproducible random draw, if any.
	Seed *uint64

	// SceneHash is the content hash of the scene.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and count information.
	Stats Stats

	// CacheHit reports whether every artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ShapeCount  int
	Drawn       int
	Skipped     int
	Recomputes  int
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, html, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if _, ok := styles.ByName(style); !ok {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: %s)", style, strings.Join(styles.Names(), ", "))
	}
	return nil
}

// ValidateEngine checks that an engine is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidEngine,
			"invalid engine: %q (must be one of: native, graphviz)", engine)
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks options and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Engine == "" {
		o.Engine = EngineNative
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.MaxShapes == 0 {
		o.MaxShapes = DefaultMaxShapes
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "scale must be positive, got %g", o.Scale)
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "viewport must not be negative, got %gx%g", o.Width, o.Height)
	}
	o.validated = true
	return nil
}

// RandomizeFor returns the effective randomize flag for sc.
func (o *Options) RandomizeFor(sc scene.Scene) bool {
	if o.Randomize != nil {
		return *o.Randomize
	}
	return sc.RandomizeEnabled()
}

// SeedFor returns the effective seed for sc, or nil for an entropy draw.
func (o *Options) SeedFor(sc scene.Scene) *uint64 {
	if o.Seed != nil {
		return o.Seed
	}
	return sc.Seed
}

// ViewportFor returns the effective viewport for sc: the option values, then
// the scene's viewport, then the defaults, per dimension.
func (o *Options) ViewportFor(sc scene.Scene) placement.Viewport {
	vp := placement.Viewport{Width: DefaultWidth, Height: DefaultHeight}
	if sc.Viewport != nil {
		if sc.Viewport.Width > 0 {
			vp.Width = sc.Viewport.Width
		}
		if sc.Viewport.Height > 0 {
			vp.Height = sc.Viewport.Height
		}
	}
	if o.Width > 0 {
		vp.Width = o.Width
	}
	if o.Height > 0 {
		vp.Height = o.Height
	}
	return vp
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string, sc scene.Scene) cache.ArtifactKeyOpts {
	vp := o.ViewportFor(sc)
	opts := cache.ArtifactKeyOpts{
		Format:    format,
		Style:     o.Style,
		Engine:    o.Engine,
		Width:     vp.Width,
		Height:    vp.Height,
		Scale:     o.Scale,
		Randomize: o.RandomizeFor(sc),
		Title:     o.Title,
	}
	if seed := o.SeedFor(sc); seed != nil {
		opts.Seed = *seed
	}
	return opts
}
