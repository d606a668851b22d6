package pipeline

import (
	"reflect"
	"testing"

	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/scene"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"html", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"flat", false},
		{"outline", false},
		{"handdrawn", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestValidateEngine(t *testing.T) {
	for _, e := range []string{"native", "graphviz"} {
		if err := ValidateEngine(e); err != nil {
			t.Errorf("ValidateEngine(%q) = %v", e, err)
		}
	}
	if err := ValidateEngine("cairo"); !errors.Is(err, errors.ErrCodeInvalidEngine) {
		t.Errorf("ValidateEngine(cairo) = %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, PNG,,svg ,json")
	want := []string{"svg", "png", "json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFormats = %v, want %v", got, want)
	}
	if got := ParseFormats(""); got != nil {
		t.Errorf("ParseFormats(\"\") = %v, want nil", got)
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType(FormatSVG); got != "image/svg+xml" {
		t.Errorf("svg content type = %s", got)
	}
	if got := ContentType("nope"); got != "application/octet-stream" {
		t.Errorf("unknown content type = %s", got)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style should be %s, got %s", DefaultStyle, opts.Style)
	}
	if opts.Engine != EngineNative {
		t.Errorf("Engine should be native, got %s", opts.Engine)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %g, got %g", DefaultScale, opts.Scale)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"style", Options{Style: "sketchy"}, errors.ErrCodeInvalidStyle},
		{"engine", Options{Engine: "cairo"}, errors.ErrCodeInvalidEngine},
		{"scale", Options{Scale: -1}, errors.ErrCodeInvalidOptions},
		{"viewport", Options{Width: -5}, errors.ErrCodeInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Formats: []string{"png"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	before := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if !reflect.DeepEqual(before.Formats, opts.Formats) || before.Style != opts.Style || before.Scale != opts.Scale {
		t.Error("options changed on second call")
	}
}

func TestViewportFor(t *testing.T) {
	sc := scene.Scene{Viewport: &placement.Viewport{Width: 320}}

	opts := Options{}
	if got := opts.ViewportFor(sc); got != (placement.Viewport{Width: 320, Height: DefaultHeight}) {
		t.Errorf("scene viewport = %v", got)
	}

	opts = Options{Width: 100, Height: 50}
	if got := opts.ViewportFor(sc); got != (placement.Viewport{Width: 100, Height: 50}) {
		t.Errorf("option viewport = %v", got)
	}

	if got := (&Options{}).ViewportFor(scene.Scene{}); got != (placement.Viewport{Width: DefaultWidth, Height: DefaultHeight}) {
		t.Errorf("default viewport = %v", got)
	}
}

func TestRandomizeAndSeedOverrides(t *testing.T) {
	seed := uint64(9)
	sc := scene.Scene{Randomize: scene.Bool(false), Seed: &seed}

	opts := Options{}
	if opts.RandomizeFor(sc) {
		t.Error("scene randomize=false should be honored")
	}
	if got := opts.SeedFor(sc); got == nil || *got != 9 {
		t.Errorf("scene seed = %v", got)
	}

	other := uint64(1)
	opts = Options{Randomize: scene.Bool(true), Seed: &other}
	if !opts.RandomizeFor(sc) {
		t.Error("option randomize should override the scene")
	}
	if got := opts.SeedFor(sc); *got != 1 {
		t.Errorf("option seed = %d", *got)
	}

	if !(&Options{}).RandomizeFor(scene.Scene{}) {
		t.Error("randomize should default to true")
	}
}
