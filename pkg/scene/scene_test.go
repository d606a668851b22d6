package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/shape"
)

func TestReadJSONObject(t *testing.T) {
	in := `{
		"name": "demo",
		"randomize": false,
		"container_style": {"background": "#fafafa"},
		"viewport": {"width": 320, "height": 240},
		"seed": 7,
		"shapes": [
			{"type": "square", "size": 10, "color": "red", "position": {"x": 5, "y": 5}},
			{"type": "blob", "size": 4, "color": "red"}
		]
	}`
	s, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if s.Name != "demo" || s.RandomizeEnabled() {
		t.Errorf("name=%q randomize=%v", s.Name, s.RandomizeEnabled())
	}
	if len(s.Shapes) != 2 || s.Shapes[0].Kind != shape.Square {
		t.Fatalf("shapes = %+v", s.Shapes)
	}
	if s.Shapes[1].Kind.Known() {
		t.Error("unknown type should decode as an unknown kind")
	}
	if s.Viewport == nil || s.Viewport.Width != 320 {
		t.Errorf("viewport = %v", s.Viewport)
	}
	if s.Seed == nil || *s.Seed != 7 {
		t.Errorf("seed = %v", s.Seed)
	}
	if s.Style()["background"] != "#fafafa" {
		t.Errorf("style = %v", s.Style())
	}
	if len(s.Issues()) != 1 {
		t.Errorf("issues = %v", s.Issues())
	}
}

func TestReadJSONArray(t *testing.T) {
	s, err := ReadJSON(strings.NewReader("\n  [{\"type\": \"circle\", \"size\": 3, \"color\": \"blue\"}]"))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(s.Shapes) != 1 || s.Shapes[0].Kind != shape.Circle {
		t.Errorf("shapes = %+v", s.Shapes)
	}
	if !s.RandomizeEnabled() {
		t.Error("randomize should default to true")
	}
}

func TestReadJSONInvalid(t *testing.T) {
	for _, in := range []string{"", "{", "[1, 2]", `{"shapes": "nope"}`} {
		if _, err := ReadJSON(strings.NewReader(in)); !errors.Is(err, errors.ErrCodeInvalidScene) {
			t.Errorf("ReadJSON(%q) error = %v, want INVALID_SCENE", in, err)
		}
	}
}

func TestReadTOML(t *testing.T) {
	in := `
name = "toml board"
randomize = true
seed = 99

[container_style]
border = "1px solid black"

[[shapes]]
type = "triangle"
size = 12.0
color = "green"

[[shapes]]
type = "circle"
size = 8.0
color = "#123456"
position = { x = 3.0, y = 4.0 }
`
	s, err := ReadTOML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if s.Name != "toml board" || !s.RandomizeEnabled() || s.Seed == nil || *s.Seed != 99 {
		t.Errorf("scene = %+v", s)
	}
	if len(s.Shapes) != 2 || s.Shapes[0].Kind != shape.Triangle {
		t.Fatalf("shapes = %+v", s.Shapes)
	}
	if s.Shapes[1].FixedPosition() != (shape.Point{X: 3, Y: 4}) {
		t.Errorf("position = %v", s.Shapes[1].FixedPosition())
	}
	if s.ContainerStyle["border"] != "1px solid black" {
		t.Errorf("container style = %v", s.ContainerStyle)
	}
}

func TestImportAndExport(t *testing.T) {
	dir := t.TempDir()
	orig := Scene{
		Randomize: Bool(false),
		Shapes: []shape.Descriptor{
			{Kind: shape.Square, Size: 10, Color: "red", Position: &shape.Point{X: 5, Y: 5}},
		},
	}

	path := filepath.Join(dir, "board.json")
	if err := Export(orig, path); err != nil {
		t.Fatalf("Export: %v", err)
	}
	got, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if got.Name != "board" {
		t.Errorf("Name = %q, want name from file", got.Name)
	}
	if got.RandomizeEnabled() || len(got.Shapes) != 1 || got.Shapes[0].Kind != shape.Square {
		t.Errorf("round trip = %+v", got)
	}

	tomlPath := filepath.Join(dir, "other.TOML")
	if err := os.WriteFile(tomlPath, []byte("[[shapes]]\ntype = \"circle\"\nsize = 1.0\ncolor = \"red\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = Import(tomlPath)
	if err != nil {
		t.Fatalf("Import toml: %v", err)
	}
	if len(got.Shapes) != 1 || got.Shapes[0].Kind != shape.Circle {
		t.Errorf("toml import = %+v", got)
	}

	if _, err := Import(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestWriteJSONOmitsDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(Scene{Shapes: []shape.Descriptor{}}, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, field := range []string{"randomize", "seed", "viewport", "container_style"} {
		if strings.Contains(out, field) {
			t.Errorf("unset %s should be omitted: %s", field, out)
		}
	}
}
