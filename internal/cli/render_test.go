package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeboard/pkg/pipeline"
)

const fixedScene = `{
  "name": "fixed",
  "randomize": false,
  "shapes": [
    {"type": "square", "size": 10, "color": "red", "position": {"x": 5, "y": 5}},
    {"type": "circle", "size": 20, "color": "#00f"},
    {"type": "hexagon", "size": 8, "color": "green"}
  ]
}`

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRenderWritesFiles(t *testing.T) {
	input := writeScene(t, fixedScene)
	c := newTestCLI(io.Discard)

	po := c.baseOptions()
	po.Formats = []string{pipeline.FormatSVG, pipeline.FormatJSON}
	base := filepath.Join(t.TempDir(), "out")
	opts := &renderOpts{output: base, noCache: true}
	if err := c.runRender(context.Background(), input, po, opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("svg not written: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("svg output missing root element: %.80s", svg)
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("json not written: %v", err)
	}
	if !json.Valid(data) {
		t.Errorf("json artifact is not valid JSON")
	}
}

func TestRunRenderStdout(t *testing.T) {
	input := writeScene(t, fixedScene)
	var out bytes.Buffer
	c := newTestCLI(&out)

	po := c.baseOptions()
	po.Formats = []string{pipeline.FormatHTML}
	if err := c.runRender(context.Background(), input, po, &renderOpts{output: "-", noCache: true}); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}
	if !strings.Contains(out.String(), "position: relative") {
		t.Errorf("html on stdout missing container style: %.120s", out.String())
	}
}

func TestRunRenderErrors(t *testing.T) {
	input := writeScene(t, fixedScene)
	c := newTestCLI(io.Discard)

	tests := []struct {
		name    string
		input   string
		formats []string
		output  string
	}{
		{"stdout with two formats", input, []string{"svg", "png"}, "-"},
		{"bad format", input, []string{"gif"}, ""},
		{"missing scene", filepath.Join(t.TempDir(), "nope.json"), []string{"svg"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			po := c.baseOptions()
			po.Formats = tt.formats
			err := c.runRender(context.Background(), tt.input, po, &renderOpts{output: tt.output, noCache: true})
			if err == nil {
				t.Error("runRender() expected error")
			}
		})
	}
}

func TestBoardFlagsApply(t *testing.T) {
	c := newTestCLI(io.Discard)
	var flags boardFlags
	cmd := &cobra.Command{Use: "x"}
	flags.register(cmd)
	if err := cmd.ParseFlags([]string{"--seed", "7", "--width", "300", "--randomize=false"}); err != nil {
		t.Fatal(err)
	}

	po := c.baseOptions()
	flags.apply(cmd, &po)
	if po.Seed == nil || *po.Seed != 7 {
		t.Errorf("Seed = %v, want 7", po.Seed)
	}
	if po.Width != 300 {
		t.Errorf("Width = %g, want 300", po.Width)
	}
	if po.Height != 0 {
		t.Errorf("Height = %g, unset flag should leave it alone", po.Height)
	}
	if po.Randomize == nil || *po.Randomize {
		t.Errorf("Randomize = %v, want false", po.Randomize)
	}
}

func TestBoardFlagsUnset(t *testing.T) {
	c := newTestCLI(io.Discard)
	var flags boardFlags
	cmd := &cobra.Command{Use: "x"}
	flags.register(cmd)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	po := c.baseOptions()
	flags.apply(cmd, &po)
	if po.Seed != nil || po.Randomize != nil {
		t.Errorf("unset flags overrode the scene: seed=%v randomize=%v", po.Seed, po.Randomize)
	}
}
