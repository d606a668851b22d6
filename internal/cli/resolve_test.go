package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/scene"
	"github.com/matzehuels/shapeboard/pkg/shape"
)

func TestPlacementTable(t *testing.T) {
	sc := scene.Scene{
		Randomize: scene.Bool(false),
		Shapes: []shape.Descriptor{
			{Kind: shape.Square, Size: 10, Color: "red", Position: &shape.Point{X: 5, Y: 5}},
			{Kind: shape.KindUnknown("hexagon"), Size: 4, Color: "blue"},
		},
	}
	tracker := placement.NewTracker(placement.Viewport{Width: 100, Height: 100}, nil)
	tracker.SetShapes(sc.Shapes)
	tracker.SetRandomize(false)
	tracker.Sync()

	got := placementTable(sc, tracker)
	for _, want := range []string{"KIND", "square", "5.00", "red", "unknown(hexagon) (not drawn)"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestPlacementTableUnresolved(t *testing.T) {
	sc := scene.Scene{Shapes: []shape.Descriptor{{Kind: shape.Circle, Size: 10, Color: "red"}}}
	tracker := placement.NewTracker(placement.Viewport{Width: 100, Height: 100}, nil)
	tracker.SetShapes(sc.Shapes)

	got := placementTable(sc, tracker)
	if !strings.Contains(got, "-") {
		t.Errorf("unresolved row should show placeholders:\n%s", got)
	}
}

func TestResolveCommandJSON(t *testing.T) {
	input := writeScene(t, `{"randomize": true, "seed": 3, "viewport": {"width": 50, "height": 40},
		"shapes": [{"type": "circle", "size": 4, "color": "red"}, {"type": "square", "size": 4, "color": "blue"}]}`)
	var out bytes.Buffer
	c := newTestCLI(&out)
	root := c.RootCommand()
	root.SetArgs([]string{"resolve", "--json", input})
	if err := root.Execute(); err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	var set []shape.Point
	if err := json.Unmarshal(out.Bytes(), &set); err != nil {
		t.Fatalf("output is not a placement list: %v\n%s", err, out.String())
	}
	if len(set) != 2 {
		t.Fatalf("len(set) = %d, want 2", len(set))
	}
	for i, p := range set {
		if p.X < 0 || p.X >= 50 || p.Y < 0 || p.Y >= 40 {
			t.Errorf("set[%d] = %v outside 50x40", i, p)
		}
	}
}
