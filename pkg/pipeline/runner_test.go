package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/shapeboard/pkg/cache"
	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/observability"
	"github.com/matzehuels/shapeboard/pkg/render/board/sink"
	"github.com/matzehuels/shapeboard/pkg/scene"
	"github.com/matzehuels/shapeboard/pkg/shape"
)

func fixedScene() scene.Scene {
	return scene.Scene{
		Name:      "fixed",
		Randomize: scene.Bool(false),
		Shapes: []shape.Descriptor{
			{Kind: shape.Square, Size: 10, Color: "red", Position: &shape.Point{X: 5, Y: 5}},
		},
	}
}

func randomScene(n int) scene.Scene {
	shapes := make([]shape.Descriptor, n)
	for i := range shapes {
		shapes[i] = shape.Descriptor{Kind: shape.Circle, Size: 8, Color: "blue"}
	}
	return scene.Scene{Shapes: shapes}
}

func newTestRunner(t *testing.T) (*Runner, *cache.MemoryCache) {
	t.Helper()
	c, err := cache.NewMemoryCache(64)
	if err != nil {
		t.Fatalf("NewMemoryCache: %v", err)
	}
	return NewRunner(c, nil, nil), c
}

func TestExecuteFixedSquare(t *testing.T) {
	r, _ := newTestRunner(t)
	res, err := r.Execute(context.Background(), fixedScene(), Options{Formats: []string{"svg", "json", "html"}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(res.Container.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(res.Container.Children))
	}
	p := res.Container.Children[0]
	if p.Left != 5 || p.Top != 5 || p.Width != 10 || p.Height != 10 || p.Background != "red" || p.Rounded {
		t.Errorf("primitive = %+v", p)
	}
	if res.Randomized {
		t.Error("Randomized should be false")
	}
	if res.Stats.Recomputes != 0 {
		t.Errorf("fixed placement should not draw random sets, got %d", res.Stats.Recomputes)
	}
	for _, f := range []string{"svg", "json", "html"} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}

	var doc sink.Document
	if err := json.Unmarshal(res.Artifacts["json"], &doc); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if len(doc.Placements) != 1 || doc.Placements[0] != (shape.Point{X: 5, Y: 5}) {
		t.Errorf("placements = %v", doc.Placements)
	}
}

func TestExecuteCachesDeterministicRenders(t *testing.T) {
	r, c := newTestRunner(t)
	ctx := context.Background()

	first, err := r.Execute(ctx, fixedScene(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first run should miss")
	}
	if c.Len() != 1 {
		t.Errorf("cache entries = %d, want 1", c.Len())
	}

	second, err := r.Execute(ctx, fixedScene(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second run should hit")
	}
	if string(first.Artifacts["svg"]) != string(second.Artifacts["svg"]) {
		t.Error("cached artifact differs")
	}

	refreshed, err := r.Execute(ctx, fixedScene(), Options{Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecuteRandomNeverCached(t *testing.T) {
	r, c := newTestRunner(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := r.Execute(ctx, randomScene(5), Options{Width: 200, Height: 100})
		if err != nil {
			t.Fatal(err)
		}
		if res.CacheHit {
			t.Error("random board should never hit the cache")
		}
		if len(res.Placements) != 5 {
			t.Errorf("placements = %d, want 5", len(res.Placements))
		}
		if res.Stats.Recomputes != 1 {
			t.Errorf("recomputes = %d, want 1", res.Stats.Recomputes)
		}
		for _, pt := range res.Placements {
			if pt.X < 0 || pt.X >= 200 || pt.Y < 0 || pt.Y >= 100 {
				t.Errorf("placement %v outside viewport", pt)
			}
		}
	}
	if c.Len() != 0 {
		t.Errorf("cache entries = %d, want 0", c.Len())
	}
}

func TestExecuteSeedIsReproducible(t *testing.T) {
	r, _ := newTestRunner(t)
	ctx := context.Background()
	seed := uint64(42)

	a, err := r.Execute(ctx, randomScene(4), Options{Seed: &seed, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(ctx, randomScene(4), Options{Seed: &seed, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Placements {
		if a.Placements[i] != b.Placements[i] {
			t.Errorf("placement %d: %v != %v", i, a.Placements[i], b.Placements[i])
		}
	}
}

func TestExecuteUnknownKindSkipped(t *testing.T) {
	r, _ := newTestRunner(t)
	sc := fixedScene()
	sc.Shapes = append(sc.Shapes, shape.Descriptor{Kind: shape.KindUnknown("hexagon"), Size: 5, Color: "green"})

	res, err := r.Execute(context.Background(), sc, Options{})
	if err != nil {
		t.Fatalf("unknown kind must not fail: %v", err)
	}
	if res.Stats.Drawn != 1 || res.Stats.Skipped != 1 {
		t.Errorf("drawn=%d skipped=%d", res.Stats.Drawn, res.Stats.Skipped)
	}
	if strings.Contains(string(res.Artifacts["svg"]), "hexagon") {
		t.Error("unknown kind should not appear in the SVG")
	}
}

func TestExecuteErrors(t *testing.T) {
	r, _ := newTestRunner(t)

	_, err := r.Execute(context.Background(), fixedScene(), Options{Formats: []string{"bmp"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format error = %v", err)
	}

	_, err = r.Execute(context.Background(), randomScene(3), Options{MaxShapes: 2})
	if !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("too many shapes error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Execute(ctx, fixedScene(), Options{}); err != context.Canceled {
		t.Errorf("canceled context error = %v", err)
	}
}

func TestExecuteDOT(t *testing.T) {
	r, _ := newTestRunner(t)
	res, err := r.Execute(context.Background(), fixedScene(), Options{Formats: []string{"dot"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(res.Artifacts["dot"]), "graph board {") {
		t.Errorf("dot artifact = %s", res.Artifacts["dot"])
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu      sync.Mutex
	events  []string
	shapes  int
	formats []string
}

func (h *recordingHooks) OnResolveStart(_ context.Context, n int, _ bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "resolve_start")
	h.shapes = n
}

func (h *recordingHooks) OnResolveComplete(context.Context, int, time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "resolve_complete")
}

func (h *recordingHooks) OnRenderStart(_ context.Context, formats []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "render_start")
	h.formats = formats
}

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "render_complete")
}

func TestExecuteCallsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), randomScene(3), Options{}); err != nil {
		t.Fatal(err)
	}

	want := []string{"resolve_start", "resolve_complete", "render_start", "render_complete"}
	if strings.Join(hooks.events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
	if hooks.shapes != 3 {
		t.Errorf("shape count = %d, want 3", hooks.shapes)
	}
	if len(hooks.formats) != 1 || hooks.formats[0] != "svg" {
		t.Errorf("formats = %v", hooks.formats)
	}
}

func TestSceneHashStable(t *testing.T) {
	a, err := SceneHash(fixedScene())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := SceneHash(fixedScene())
	if a != b {
		t.Error("SceneHash should be deterministic")
	}
	other := fixedScene()
	other.Shapes[0].Color = "blue"
	if c, _ := SceneHash(other); c == a {
		t.Error("changed scene should change the hash")
	}
}
