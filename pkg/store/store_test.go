package store

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/scene"
	"github.com/matzehuels/shapeboard/pkg/shape"
)

func testScene(name string) scene.Scene {
	seed := uint64(7)
	return scene.Scene{
		Name:           name,
		Randomize:      scene.Bool(false),
		ContainerStyle: map[string]string{"background": "#fff"},
		Viewport:       &placement.Viewport{Width: 320, Height: 240},
		Seed:           &seed,
		Shapes: []shape.Descriptor{
			{Kind: shape.Square, Size: 10, Color: "red", Position: &shape.Point{X: 5, Y: 5}},
			{Kind: shape.Triangle, Size: 2.5, Color: "#00ff00"},
			{Kind: shape.KindUnknown("hexagon"), Size: 4, Color: "blue"},
		},
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	rec, err := s.Save(ctx, testScene("hello"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rec.ID == "" || rec.Name != "hello" || rec.CreatedAt.IsZero() {
		t.Errorf("record = %+v", rec)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != rec.ID || len(got.Scene.Shapes) != 3 {
		t.Errorf("Get = %+v", got)
	}

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); !errors.Is(err, errors.ErrCodeSceneNotFound) {
		t.Errorf("Get after delete = %v", err)
	}
	if err := s.Delete(ctx, rec.ID); !errors.Is(err, errors.ErrCodeSceneNotFound) {
		t.Errorf("second Delete = %v", err)
	}
}

func TestMemoryStoreNameDefaultsToID(t *testing.T) {
	s := NewMemoryStore()
	rec, err := s.Save(context.Background(), testScene(""))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Name != rec.ID {
		t.Errorf("Name = %q, want ID %q", rec.Name, rec.ID)
	}
}

func TestMemoryStoreValidation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Save(ctx, testScene(" padded ")); !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("bad name error = %v", err)
	}
	if _, err := s.Get(ctx, "not-a-uuid"); !errors.Is(err, errors.ErrCodeInvalidID) {
		t.Errorf("bad id error = %v", err)
	}
	if err := s.Delete(ctx, ""); !errors.Is(err, errors.ErrCodeInvalidID) {
		t.Errorf("empty id error = %v", err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.Save(ctx, testScene(name)); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].Name != "third" || list[2].Name != "first" {
		t.Errorf("List order = %+v", list)
	}
	if list[0].ShapeCount != 3 {
		t.Errorf("ShapeCount = %d", list[0].ShapeCount)
	}

	limited, _ := s.List(ctx, 2)
	if len(limited) != 2 || limited[0].Name != "third" {
		t.Errorf("limited List = %+v", limited)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	rec := Record{
		ID:        "0b6a4b1e-9d7c-4a43-9a5e-4a1e3a9b8c7d",
		Name:      "doc",
		Scene:     testScene("doc"),
		CreatedAt: time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
	}

	doc, err := toDocument(rec)
	if err != nil {
		t.Fatalf("toDocument: %v", err)
	}
	if doc.Shapes != 3 {
		t.Errorf("shape_count = %d", doc.Shapes)
	}

	back, err := fromDocument(doc)
	if err != nil {
		t.Fatalf("fromDocument: %v", err)
	}
	if back.ID != rec.ID || back.Name != rec.Name || !back.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("record header = %+v", back)
	}

	sc := back.Scene
	if sc.RandomizeEnabled() {
		t.Error("randomize flag lost")
	}
	if sc.Seed == nil || *sc.Seed != 7 {
		t.Errorf("seed = %v", sc.Seed)
	}
	if sc.Viewport == nil || *sc.Viewport != (placement.Viewport{Width: 320, Height: 240}) {
		t.Errorf("viewport = %v", sc.Viewport)
	}
	if sc.ContainerStyle["background"] != "#fff" {
		t.Errorf("container style = %v", sc.ContainerStyle)
	}
	if len(sc.Shapes) != 3 {
		t.Fatalf("shapes = %d", len(sc.Shapes))
	}
	if sc.Shapes[0].Kind != shape.Square || *sc.Shapes[0].Position != (shape.Point{X: 5, Y: 5}) {
		t.Errorf("shape 0 = %+v", sc.Shapes[0])
	}
	if sc.Shapes[1].Size != 2.5 || sc.Shapes[1].Position != nil {
		t.Errorf("shape 1 = %+v", sc.Shapes[1])
	}
	if sc.Shapes[2].Kind.Known() || sc.Shapes[2].Kind.Name() != "hexagon" {
		t.Errorf("unknown kind should survive storage, got %v", sc.Shapes[2].Kind)
	}
}

func TestNewMongoStoreRequiresURI(t *testing.T) {
	if _, err := NewMongoStore(context.Background(), MongoOptions{}); !errors.Is(err, errors.ErrCodeInvalidOptions) {
		t.Errorf("error = %v", err)
	}
}
