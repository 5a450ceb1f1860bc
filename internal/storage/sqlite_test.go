package storage

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

func newRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return repo
}

func TestInitIsRepeatable(t *testing.T) {
	repo := newRepo(t)
	if err := repo.Init(context.Background()); err != nil {
		t.Errorf("second Init: %v", err)
	}
	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestCanvasRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	cropped := types.NewImage("img-1", "/media/abc", 10, 20, 300, 150)
	cropped.Rotation = 15
	cropped.Crop = &types.CropBox{X: 0.1, Y: 0, Width: 0.5, Height: 1}
	video := types.NewVideo("vid-1", "/media/v", -40, 5, 640, 360, 12.5)
	video.Playback.CurrentTime = 3
	video.Playback.Muted = true
	plain := types.NewImage("img-2", "/media/def", 400, 0, 200, 200)

	elements := []types.Element{cropped, plain, video}
	vp := types.Viewport{X: -120, Y: 33, Scale: 1.44}

	if err := repo.SaveCanvas(ctx, "main", elements, vp); err != nil {
		t.Fatalf("SaveCanvas: %v", err)
	}
	got, gotVP, err := repo.LoadCanvas(ctx, "main")
	if err != nil {
		t.Fatalf("LoadCanvas: %v", err)
	}
	if gotVP != vp {
		t.Errorf("viewport = %+v, want %+v", gotVP, vp)
	}
	if !reflect.DeepEqual(got, elements) {
		t.Errorf("elements differ:\n got  %+v\n want %+v", got, elements)
	}
}

func TestSaveCanvasReplacesElements(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first := []types.Element{types.NewImage("a", "", 0, 0, 10, 10), types.NewImage("b", "", 20, 0, 10, 10)}
	if err := repo.SaveCanvas(ctx, "c", first, types.IdentityViewport()); err != nil {
		t.Fatal(err)
	}
	second := []types.Element{types.NewImage("b", "", 0, 0, 10, 10)}
	if err := repo.SaveCanvas(ctx, "c", second, types.Viewport{Scale: 2}); err != nil {
		t.Fatal(err)
	}

	got, vp, err := repo.LoadCanvas(ctx, "c")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "b" || got[0].X != 0 {
		t.Errorf("elements = %+v", got)
	}
	if vp.Scale != 2 {
		t.Errorf("viewport = %+v", vp)
	}
}

func TestLoadCanvasNotFound(t *testing.T) {
	repo := newRepo(t)
	_, _, err := repo.LoadCanvas(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEmptyCanvas(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	if err := repo.SaveCanvas(ctx, "empty", nil, types.IdentityViewport()); err != nil {
		t.Fatal(err)
	}
	got, vp, err := repo.LoadCanvas(ctx, "empty")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 || vp != types.IdentityViewport() {
		t.Errorf("got %v %+v", got, vp)
	}
}

func TestMedia(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	data := []byte{0x89, 'P', 'N', 'G'}
	id, err := repo.SaveMedia(ctx, "image/png", data)
	if err != nil {
		t.Fatalf("SaveMedia: %v", err)
	}
	if id == "" {
		t.Fatal("empty id")
	}

	m, err := repo.GetMedia(ctx, id)
	if err != nil {
		t.Fatalf("GetMedia: %v", err)
	}
	if m.MimeType != "image/png" || !bytes.Equal(m.Data, data) {
		t.Errorf("media = %+v", m)
	}

	if _, err := repo.GetMedia(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
