package molecule

import (
	"math"
	"testing"

	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func img(id string, x, y, w, h float64) types.Element {
	return types.NewImage(id, "", x, y, w, h)
}

func vid(id string, x, y, w, h float64) types.Element {
	return types.NewVideo(id, "", x, y, w, h, 10)
}

func TestSelectionBounds_Empty(t *testing.T) {
	if _, ok := SelectionBounds(nil, nil, nil); ok {
		t.Errorf("empty collections and selection should have no bounds")
	}
	images := []types.Element{img("a", 0, 0, 10, 10)}
	videos := []types.Element{vid("v", 5, 5, 10, 10)}
	if _, ok := SelectionBounds(images, videos, []string{}); ok {
		t.Errorf("empty selection should have no bounds")
	}
	if _, ok := SelectionBounds(images, videos, []string{"missing"}); ok {
		t.Errorf("selection matching nothing should have no bounds")
	}
}

func TestSelectionBounds_Union(t *testing.T) {
	images := []types.Element{img("a", 0, 0, 1, 1), img("b", 10, 10, 1, 1), img("c", 500, 500, 1, 1)}
	b, ok := SelectionBounds(images, nil, []string{"a", "b"})
	if !ok {
		t.Fatal("expected bounds")
	}
	want := types.Bounds{Rect: types.Rect{X: 0, Y: 0, Width: 11, Height: 11}, CenterX: 5.5, CenterY: 5.5}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
}

func TestSelectionBounds_CenterIsUnionMidpointNotCentroid(t *testing.T) {
	images := []types.Element{img("a", 0, 0, 10, 10), img("b", 0, 0, 2, 2), img("c", 90, 0, 10, 10)}
	b, _ := SelectionBounds(images, nil, []string{"a", "b", "c"})
	// centroid of the three centers would be (35.33, 3.67)
	if b.CenterX != 50 || b.CenterY != 5 {
		t.Errorf("center = (%v, %v), want (50, 5)", b.CenterX, b.CenterY)
	}
}

func TestSelectionBounds_MixesImagesAndVideosAndRotation(t *testing.T) {
	images := []types.Element{img("a", 100, 100, 50, 50)}
	rotated := vid("v", 0, 0, 100, 50)
	rotated.Rotation = 90
	b, ok := SelectionBounds(images, []types.Element{rotated}, []string{"a", "v"})
	if !ok {
		t.Fatal("expected bounds")
	}
	// the rotated video spans x in [-50, 0], y in [0, 100]
	if !approx(b.X, -50) || !approx(b.Y, 0) || !approx(b.Right(), 150) || !approx(b.Bottom(), 150) {
		t.Errorf("got %+v", b)
	}
}

func TestBoundsFromCoordinates(t *testing.T) {
	if _, ok := BoundsFromCoordinates(nil); ok {
		t.Errorf("empty input should have no bounds")
	}
	b, ok := BoundsFromCoordinates([]types.Rect{{X: -10, Y: 5, Width: 20, Height: 5}, {X: 0, Y: -5, Width: 5, Height: 5}})
	if !ok {
		t.Fatal("expected bounds")
	}
	want := types.Bounds{Rect: types.Rect{X: -10, Y: -5, Width: 20, Height: 15}, CenterX: 0, CenterY: 2.5}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
}

func TestRawContentBoundsIgnoresRotation(t *testing.T) {
	rotated := img("r", 0, 0, 100, 50)
	rotated.Rotation = 90
	b, ok := RawContentBounds([]types.Element{rotated}, nil)
	if !ok {
		t.Fatal("expected bounds")
	}
	if b.Rect != (types.Rect{X: 0, Y: 0, Width: 100, Height: 50}) {
		t.Errorf("got %+v", b.Rect)
	}
}
