package atom

import (
	"math"
	"testing"

	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestBoundingBoxOf_NoRotationIsExact(t *testing.T) {
	for _, rot := range []float64{0, 360, 720, -360} {
		g := types.Geometry{X: 12.5, Y: -3, Width: 100, Height: 40, Rotation: rot}
		got := BoundingBoxOf(g)
		want := types.Rect{X: 12.5, Y: -3, Width: 100, Height: 40}
		if got != want {
			t.Errorf("rotation %v: got %+v, want %+v", rot, got, want)
		}
	}
}

func TestBoundingBoxOf_RotatesAboutTopLeft(t *testing.T) {
	tests := []struct {
		name string
		g    types.Geometry
		want types.Rect
	}{
		{
			name: "90 degrees swings the box to the left",
			g:    types.Geometry{X: 10, Y: 20, Width: 100, Height: 50, Rotation: 90},
			want: types.Rect{X: -40, Y: 20, Width: 50, Height: 100},
		},
		{
			name: "180 degrees flips up and left",
			g:    types.Geometry{X: 0, Y: 0, Width: 100, Height: 50, Rotation: 180},
			want: types.Rect{X: -100, Y: -50, Width: 100, Height: 50},
		},
		{
			name: "45 degrees square",
			g:    types.Geometry{X: 0, Y: 0, Width: 100, Height: 100, Rotation: 45},
			want: types.Rect{X: -100 / math.Sqrt2, Y: 0, Width: 200 / math.Sqrt2, Height: 200 / math.Sqrt2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundingBoxOf(tt.g)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) ||
				!near(got.Width, tt.want.Width) || !near(got.Height, tt.want.Height) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundingBoxOf_RotationNeverShrinksSquare(t *testing.T) {
	for rot := 1.0; rot < 360; rot += 7 {
		g := types.Geometry{Width: 80, Height: 80, Rotation: rot}
		box := BoundingBoxOf(g)
		if box.Width < g.Width-1e-9 || box.Height < g.Height-1e-9 {
			t.Errorf("rotation %v shrank the box: %+v", rot, box)
		}
	}
}

func TestBoundingBoxOf_DoesNotMutateInput(t *testing.T) {
	g := types.Geometry{X: 1, Y: 2, Width: 3, Height: 4, Rotation: 30}
	before := g
	_ = BoundingBoxOf(g)
	if g != before {
		t.Errorf("input changed: %+v", g)
	}
}

func TestScreenCanvasRoundTrip(t *testing.T) {
	viewports := []types.Viewport{
		{X: 0, Y: 0, Scale: 1},
		{X: 250, Y: -80, Scale: 0.1},
		{X: -1234.5, Y: 987.25, Scale: 5},
		{X: 3, Y: 4, Scale: -2},
	}
	points := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: -500.5, Y: 300.25}, {X: 1e6, Y: -1e6}}
	for _, v := range viewports {
		for _, p := range points {
			s := CanvasToScreen(p.X, p.Y, v)
			back := ScreenToCanvas(s.X, s.Y, v)
			if !near(back.X, p.X) || !near(back.Y, p.Y) {
				t.Errorf("viewport %+v point %+v: round trip gave %+v", v, p, back)
			}
		}
	}
}

func TestCanvasToScreen(t *testing.T) {
	got := CanvasToScreen(10, 20, types.Viewport{X: 5, Y: -5, Scale: 2})
	if got != (types.Point{X: 25, Y: 35}) {
		t.Errorf("got %+v", got)
	}
}

func TestVisibleRect(t *testing.T) {
	r := VisibleRect(types.Viewport{X: -200, Y: 100, Scale: 2}, types.CanvasSize{Width: 800, Height: 600})
	want := types.Rect{X: 100, Y: -50, Width: 400, Height: 300}
	if r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
}

func TestClampScale(t *testing.T) {
	tests := map[float64]float64{0.01: 0.1, 0.1: 0.1, 1.3: 1.3, 5: 5, 12: 5, -1: 0.1}
	for in, want := range tests {
		if got := ClampScale(in); got != want {
			t.Errorf("ClampScale(%v) = %v, want %v", in, got, want)
		}
	}
}
