package minimap

import (
	"math"
	"testing"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

const (
	desktop = 1280.0
	phone   = 390.0
)

var screen = types.CanvasSize{Width: 1000, Height: 800}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProject_EmptyUsesDefaultWindow(t *testing.T) {
	p := Project(Input{Viewport: types.IdentityViewport(), CanvasSize: screen, DisplayWidth: phone})

	if p.HasContent {
		t.Error("HasContent should be false")
	}
	want := types.Rect{X: -500, Y: -500, Width: 1000, Height: 1000}
	if p.World != want {
		t.Errorf("world = %+v, want %+v", p.World, want)
	}
	if p.Content.CenterX != 0 || p.Content.CenterY != 0 {
		t.Errorf("content center = (%v, %v)", p.Content.CenterX, p.Content.CenterY)
	}
	if p.Width != NarrowWidth || p.Height != NarrowHeight {
		t.Errorf("widget = %vx%v", p.Width, p.Height)
	}
	if !approx(p.Scale, 0.0864) || !approx(p.OffsetX, 20.8) || !approx(p.OffsetY, 4.8) {
		t.Errorf("scale=%v offset=(%v, %v)", p.Scale, p.OffsetX, p.OffsetY)
	}
}

func TestProject_WideIncludesVisibleArea(t *testing.T) {
	images := []types.Element{types.NewImage("a", "", 0, 0, 100, 100)}
	p := Project(Input{Images: images, Viewport: types.IdentityViewport(), CanvasSize: screen, DisplayWidth: desktop})

	if !p.Wide || p.Width != WideWidth || p.Height != WideHeight {
		t.Fatalf("expected wide widget, got %+v", p)
	}
	if p.World != (types.Rect{X: 0, Y: 0, Width: 1000, Height: 800}) {
		t.Errorf("world = %+v", p.World)
	}
	if !approx(p.Scale, 0.144) || !approx(p.OffsetX, 24) || !approx(p.OffsetY, 6.4) {
		t.Errorf("scale=%v offset=(%v, %v)", p.Scale, p.OffsetX, p.OffsetY)
	}
}

func TestProject_NarrowShowsContentOnly(t *testing.T) {
	images := []types.Element{types.NewImage("a", "", 0, 0, 100, 100)}
	p := Project(Input{Images: images, Viewport: types.IdentityViewport(), CanvasSize: screen, DisplayWidth: phone})
	if p.Wide {
		t.Fatal("phone width should be narrow")
	}
	if p.World != (types.Rect{X: 0, Y: 0, Width: 100, Height: 100}) {
		t.Errorf("world = %+v", p.World)
	}
}

func TestProject_ContentIgnoresRotation(t *testing.T) {
	el := types.NewImage("a", "", 0, 0, 100, 50)
	el.Rotation = 90
	p := Project(Input{Images: []types.Element{el}, Viewport: types.IdentityViewport(), CanvasSize: screen, DisplayWidth: phone})
	if p.Content.Rect != (types.Rect{X: 0, Y: 0, Width: 100, Height: 50}) {
		t.Errorf("content = %+v", p.Content.Rect)
	}
}

func TestProject_WideBoundaryAt768(t *testing.T) {
	in := Input{Viewport: types.IdentityViewport(), CanvasSize: screen}
	in.DisplayWidth = 767
	if Project(in).Wide {
		t.Error("767 should be narrow")
	}
	in.DisplayWidth = 768
	if !Project(in).Wide {
		t.Error("768 should be wide")
	}
}

func TestProject_FarFromContent(t *testing.T) {
	// with no content the content center is the origin; the visible center
	// sits at (500 - vp.X, 400 - vp.Y) for an identity scale
	tests := []struct {
		name     string
		centerX  float64
		expected bool
	}{
		{"999 away", 999, false},
		{"exactly 1000", 1000, false},
		{"1001 away", 1001, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := types.Viewport{X: 500 - tt.centerX, Y: 400, Scale: 1}
			p := Project(Input{Viewport: vp, CanvasSize: screen, DisplayWidth: desktop})
			if p.FarFromContent != tt.expected {
				t.Errorf("FarFromContent = %v, want %v", p.FarFromContent, tt.expected)
			}
		})
	}
}

func TestProjection_RoundTrip(t *testing.T) {
	images := []types.Element{types.NewImage("a", "", -300, 120, 640, 480)}
	vp := types.Viewport{X: 250, Y: -75, Scale: 0.6}
	p := Project(Input{Images: images, Viewport: vp, CanvasSize: screen, DisplayWidth: desktop})

	for _, c := range []types.Point{{X: 0, Y: 0}, {X: -300, Y: 120}, {X: 1234.5, Y: -987.25}} {
		back := p.ToCanvas(p.ToWidget(c))
		if !approx(back.X, c.X) || !approx(back.Y, c.Y) {
			t.Errorf("%+v came back as %+v", c, back)
		}
	}
}

func TestProjection_NavigateCentersVisibleArea(t *testing.T) {
	images := []types.Element{types.NewImage("a", "", 0, 0, 400, 300)}
	vp := types.Viewport{X: 40, Y: 60, Scale: 1.5}
	p := Project(Input{Images: images, Viewport: vp, CanvasSize: screen, DisplayWidth: desktop})

	target := p.ToCanvas(types.Point{X: 100, Y: 50})
	next := p.Navigate(100, 50)
	if next.Scale != vp.Scale {
		t.Errorf("scale changed to %v", next.Scale)
	}
	center := atom.VisibleRect(next, screen).Center()
	if !approx(center.X, target.X) || !approx(center.Y, target.Y) {
		t.Errorf("visible center %+v, want %+v", center, target)
	}
}

func TestProjection_Items(t *testing.T) {
	images := []types.Element{types.NewImage("a", "", 0, 0, 100, 100)}
	videos := []types.Element{types.NewVideo("v", "", 200, 0, 100, 100, 3)}

	near := Project(Input{Images: images, Videos: videos, Viewport: types.IdentityViewport(), CanvasSize: screen, DisplayWidth: desktop})
	items := near.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	kinds := []ItemKind{ItemImage, ItemVideo, ItemViewport}
	for i, k := range kinds {
		if items[i].Kind != k {
			t.Errorf("item %d kind = %s, want %s", i, items[i].Kind, k)
		}
	}
	if items[0].Rect != near.RectToWidget(types.Rect{X: 0, Y: 0, Width: 100, Height: 100}) {
		t.Errorf("image rect = %+v", items[0].Rect)
	}

	far := Project(Input{Images: images, Videos: videos, Viewport: types.Viewport{X: -5000, Y: 0, Scale: 1}, CanvasSize: screen, DisplayWidth: desktop})
	items = far.Items()
	if len(items) != 4 || items[3].Kind != ItemContent {
		t.Fatalf("far projection should end with a content indicator: %+v", items)
	}

	empty := Project(Input{Viewport: types.Viewport{X: -5000, Y: 0, Scale: 1}, CanvasSize: screen, DisplayWidth: desktop})
	items = empty.Items()
	if len(items) != 1 || items[0].Kind != ItemViewport {
		t.Errorf("empty projection items = %+v", items)
	}
}
