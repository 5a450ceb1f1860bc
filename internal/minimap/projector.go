// Package minimap projects the canvas content and the visible area into a
// small fixed-size overview widget, and maps widget pointer positions back to
// viewport changes.
package minimap

import (
	"math"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/molecule"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

const (
	// WideDisplayMinWidth is the smallest display width that gets the large
	// widget and a world that always includes the visible area
	WideDisplayMinWidth = 768.0

	// FarDistance is the canvas distance between the visible center and the
	// content center beyond which the viewport is flagged far from content
	FarDistance = 1000.0

	fitRatio     = 0.9
	emptyHalfExt = 500.0
)

// Widget sizes in pixels
const (
	WideWidth    = 192.0
	WideHeight   = 128.0
	NarrowWidth  = 128.0
	NarrowHeight = 96.0
)

// Input is everything a projection is derived from
type Input struct {
	Images       []types.Element
	Videos       []types.Element
	Viewport     types.Viewport
	CanvasSize   types.CanvasSize
	DisplayWidth float64
}

// Projection maps the world rectangle onto the widget:
// widget = (canvas - World.XY) * Scale + Offset
type Projection struct {
	World          types.Rect       `json:"world"`
	Scale          float64          `json:"scale"`
	OffsetX        float64          `json:"offsetX"`
	OffsetY        float64          `json:"offsetY"`
	Content        types.Bounds     `json:"content"`
	Visible        types.Rect       `json:"visible"`
	HasContent     bool             `json:"hasContent"`
	FarFromContent bool             `json:"farFromContent"`
	Wide           bool             `json:"wide"`
	Width          float64          `json:"width"`
	Height         float64          `json:"height"`
	Viewport       types.Viewport   `json:"viewport"`
	CanvasSize     types.CanvasSize `json:"canvasSize"`

	images []types.Element
	videos []types.Element
}

// Project derives the widget transform for the current content and viewport
func Project(in Input) Projection {
	content, hasContent := molecule.RawContentBounds(in.Images, in.Videos)
	if !hasContent {
		content = types.Bounds{
			Rect:    types.Rect{X: -emptyHalfExt, Y: -emptyHalfExt, Width: emptyHalfExt * 2, Height: emptyHalfExt * 2},
			CenterX: 0,
			CenterY: 0,
		}
	}

	visible := atom.VisibleRect(in.Viewport, in.CanvasSize)
	wide := in.DisplayWidth >= WideDisplayMinWidth

	p := Projection{
		Content:    content,
		Visible:    visible,
		HasContent: hasContent,
		Wide:       wide,
		Viewport:   in.Viewport,
		CanvasSize: in.CanvasSize,
		images:     in.Images,
		videos:     in.Videos,
	}

	if wide {
		p.World = content.Rect.Union(visible)
		p.Width, p.Height = WideWidth, WideHeight
	} else {
		p.World = content.Rect
		p.Width, p.Height = NarrowWidth, NarrowHeight
	}

	vc := visible.Center()
	p.FarFromContent = math.Hypot(vc.X-content.CenterX, vc.Y-content.CenterY) > FarDistance

	p.Scale = math.Min(p.Width/p.World.Width, p.Height/p.World.Height) * fitRatio
	p.OffsetX = (p.Width - p.World.Width*p.Scale) / 2
	p.OffsetY = (p.Height - p.World.Height*p.Scale) / 2
	return p
}

// ToWidget maps a canvas point into widget pixels
func (p Projection) ToWidget(c types.Point) types.Point {
	return types.Point{
		X: (c.X-p.World.X)*p.Scale + p.OffsetX,
		Y: (c.Y-p.World.Y)*p.Scale + p.OffsetY,
	}
}

// ToCanvas is the inverse of ToWidget
func (p Projection) ToCanvas(w types.Point) types.Point {
	return types.Point{
		X: (w.X-p.OffsetX)/p.Scale + p.World.X,
		Y: (w.Y-p.OffsetY)/p.Scale + p.World.Y,
	}
}

// RectToWidget maps a canvas rectangle into widget pixels
func (p Projection) RectToWidget(r types.Rect) types.Rect {
	tl := p.ToWidget(types.Point{X: r.X, Y: r.Y})
	return types.Rect{X: tl.X, Y: tl.Y, Width: r.Width * p.Scale, Height: r.Height * p.Scale}
}

// Navigate returns the viewport whose visible area is centered on the canvas
// point under the widget position. The scale is kept.
func (p Projection) Navigate(widgetX, widgetY float64) types.Viewport {
	target := p.ToCanvas(types.Point{X: widgetX, Y: widgetY})
	return types.Viewport{
		X:     -(target.X*p.Viewport.Scale - p.CanvasSize.Width/2),
		Y:     -(target.Y*p.Viewport.Scale - p.CanvasSize.Height/2),
		Scale: p.Viewport.Scale,
	}
}
