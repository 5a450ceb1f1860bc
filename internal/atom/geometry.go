package atom

import (
	"math"

	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// Scale limits applied to every persisted viewport
const (
	MinScale = 0.1
	MaxScale = 5.0
)

// BoundingBoxOf returns the axis-aligned box of a rotated element.
// Rotation pivots on the top-left corner (x, y), not on the center.
func BoundingBoxOf(g types.Geometry) types.Rect {
	if g.Rotation == 0 || math.Mod(g.Rotation, 360) == 0 {
		return types.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
	}

	rad := g.Rotation * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	corners := [4]types.Point{
		{X: 0, Y: 0},
		{X: g.Width, Y: 0},
		{X: g.Width, Y: g.Height},
		{X: 0, Y: g.Height},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		rx := c.X*cos - c.Y*sin
		ry := c.X*sin + c.Y*cos
		minX = math.Min(minX, rx)
		maxX = math.Max(maxX, rx)
		minY = math.Min(minY, ry)
		maxY = math.Max(maxY, ry)
	}

	return types.Rect{
		X:      g.X + minX,
		Y:      g.Y + minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// RawBoxOf ignores rotation and returns the stored footprint
func RawBoxOf(g types.Geometry) types.Rect {
	return types.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
}

// CanvasToScreen converts canvas coordinates to screen coordinates
func CanvasToScreen(canvasX, canvasY float64, v types.Viewport) types.Point {
	return types.Point{
		X: canvasX*v.Scale + v.X,
		Y: canvasY*v.Scale + v.Y,
	}
}

// ScreenToCanvas is the inverse of CanvasToScreen. v.Scale must not be zero.
func ScreenToCanvas(screenX, screenY float64, v types.Viewport) types.Point {
	return types.Point{
		X: (screenX - v.X) / v.Scale,
		Y: (screenY - v.Y) / v.Scale,
	}
}

// VisibleRect returns the canvas-space rectangle currently shown on screen
func VisibleRect(v types.Viewport, size types.CanvasSize) types.Rect {
	topLeft := ScreenToCanvas(0, 0, v)
	return types.Rect{
		X:      topLeft.X,
		Y:      topLeft.Y,
		Width:  size.Width / v.Scale,
		Height: size.Height / v.Scale,
	}
}

// ClampScale clamps s to [MinScale, MaxScale]
func ClampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, s))
}
