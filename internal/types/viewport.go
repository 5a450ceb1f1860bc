package types

// Viewport is the affine transform screen = canvas*Scale + (X, Y)
type Viewport struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// IdentityViewport returns {0, 0, 1}
func IdentityViewport() Viewport {
	return Viewport{X: 0, Y: 0, Scale: 1}
}

// CanvasSize is the pixel size of the visible drawing surface
type CanvasSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a 2D coordinate in whichever space the caller is working in
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle. It is always derived, never stored.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x extent of the rectangle
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y extent of the rectangle
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects is the strict AABB test: touching edges do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Expand grows the rectangle by d on every side
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + d*2, Height: r.Height + d*2}
}

// Union returns the smallest rectangle containing both
func (r Rect) Union(o Rect) Rect {
	minX, minY := min(r.X, o.X), min(r.Y, o.Y)
	maxX, maxY := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds is a union rectangle plus its midpoint
type Bounds struct {
	Rect
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
}
