// Package viewport implements the zoom, fit and pan operations of the canvas.
// Every function returns a full replacement viewport; inputs are never modified.
package viewport

import (
	"math"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/molecule"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

const (
	// ZoomFactor is the step applied by ZoomIn and ZoomOut
	ZoomFactor = 1.2
	// FitPadding is kept free on every side when fitting content
	FitPadding = 100.0
	// MaxFitScale caps the fit so small content is not blown up past 200%
	MaxFitScale = 2.0
)

// ZoomIn zooms by ZoomFactor around the visible center
func ZoomIn(v types.Viewport, size types.CanvasSize) types.Viewport {
	return zoomAround(v, center(size), v.Scale*ZoomFactor)
}

// ZoomOut zooms by 1/ZoomFactor around the visible center
func ZoomOut(v types.Viewport, size types.CanvasSize) types.Viewport {
	return zoomAround(v, center(size), v.Scale/ZoomFactor)
}

// ZoomAt multiplies the scale by factor while keeping the canvas point under
// the given screen point fixed
func ZoomAt(v types.Viewport, screen types.Point, factor float64) types.Viewport {
	return zoomAround(v, screen, v.Scale*factor)
}

func zoomAround(v types.Viewport, screen types.Point, newScale float64) types.Viewport {
	newScale = atom.ClampScale(newScale)
	anchor := atom.ScreenToCanvas(screen.X, screen.Y, v)
	return types.Viewport{
		X:     screen.X - anchor.X*newScale,
		Y:     screen.Y - anchor.Y*newScale,
		Scale: newScale,
	}
}

// ResetView fits all images and videos into the canvas, or returns the
// identity viewport when there are none. Content is measured by the stored,
// unrotated footprints, unlike selection bounds.
func ResetView(images, videos []types.Element, size types.CanvasSize) types.Viewport {
	bounds, ok := molecule.RawContentBounds(images, videos)
	if !ok {
		return types.IdentityViewport()
	}
	return fit(bounds, size)
}

// FocusOn fits the given bounds the same way ResetView fits all content
func FocusOn(b types.Bounds, size types.CanvasSize) types.Viewport {
	return fit(b, size)
}

func fit(b types.Bounds, size types.CanvasSize) types.Viewport {
	scaleX := (size.Width - FitPadding*2) / b.Width
	scaleY := (size.Height - FitPadding*2) / b.Height
	scale := atom.ClampScale(math.Min(math.Min(scaleX, scaleY), MaxFitScale))

	return types.Viewport{
		X:     size.Width/2 - b.CenterX*scale,
		Y:     size.Height/2 - b.CenterY*scale,
		Scale: scale,
	}
}

// Pan moves the viewport by a screen-space delta
func Pan(v types.Viewport, dx, dy float64) types.Viewport {
	return types.Viewport{X: v.X + dx, Y: v.Y + dy, Scale: v.Scale}
}

// Sanitize clamps the scale of a viewport supplied from outside and replaces
// a non-finite record with the identity viewport
func Sanitize(v types.Viewport) types.Viewport {
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Scale) ||
		math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Scale, 0) {
		return types.IdentityViewport()
	}
	v.Scale = atom.ClampScale(v.Scale)
	return v
}

// Percent is the zoom level shown next to the zoom controls
func Percent(v types.Viewport) string {
	return atom.FormatZoomPercent(v.Scale)
}

func center(size types.CanvasSize) types.Point {
	return types.Point{X: size.Width / 2, Y: size.Height / 2}
}
