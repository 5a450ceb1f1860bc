package molecule

import (
	"math"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// BoundsFromCoordinates returns the union box of items and its center.
// ok is false for an empty input.
func BoundsFromCoordinates(items []types.Rect) (b types.Bounds, ok bool) {
	if len(items) == 0 {
		return types.Bounds{}, false
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, item := range items {
		minX = math.Min(minX, item.X)
		minY = math.Min(minY, item.Y)
		maxX = math.Max(maxX, item.X+item.Width)
		maxY = math.Max(maxY, item.Y+item.Height)
	}

	return types.Bounds{
		Rect: types.Rect{
			X:      minX,
			Y:      minY,
			Width:  maxX - minX,
			Height: maxY - minY,
		},
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
	}, true
}

// SelectionBounds returns the union of the rotation-aware boxes of every
// selected image and video. The center is the midpoint of the union box.
// ok is false when nothing is selected or no element matches.
func SelectionBounds(images, videos []types.Element, selectedIDs []string) (types.Bounds, bool) {
	if len(selectedIDs) == 0 {
		return types.Bounds{}, false
	}

	selected := atom.IDSet(selectedIDs)
	var boxes []types.Rect
	for _, group := range [][]types.Element{images, videos} {
		for _, el := range group {
			if _, ok := selected[el.ID]; ok {
				boxes = append(boxes, atom.BoundingBoxOf(el.Geometry))
			}
		}
	}
	return BoundsFromCoordinates(boxes)
}

// RawContentBounds is the union of the stored, unrotated footprints.
// The viewport fit and the mini-map measure content this way.
func RawContentBounds(images, videos []types.Element) (types.Bounds, bool) {
	boxes := make([]types.Rect, 0, len(images)+len(videos))
	for _, group := range [][]types.Element{images, videos} {
		for _, el := range group {
			boxes = append(boxes, atom.RawBoxOf(el.Geometry))
		}
	}
	return BoundsFromCoordinates(boxes)
}
