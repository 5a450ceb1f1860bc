package molecule

import (
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// PlaceGeneratedImage turns a freshly generated image into a canvas element.
// The image is scaled to the reset size, keeping its aspect ratio, and put in
// the first free spot next to the existing content. Zero or negative source
// dimensions are treated as a square.
func PlaceGeneratedImage(id, src string, srcWidth, srcHeight float64, existing []types.Element) types.Element {
	if srcWidth <= 0 || srcHeight <= 0 {
		srcWidth, srcHeight = DefaultResetSize, DefaultResetSize
	}
	w, h := ResetSizeFor(srcWidth, srcHeight, DefaultResetSize)

	el := types.NewImage(id, src, 0, 0, w, h)
	pos := FindEmptySpaceForElement(el, existing, 0, DefaultPlacementGap)
	el.X, el.Y = pos.X, pos.Y

	logutil.Infof("[PlaceGeneratedImage] placed %s (%.0fx%.0f) at (%.1f, %.1f) among %d elements", id, w, h, el.X, el.Y, len(existing))
	return el
}
