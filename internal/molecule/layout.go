package molecule

import (
	"math"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// Layout defaults
const (
	DefaultPlacementGap = 50.0
	DefaultMinGap       = 10.0
	DefaultResetSize    = 200.0

	// allowed size drift before an element counts as resized
	resetTolerance = 1.0
)

// FindEmptySpaceForElement proposes a top-left position for el that does not
// overlap the other elements. The first choice is to the right of everything,
// aligned with the topmost element; index shifts batch placements along the row.
// Any overlap of that candidate drops the element into a row below everything.
func FindEmptySpaceForElement(el types.Element, all []types.Element, index int, gap float64) types.Point {
	others := make([]types.Rect, 0, len(all))
	for _, other := range all {
		if other.ID == el.ID {
			continue
		}
		others = append(others, atom.BoundingBoxOf(other.Geometry))
	}

	if len(others) == 0 {
		return types.Point{X: 0, Y: 0}
	}

	rightmostX, topY := math.Inf(-1), math.Inf(1)
	for _, b := range others {
		rightmostX = math.Max(rightmostX, b.Right())
		topY = math.Min(topY, b.Y)
	}

	step := float64(index) * (el.Width + gap)
	candidate := types.Rect{
		X:      rightmostX + gap + step,
		Y:      topY,
		Width:  el.Width,
		Height: el.Height,
	}

	for _, b := range others {
		if candidate.Intersects(b) {
			bottomY := math.Inf(-1)
			for _, o := range others {
				bottomY = math.Max(bottomY, o.Bottom())
			}
			logutil.Debugf("[layout] %s overlaps at (%.1f, %.1f), falling back below y=%.1f", el.ID, candidate.X, candidate.Y, bottomY)
			return types.Point{X: gap + step, Y: bottomY + gap}
		}
	}

	return types.Point{X: candidate.X, Y: candidate.Y}
}

// CheckElementOverlapOrProximity reports whether a, grown by minGap on every
// side, intersects b. Only a is grown, so the check is not symmetric for
// elements of different sizes; call it both ways for a symmetric predicate.
func CheckElementOverlapOrProximity(a, b types.Geometry, minGap float64) bool {
	expanded := atom.BoundingBoxOf(a).Expand(minGap)
	return expanded.Intersects(atom.BoundingBoxOf(b))
}

// ResetSizeFor fits resetSize into the aspect ratio of width x height.
// Width is tried first; if the height would exceed resetSize the fit switches to height.
func ResetSizeFor(width, height, resetSize float64) (w, h float64) {
	aspect := width / height
	w, h = resetSize, resetSize/aspect
	if h > resetSize {
		h = resetSize
		w = resetSize * aspect
	}
	return w, h
}

// ElementNeedsReset reports whether el is rotated, off its canonical reset
// size by more than one unit, or overlapping/too close to another element.
func ElementNeedsReset(el types.Element, all []types.Element, minGap, resetSize float64) bool {
	if el.Rotation != 0 {
		return true
	}

	wantW, wantH := ResetSizeFor(el.Width, el.Height, resetSize)
	if math.Abs(el.Width-wantW) > resetTolerance || math.Abs(el.Height-wantH) > resetTolerance {
		return true
	}

	for _, other := range all {
		if other.ID == el.ID {
			continue
		}
		if CheckElementOverlapOrProximity(el.Geometry, other.Geometry, minGap) {
			return true
		}
	}
	return false
}

// ElementsNeedingReset returns the ids, in order, for which ElementNeedsReset holds
func ElementsNeedingReset(all []types.Element, minGap, resetSize float64) []string {
	var ids []string
	for _, el := range all {
		if ElementNeedsReset(el, all, minGap, resetSize) {
			ids = append(ids, el.ID)
		}
	}
	return ids
}

// ResetElements straightens and resizes the elements named by ids and lays
// them out one at a time with FindEmptySpaceForElement. Each one is placed
// against the untouched elements plus the batch members already placed, so
// the batch forms a row to the right of the content that stays put. The
// input slice is not modified; a new slice in the same order is returned.
func ResetElements(all []types.Element, ids []string, gap, resetSize float64) []types.Element {
	targets := atom.IDSet(ids)
	out := make([]types.Element, len(all))
	copy(out, all)

	obstacles := make([]types.Element, 0, len(all))
	for _, el := range all {
		if _, ok := targets[el.ID]; !ok {
			obstacles = append(obstacles, el)
		}
	}

	for i := range out {
		if _, ok := targets[out[i].ID]; !ok {
			continue
		}
		el := out[i]
		el.Rotation = 0
		el.Width, el.Height = ResetSizeFor(el.Width, el.Height, resetSize)

		pos := FindEmptySpaceForElement(el, obstacles, 0, gap)
		el.X, el.Y = pos.X, pos.Y
		out[i] = el
		obstacles = append(obstacles, el)
	}
	return out
}
