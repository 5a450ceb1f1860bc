// Package canvas holds the live element collections, selection and viewport
// of one canvas. Fiber serves requests concurrently, so every access goes
// through the State mutex.
package canvas

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/molecule"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
	"github.com/jaypaulb/infinite-kanvas/internal/viewport"
)

var (
	// ErrNotFound is returned for an element id that is not on the canvas
	ErrNotFound = errors.New("element not found")
	// ErrDuplicateID is returned when adding an element whose id is taken
	ErrDuplicateID = errors.New("duplicate element id")
)

// Snapshot is a copy of the state, safe to read without the lock
type Snapshot struct {
	Images     []types.Element  `json:"images"`
	Videos     []types.Element  `json:"videos"`
	Viewport   types.Viewport   `json:"viewport"`
	CanvasSize types.CanvasSize `json:"canvasSize"`
	Selection  []string         `json:"selection"`

	// Version counts changes to the persisted part of the state
	Version uint64 `json:"version"`
}

// State is the element source and viewport sink of the canvas
type State struct {
	mu        sync.RWMutex
	images    []types.Element
	videos    []types.Element
	viewport  types.Viewport
	size      types.CanvasSize
	selection []string
	version   uint64
}

// New creates an empty canvas of the given screen size with the identity viewport
func New(size types.CanvasSize) *State {
	return &State{viewport: types.IdentityViewport(), size: size}
}

// Snapshot returns a copy of the current state
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Images:     slices.Clone(s.images),
		Videos:     slices.Clone(s.videos),
		Viewport:   s.viewport,
		CanvasSize: s.size,
		Selection:  slices.Clone(s.selection),
		Version:    s.version,
	}
}

// Elements returns images followed by videos, the order they are persisted in
func (s *State) Elements() []types.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.Join(s.images, s.videos)
}

// Load replaces the whole canvas, e.g. after reading it back from storage.
// The selection is cleared.
func (s *State) Load(elements []types.Element, v types.Viewport) {
	images, videos := types.Split(elements)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images, s.videos = images, videos
	s.viewport = viewport.Sanitize(v)
	s.selection = nil
	s.version++
}

// Add puts el on the canvas. With autoPlace its position is replaced by the
// first empty spot next to the existing content.
func (s *State) Add(el types.Element, autoPlace bool) (types.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := types.Join(s.images, s.videos)
	if s.hasLocked(el.ID) {
		return types.Element{}, fmt.Errorf("add %s: %w", el.ID, ErrDuplicateID)
	}
	if autoPlace {
		pos := molecule.FindEmptySpaceForElement(el, all, 0, molecule.DefaultPlacementGap)
		el.X, el.Y = pos.X, pos.Y
	}

	if el.IsVideo() {
		s.videos = append(s.videos, el)
	} else {
		s.images = append(s.images, el)
	}
	s.version++
	logutil.Debugf("[canvas] added %s %s at (%.1f, %.1f)", el.Kind, el.ID, el.X, el.Y)
	return el, nil
}

// AddGenerated places a generated image next to the existing content
func (s *State) AddGenerated(id, src string, width, height float64) types.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	el := molecule.PlaceGeneratedImage(id, src, width, height, types.Join(s.images, s.videos))
	s.images = append(s.images, el)
	s.version++
	return el
}

// Remove deletes an element and drops it from the selection
func (s *State) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.images) + len(s.videos)
	match := func(el types.Element) bool { return el.ID == id }
	s.images = slices.DeleteFunc(s.images, match)
	s.videos = slices.DeleteFunc(s.videos, match)
	if len(s.images)+len(s.videos) == before {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	s.selection = slices.DeleteFunc(s.selection, func(sel string) bool { return sel == id })
	s.version++
	return nil
}

// Select replaces the selection. Blank and unknown ids are dropped.
func (s *State) Select(ids []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(ids))
	selection := make([]string, 0, len(ids))
	for _, id := range ids {
		id = atom.NormalizeID(id)
		if _, dup := seen[id]; dup || id == "" || !s.hasLocked(id) {
			continue
		}
		seen[id] = struct{}{}
		selection = append(selection, id)
	}
	s.selection = selection
	return slices.Clone(selection)
}

// SelectionBounds returns the rotation-aware bounds of the selection
func (s *State) SelectionBounds() (types.Bounds, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return molecule.SelectionBounds(s.images, s.videos, s.selection)
}

// NeedsReset lists the elements that are rotated, resized or crowded
func (s *State) NeedsReset() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return molecule.ElementsNeedingReset(types.Join(s.images, s.videos), molecule.DefaultMinGap, molecule.DefaultResetSize)
}

// Reset straightens, resizes and re-places the given elements. With no ids,
// every element that needs a reset is reset. Returns the ids that were reset.
func (s *State) Reset(ids []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := types.Join(s.images, s.videos)
	if len(ids) == 0 {
		ids = molecule.ElementsNeedingReset(all, molecule.DefaultMinGap, molecule.DefaultResetSize)
	}
	present := make([]string, 0, len(ids))
	for _, id := range ids {
		if s.hasLocked(id) {
			present = append(present, id)
		}
	}
	if len(present) == 0 {
		return nil
	}

	reset := molecule.ResetElements(all, present, molecule.DefaultPlacementGap, molecule.DefaultResetSize)
	s.images, s.videos = types.Split(reset)
	s.version++
	logutil.Infof("[canvas] reset %d elements", len(present))
	return present
}

// Viewport returns the current viewport
func (s *State) Viewport() types.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

// SetViewport replaces the viewport. The scale is clamped and non-finite
// values fall back to the identity viewport.
func (s *State) SetViewport(v types.Viewport) types.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = viewport.Sanitize(v)
	s.version++
	return s.viewport
}

// UpdateViewport computes a new viewport from a consistent snapshot and stores it
func (s *State) UpdateViewport(fn func(Snapshot) types.Viewport) types.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = viewport.Sanitize(fn(s.snapshotLocked()))
	s.version++
	return s.viewport
}

// CanvasSize returns the screen size of the canvas
func (s *State) CanvasSize() types.CanvasSize {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// SetCanvasSize records a new screen size; non-positive sizes are ignored
func (s *State) SetCanvasSize(size types.CanvasSize) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size = size
}

func (s *State) hasLocked(id string) bool {
	match := func(el types.Element) bool { return el.ID == id }
	return slices.ContainsFunc(s.images, match) || slices.ContainsFunc(s.videos, match)
}
