package atom

import (
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// ToCanvasElement projects a placed element into the storage shape.
// The same id is used for the element and its media reference.
func ToCanvasElement(e types.Element) types.CanvasElement {
	ce := types.CanvasElement{
		ID:   e.ID,
		Type: e.Kind,
		Src:  e.Src,
		Transform: types.Transform{
			X:        e.X,
			Y:        e.Y,
			Scale:    1,
			Rotation: e.Rotation,
		},
		ZIndex: 0, // array order carries stacking
		Width:  e.Width,
		Height: e.Height,
	}
	if e.Crop != nil {
		crop := *e.Crop
		ce.Transform.CropBox = &crop
	}

	if e.IsVideo() {
		ce.VideoID = e.ID
		pb := types.Playback{}
		if e.Playback != nil {
			pb = *e.Playback
		}
		ce.Duration = &pb.Duration
		ce.CurrentTime = &pb.CurrentTime
		ce.IsPlaying = &pb.IsPlaying
		ce.Volume = &pb.Volume
		ce.Muted = &pb.Muted
	} else {
		ce.ImageID = e.ID
	}
	return ce
}

// FromCanvasElement rehydrates a stored element. It is the exact inverse of ToCanvasElement.
func FromCanvasElement(ce types.CanvasElement) types.Element {
	e := types.Element{
		ID:   ce.ID,
		Kind: ce.Type,
		Geometry: types.Geometry{
			X:        ce.Transform.X,
			Y:        ce.Transform.Y,
			Width:    ce.Width,
			Height:   ce.Height,
			Rotation: ce.Transform.Rotation,
		},
		Src: ce.Src,
	}
	if e.Kind == "" {
		e.Kind = types.KindImage
	}
	if ce.Transform.CropBox != nil {
		crop := *ce.Transform.CropBox
		e.Crop = &crop
	}

	if e.IsVideo() {
		pb := &types.Playback{}
		if ce.Duration != nil {
			pb.Duration = *ce.Duration
		}
		if ce.CurrentTime != nil {
			pb.CurrentTime = *ce.CurrentTime
		}
		if ce.IsPlaying != nil {
			pb.IsPlaying = *ce.IsPlaying
		}
		if ce.Volume != nil {
			pb.Volume = *ce.Volume
		}
		if ce.Muted != nil {
			pb.Muted = *ce.Muted
		}
		e.Playback = pb
	}
	return e
}

// CropFromMap builds a crop box from loosely typed input, filling the
// missing fields the way the canvas did: y defaults to 0, width and height to 1.
// It returns nil when no crop x is present.
func CropFromMap(m map[string]interface{}) *types.CropBox {
	x, ok := SafeFloat64(m, "cropX")
	if !ok {
		return nil
	}
	crop := &types.CropBox{X: x, Width: 1, Height: 1}
	if y, ok := SafeFloat64(m, "cropY"); ok {
		crop.Y = y
	}
	if w, ok := SafeFloat64(m, "cropWidth"); ok && w != 0 {
		crop.Width = w
	}
	if h, ok := SafeFloat64(m, "cropHeight"); ok && h != 0 {
		crop.Height = h
	}
	return crop
}
