package types

// Transform is the placement block of a stored canvas element.
// Scale is always 1; size travels in Width/Height.
type Transform struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Scale    float64  `json:"scale"`
	Rotation float64  `json:"rotation"`
	CropBox  *CropBox `json:"cropBox,omitempty"`
}

// CanvasElement is the generic positioned-element shape the storage layer persists
type CanvasElement struct {
	ID        string    `json:"id"`
	Type      Kind      `json:"type"`
	ImageID   string    `json:"imageId,omitempty"`
	VideoID   string    `json:"videoId,omitempty"`
	Src       string    `json:"src,omitempty"`
	Transform Transform `json:"transform"`
	ZIndex    int       `json:"zIndex"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`

	// video only
	Duration    *float64 `json:"duration,omitempty"`
	CurrentTime *float64 `json:"currentTime,omitempty"`
	IsPlaying   *bool    `json:"isPlaying,omitempty"`
	Volume      *float64 `json:"volume,omitempty"`
	Muted       *bool    `json:"muted,omitempty"`
}
