package types

// Kind tags the variant of a placed element
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Geometry is the common placement record shared by every element.
// X and Y are the canvas-space top-left corner, Rotation is in degrees
// about that corner.
type Geometry struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

// CropBox is a normalized (0-1) crop rectangle
type CropBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Playback is the video-only payload. Geometry never reads it.
type Playback struct {
	Duration    float64 `json:"duration"`
	CurrentTime float64 `json:"currentTime"`
	IsPlaying   bool    `json:"isPlaying"`
	Volume      float64 `json:"volume"`
	Muted       bool    `json:"muted"`
}

// Element is a placed image or video on the canvas
type Element struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Geometry
	Src      string    `json:"src,omitempty"`
	Crop     *CropBox  `json:"crop,omitempty"`
	Playback *Playback `json:"playback,omitempty"`
}

// NewImage builds an uncropped, unrotated image element
func NewImage(id, src string, x, y, width, height float64) Element {
	return Element{
		ID:       id,
		Kind:     KindImage,
		Geometry: Geometry{X: x, Y: y, Width: width, Height: height},
		Src:      src,
	}
}

// NewVideo builds a paused video element with full volume
func NewVideo(id, src string, x, y, width, height, duration float64) Element {
	return Element{
		ID:       id,
		Kind:     KindVideo,
		Geometry: Geometry{X: x, Y: y, Width: width, Height: height},
		Src:      src,
		Playback: &Playback{Duration: duration, Volume: 1},
	}
}

// IsVideo reports whether the element is the video variant
func (e Element) IsVideo() bool {
	return e.Kind == KindVideo
}

// Split partitions elements into images and videos, preserving order
func Split(elements []Element) (images, videos []Element) {
	for _, e := range elements {
		if e.IsVideo() {
			videos = append(videos, e)
		} else {
			images = append(images, e)
		}
	}
	return images, videos
}

// Join concatenates images then videos into a fresh slice
func Join(images, videos []Element) []Element {
	all := make([]Element, 0, len(images)+len(videos))
	all = append(all, images...)
	return append(all, videos...)
}
