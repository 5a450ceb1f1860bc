package minimap

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/jaypaulb/infinite-kanvas/internal/timing"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// CaptionHeight is the strip below the widget that holds its label
const CaptionHeight = 16

var (
	backgroundColor = color.RGBA{R: 0xf1, G: 0xf1, B: 0xf4, A: 0xff}
	imageColor      = color.RGBA{R: 0x18, G: 0x18, B: 0x1b, A: 0x80}
	videoColor      = color.RGBA{R: 0x18, G: 0x18, B: 0x1b, A: 0xff}
	viewportStroke  = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	viewportFill    = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0x1a}
	farStroke       = color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
	farFill         = color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0x33}
	contentStroke   = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	contentFill     = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0x1a}
	captionColor    = color.RGBA{R: 0x71, G: 0x71, B: 0x7a, A: 0xff}
)

// Render draws the widget as a PNG: element boxes, the viewport indicator
// (orange and thicker when far from content), the content indicator and a
// caption strip underneath.
func Render(p Projection, w io.Writer) error {
	timer := timing.Start("minimap_render")

	width := int(math.Ceil(p.Width))
	height := int(math.Ceil(p.Height))
	dc := gg.NewContext(width, height+CaptionHeight)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(backgroundColor)
	dc.DrawRoundedRectangle(0, 0, p.Width, p.Height, 8)
	dc.Fill()

	// Clip so an indicator reaching past the world does not paint the caption
	dc.DrawRectangle(0, 0, p.Width, p.Height)
	dc.Clip()

	items := p.Items()
	for _, item := range items {
		drawItem(dc, item, p.FarFromContent)
	}
	dc.ResetClip()

	if err := drawCaption(dc, p.Width, p.Height); err != nil {
		timer.StopAndLogDetails(false, "items=%d", len(items))
		return err
	}

	if err := dc.EncodePNG(w); err != nil {
		timer.StopAndLogDetails(false, "items=%d", len(items))
		return fmt.Errorf("failed to encode minimap: %w", err)
	}
	timer.StopAndLogDetails(true, "items=%d far=%t", len(items), p.FarFromContent)
	return nil
}

func drawItem(dc *gg.Context, item Item, far bool) {
	r := item.Rect
	switch item.Kind {
	case ItemImage:
		dc.SetColor(imageColor)
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		dc.Fill()
	case ItemVideo:
		dc.SetColor(videoColor)
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		dc.Fill()
	case ItemViewport:
		stroke, fill, lineWidth := viewportStroke, viewportFill, 2.0
		if far {
			stroke, fill, lineWidth = farStroke, farFill, 3.0
		}
		outlined(dc, r, stroke, fill, lineWidth)
	case ItemContent:
		outlined(dc, r, contentStroke, contentFill, 2)
	}
}

func outlined(dc *gg.Context, r types.Rect, stroke, fill color.Color, lineWidth float64) {
	dc.SetColor(fill)
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	dc.Fill()
	dc.SetLineWidth(lineWidth)
	dc.SetColor(stroke)
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	dc.Stroke()
}

// captionFont is parsed on first use. Faces keep glyph caches and are not
// safe for concurrent use, so each render builds its own.
var captionFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

func drawCaption(dc *gg.Context, width, height float64) error {
	ttfFont, err := captionFont()
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    10,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(captionColor)
	dc.DrawStringAnchored("Mini-map", width/2, height+CaptionHeight/2, 0.5, 0.5)
	return nil
}
