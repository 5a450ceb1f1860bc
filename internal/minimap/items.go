package minimap

import (
	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// ItemKind tells the renderer how to draw an item
type ItemKind string

const (
	ItemImage    ItemKind = "image"
	ItemVideo    ItemKind = "video"
	ItemViewport ItemKind = "viewport"
	ItemContent  ItemKind = "content"
)

// Item is one rectangle of the widget, in widget pixels
type Item struct {
	Kind ItemKind   `json:"kind"`
	ID   string     `json:"id,omitempty"`
	Rect types.Rect `json:"rect"`
}

// Items lists what the widget shows, in paint order: images, videos, the
// viewport indicator and, when the viewport is far from existing content, the
// content indicator. Element boxes ignore rotation.
func (p Projection) Items() []Item {
	items := make([]Item, 0, len(p.images)+len(p.videos)+2)
	for _, el := range p.images {
		items = append(items, Item{Kind: ItemImage, ID: el.ID, Rect: p.RectToWidget(atom.RawBoxOf(el.Geometry))})
	}
	for _, el := range p.videos {
		items = append(items, Item{Kind: ItemVideo, ID: el.ID, Rect: p.RectToWidget(atom.RawBoxOf(el.Geometry))})
	}

	items = append(items, Item{Kind: ItemViewport, Rect: p.RectToWidget(p.Visible)})
	if p.FarFromContent && p.HasContent {
		items = append(items, Item{Kind: ItemContent, Rect: p.RectToWidget(p.Content.Rect)})
	}
	return items
}
