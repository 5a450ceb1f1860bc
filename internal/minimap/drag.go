package minimap

import (
	"sync"

	"github.com/jaypaulb/infinite-kanvas/internal/events"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// Source is the event source name of the mini-map widget
const Source = "minimap"

// NavigateFunc is called with a widget position whenever the drag moves the viewport
type NavigateFunc func(widgetX, widgetY float64)

// Drag tracks a click-and-drag navigation on the widget. Down and move events
// are taken from the widget only; the drag ends on a pointer-up from any
// source, so releasing the button outside the widget does not leave it stuck.
type Drag struct {
	bus      *events.Bus
	navigate NavigateFunc

	mu         sync.Mutex
	dragging   bool
	releaseUp  func()
	widgetSubs []func()
}

// NewDrag subscribes to the widget's pointer events on bus
func NewDrag(bus *events.Bus, navigate NavigateFunc) *Drag {
	d := &Drag{bus: bus, navigate: navigate}
	d.widgetSubs = []func(){
		bus.Subscribe(types.PointerDown, d.fromWidget(d.onDown)),
		bus.Subscribe(types.PointerMove, d.fromWidget(d.onMove)),
		bus.Subscribe(types.PointerLeave, d.fromWidget(func(types.PointerEvent) { d.end() })),
	}
	return d
}

func (d *Drag) fromWidget(h events.Handler) events.Handler {
	return func(e types.PointerEvent) {
		if e.Source == Source {
			h(e)
		}
	}
}

func (d *Drag) onDown(e types.PointerEvent) {
	d.mu.Lock()
	d.dragging = true
	if d.releaseUp == nil {
		d.releaseUp = d.bus.Subscribe(types.PointerUp, func(types.PointerEvent) { d.end() })
	}
	d.mu.Unlock()

	logutil.Debugf("[minimap] drag start at (%.1f, %.1f)", e.X, e.Y)
	d.navigate(e.X, e.Y)
}

func (d *Drag) onMove(e types.PointerEvent) {
	if !d.Dragging() {
		return
	}
	d.navigate(e.X, e.Y)
}

func (d *Drag) end() {
	d.mu.Lock()
	release := d.releaseUp
	wasDragging := d.dragging
	d.dragging = false
	d.releaseUp = nil
	d.mu.Unlock()

	if release != nil {
		release()
	}
	if wasDragging {
		logutil.Debugf("[minimap] drag end")
	}
}

// Dragging reports whether a drag is in progress
func (d *Drag) Dragging() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dragging
}

// Close ends any drag and releases every subscription
func (d *Drag) Close() {
	d.end()
	d.mu.Lock()
	subs := d.widgetSubs
	d.widgetSubs = nil
	d.mu.Unlock()
	for _, release := range subs {
		release()
	}
}
