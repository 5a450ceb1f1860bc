// Package events dispatches pointer events from the view layer to whoever
// subscribed to them. A subscription is held until its release func is called.
package events

import (
	"sync"
	"sync/atomic"

	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// Handler receives a published event
type Handler func(types.PointerEvent)

type subscription struct {
	eventType types.PointerEventType
	handler   Handler
}

// Bus is a pointer event registry. Handlers run synchronously on the
// publishing goroutine, outside any lock, so they may subscribe or release.
type Bus struct {
	handlers sync.Map // id -> subscription
	nextID   atomic.Uint64
}

// NewBus creates an empty Bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers handler for every event of the given type, whatever
// its source. The returned func releases the subscription; calling it more
// than once is harmless.
func (b *Bus) Subscribe(eventType types.PointerEventType, handler Handler) (release func()) {
	id := b.nextID.Add(1)
	b.handlers.Store(id, subscription{eventType: eventType, handler: handler})
	logutil.Debugf("[events] subscribed #%d to %s", id, eventType)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.handlers.Delete(id)
			logutil.Debugf("[events] released #%d", id)
		})
	}
}

// Publish delivers e to every handler subscribed to its type and returns
// how many were called
func (b *Bus) Publish(e types.PointerEvent) int {
	delivered := 0
	b.handlers.Range(func(_, v any) bool {
		sub := v.(subscription)
		if sub.eventType == e.Type {
			sub.handler(e)
			delivered++
		}
		return true
	})
	return delivered
}

// Subscribers counts the live subscriptions for an event type
func (b *Bus) Subscribers(eventType types.PointerEventType) int {
	n := 0
	b.handlers.Range(func(_, v any) bool {
		if v.(subscription).eventType == eventType {
			n++
		}
		return true
	})
	return n
}
