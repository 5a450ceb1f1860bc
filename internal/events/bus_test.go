package events

import (
	"sync"
	"testing"

	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

func TestPublishReachesMatchingHandlers(t *testing.T) {
	bus := NewBus()
	var ups, downs int
	bus.Subscribe(types.PointerUp, func(types.PointerEvent) { ups++ })
	bus.Subscribe(types.PointerDown, func(types.PointerEvent) { downs++ })

	if n := bus.Publish(types.PointerEvent{Type: types.PointerUp, Source: "canvas"}); n != 1 {
		t.Errorf("delivered = %d, want 1", n)
	}
	if ups != 1 || downs != 0 {
		t.Errorf("ups=%d downs=%d", ups, downs)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	bus := NewBus()
	calls := 0
	release := bus.Subscribe(types.PointerMove, func(types.PointerEvent) { calls++ })
	release()
	release()

	bus.Publish(types.PointerEvent{Type: types.PointerMove})
	if calls != 0 {
		t.Errorf("released handler was called %d times", calls)
	}
	if n := bus.Subscribers(types.PointerMove); n != 0 {
		t.Errorf("subscribers = %d", n)
	}
}

func TestHandlerMayReleaseItself(t *testing.T) {
	bus := NewBus()
	calls := 0
	var release func()
	release = bus.Subscribe(types.PointerUp, func(types.PointerEvent) {
		calls++
		release()
	})

	bus.Publish(types.PointerEvent{Type: types.PointerUp})
	bus.Publish(types.PointerEvent{Type: types.PointerUp})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewBus()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release := bus.Subscribe(types.PointerDown, func(types.PointerEvent) {})
			release()
		}()
		go func() {
			defer wg.Done()
			bus.Publish(types.PointerEvent{Type: types.PointerDown})
		}()
	}
	wg.Wait()
	if n := bus.Subscribers(types.PointerDown); n != 0 {
		t.Errorf("leaked %d subscriptions", n)
	}
}
