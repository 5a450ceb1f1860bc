package types

// PointerEventType represents the kind of pointer event delivered by the view layer
type PointerEventType int

const (
	PointerNone PointerEventType = iota
	PointerDown
	PointerMove
	PointerUp
	PointerLeave
)

// String returns the wire name of the event type
func (t PointerEventType) String() string {
	switch t {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "none"
	}
}

// ParsePointerEventType maps a wire name back to its type, PointerNone if unknown
func ParsePointerEventType(s string) PointerEventType {
	switch s {
	case "down":
		return PointerDown
	case "move":
		return PointerMove
	case "up":
		return PointerUp
	case "leave":
		return PointerLeave
	default:
		return PointerNone
	}
}

// PointerEvent is a pointer event in the coordinate space of the widget that produced it.
// Source names that widget; a global listener receives events from every source.
type PointerEvent struct {
	Type   PointerEventType
	X, Y   float64
	Source string
}
