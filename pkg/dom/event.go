package dom

// EventKind identifies a document-level event.
type EventKind uint8

const (
	Scroll EventKind = iota + 1
	KeyDown
	PointerDown
)

// String returns the DOM event name.
func (k EventKind) String() string {
	switch k {
	case Scroll:
		return "scroll"
	case KeyDown:
		return "keydown"
	case PointerDown:
		return "pointerdown"
	default:
		return "unknown"
	}
}

// ParseEventKind maps a DOM event name to an EventKind.
func ParseEventKind(name string) (EventKind, bool) {
	switch name {
	case "scroll":
		return Scroll, true
	case "keydown":
		return KeyDown, true
	case "pointerdown":
		return PointerDown, true
	default:
		return 0, false
	}
}

// Event is a document-level event. Only the fields of its kind are set.
type Event struct {
	Kind EventKind

	// ScrollY is the vertical scroll offset (Scroll).
	ScrollY float64

	// Key is the KeyboardEvent.key value (KeyDown).
	Key string

	// Path holds the ids of the target and its ancestors, innermost first,
	// like composedPath() (PointerDown).
	Path []string
}

// ScrollEvent builds a Scroll event.
func ScrollEvent(y float64) Event { return Event{Kind: Scroll, ScrollY: y} }

// KeyDownEvent builds a KeyDown event.
func KeyDownEvent(key string) Event { return Event{Kind: KeyDown, Key: key} }

// PointerDownEvent builds a PointerDown event.
func PointerDownEvent(path ...string) Event { return Event{Kind: PointerDown, Path: path} }

// Contains reports whether ref is on the event path.
func (e Event) Contains(ref string) bool {
	for _, p := range e.Path {
		if p == ref {
			return true
		}
	}
	return false
}
