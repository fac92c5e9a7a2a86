package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cineverse/cineverse/internal/errors"
)

// EventType identifies the type of client event.
type EventType uint8

const (
	EventClick EventType = iota + 1
	EventKeyDown
	EventPointerDown
	EventScroll
	EventNavigate
)

// String returns the wire name of the event type.
func (et EventType) String() string {
	switch et {
	case EventClick:
		return "click"
	case EventKeyDown:
		return "keydown"
	case EventPointerDown:
		return "pointerdown"
	case EventScroll:
		return "scroll"
	case EventNavigate:
		return "navigate"
	default:
		return "unknown"
	}
}

func parseEventType(s string) (EventType, bool) {
	switch s {
	case "click":
		return EventClick, true
	case "keydown":
		return EventKeyDown, true
	case "pointerdown":
		return EventPointerDown, true
	case "scroll":
		return EventScroll, true
	case "navigate":
		return EventNavigate, true
	default:
		return 0, false
	}
}

// Event is a decoded client message.
type Event struct {
	Type EventType

	HID     string   // click
	Key     string   // keydown
	Targets []string // pointerdown
	ScrollY float64  // scroll
	Path    string   // navigate
}

// wireEvent is the JSON shape. "path" is an array for pointerdown and a
// string for navigate, so it is decoded in a second step.
type wireEvent struct {
	Type string          `json:"type"`
	HID  string          `json:"hid,omitempty"`
	Key  string          `json:"key,omitempty"`
	Y    *float64        `json:"y,omitempty"`
	Path json.RawMessage `json:"path,omitempty"`
}

// DecodeEvent parses one client message. Errors carry code E201 for
// malformed input and E202 for an unknown type.
func DecodeEvent(data []byte) (*Event, error) {
	var w wireEvent
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&w); err != nil {
		return nil, errors.New("E201").Wrap(err)
	}

	et, ok := parseEventType(w.Type)
	if !ok {
		return nil, errors.New("E202").WithDetailf("%q", w.Type)
	}

	e := &Event{Type: et}
	switch et {
	case EventClick:
		if w.HID == "" {
			return nil, errors.New("E201").WithDetail("click without hid")
		}
		e.HID = w.HID
	case EventKeyDown:
		if w.Key == "" {
			return nil, errors.New("E201").WithDetail("keydown without key")
		}
		e.Key = w.Key
	case EventPointerDown:
		if len(w.Path) > 0 {
			if err := json.Unmarshal(w.Path, &e.Targets); err != nil {
				return nil, errors.New("E201").WithDetail("pointerdown path must be an array of strings").Wrap(err)
			}
		}
	case EventScroll:
		if w.Y == nil {
			return nil, errors.New("E201").WithDetail("scroll without y")
		}
		e.ScrollY = *w.Y
	case EventNavigate:
		if err := json.Unmarshal(w.Path, &e.Path); err != nil || !strings.HasPrefix(e.Path, "/") {
			return nil, errors.New("E201").WithDetail("navigate path must be an absolute path string")
		}
	}
	return e, nil
}

// EncodeEvent encodes e in the client wire format. The server never sends
// events; this exists for clients written in Go and for tests.
func EncodeEvent(e *Event) ([]byte, error) {
	w := map[string]any{"type": e.Type.String()}
	switch e.Type {
	case EventClick:
		w["hid"] = e.HID
	case EventKeyDown:
		w["key"] = e.Key
	case EventPointerDown:
		targets := e.Targets
		if targets == nil {
			targets = []string{}
		}
		w["path"] = targets
	case EventScroll:
		w["y"] = e.ScrollY
	case EventNavigate:
		w["path"] = e.Path
	default:
		return nil, fmt.Errorf("protocol: cannot encode event type %d", e.Type)
	}
	return json.Marshal(w)
}
