package protocol

import (
	stderrors "errors"
	"reflect"
	"strings"
	"testing"

	"github.com/cineverse/cineverse/internal/errors"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Event
	}{
		{"click", `{"type":"click","hid":"h12"}`, Event{Type: EventClick, HID: "h12"}},
		{"keydown", `{"type":"keydown","key":"Escape"}`, Event{Type: EventKeyDown, Key: "Escape"}},
		{"pointerdown", `{"type":"pointerdown","path":["h3","h2","user-menu"]}`,
			Event{Type: EventPointerDown, Targets: []string{"h3", "h2", "user-menu"}}},
		{"pointerdown empty", `{"type":"pointerdown"}`, Event{Type: EventPointerDown}},
		{"scroll", `{"type":"scroll","y":42}`, Event{Type: EventScroll, ScrollY: 42}},
		{"scroll zero", `{"type":"scroll","y":0}`, Event{Type: EventScroll, ScrollY: 0}},
		{"navigate", `{"type":"navigate","path":"/genres"}`, Event{Type: EventNavigate, Path: "/genres"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEvent([]byte(tt.in))
			if err != nil {
				t.Fatalf("DecodeEvent error: %v", err)
			}
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("DecodeEvent = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestDecodeEventErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code string
	}{
		{"not json", `{"type":`, "E201"},
		{"unknown type", `{"type":"dblclick"}`, "E202"},
		{"missing type", `{}`, "E202"},
		{"click without hid", `{"type":"click"}`, "E201"},
		{"keydown without key", `{"type":"keydown"}`, "E201"},
		{"scroll without y", `{"type":"scroll"}`, "E201"},
		{"pointerdown path string", `{"type":"pointerdown","path":"user-menu"}`, "E201"},
		{"navigate relative", `{"type":"navigate","path":"genres"}`, "E201"},
		{"navigate array", `{"type":"navigate","path":["/genres"]}`, "E201"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent([]byte(tt.in))
			if !errors.HasCode(err, tt.code) {
				t.Errorf("DecodeEvent(%s) error = %v, want %s", tt.in, err, tt.code)
			}
		})
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	events := []Event{
		{Type: EventClick, HID: "h1"},
		{Type: EventPointerDown, Targets: []string{"a", "b"}},
		{Type: EventNavigate, Path: "/tv-shows"},
	}
	for _, e := range events {
		data, err := EncodeEvent(&e)
		if err != nil {
			t.Fatalf("EncodeEvent(%v) error: %v", e.Type, err)
		}
		got, err := DecodeEvent(data)
		if err != nil {
			t.Fatalf("DecodeEvent(%s) error: %v", data, err)
		}
		if !reflect.DeepEqual(*got, e) {
			t.Errorf("got %+v, want %+v", *got, e)
		}
	}

	if _, err := EncodeEvent(&Event{}); err == nil {
		t.Error("EncodeEvent(zero) should fail")
	}
}

func TestEventTypeString(t *testing.T) {
	for _, et := range []EventType{EventClick, EventKeyDown, EventPointerDown, EventScroll, EventNavigate} {
		back, ok := parseEventType(et.String())
		if !ok || back != et {
			t.Errorf("parseEventType(%q) = %v, %v", et.String(), back, ok)
		}
	}
	if EventType(0).String() != "unknown" {
		t.Error("zero EventType should be unknown")
	}
}

func TestFrames(t *testing.T) {
	data, err := RenderFrame(`<header role="banner"></header>`).Encode()
	if err != nil {
		t.Fatal(err)
	}
	f, err := DecodeFrame(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Type != FrameRender || !strings.Contains(f.HTML, `role="banner"`) {
		t.Errorf("render frame = %+v", f)
	}

	ef := ErrorFrame(errors.New("E203").WithDetail("h99"))
	if ef.Code != "E203" || ef.Message != "Unknown hydration id: h99" {
		t.Errorf("error frame = %+v", ef)
	}

	generic := ErrorFrame(stderrors.New("db password wrong"))
	if generic.Code != "E304" || strings.Contains(generic.Message, "password") {
		t.Errorf("uncoded error leaked: %+v", generic)
	}
}
