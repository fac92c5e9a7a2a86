package overlay

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cineverse/cineverse/pkg/dom"
	"github.com/cineverse/cineverse/pkg/vango"
)

func newPair() *Controller {
	c := New()
	c.Register("user", "user-menu")
	c.Register("mobile", "mobile-menu", "mobile-toggle")
	return c
}

func TestTriggerString(t *testing.T) {
	tests := map[Trigger]string{
		TriggerToggle:         "toggle",
		TriggerEscape:         "escape",
		TriggerOutsidePointer: "outside-pointer",
		TriggerRouteChange:    "route-change",
		TriggerExplicit:       "explicit",
		TriggerBackdrop:       "backdrop",
		Trigger(0):            "unknown",
	}
	for trig, want := range tests {
		if got := trig.String(); got != want {
			t.Errorf("Trigger(%d).String() = %q, want %q", trig, got, want)
		}
	}
}

func TestToggle(t *testing.T) {
	c := newPair()

	if c.IsOpen("user") || c.IsOpen("mobile") {
		t.Fatal("overlays should start closed")
	}
	if !c.Toggle("user") || !c.IsOpen("user") {
		t.Fatal("Toggle(user) should open it")
	}
	if c.Toggle("user") || c.IsOpen("user") {
		t.Fatal("second Toggle(user) should close it")
	}
}

func TestMutualExclusion(t *testing.T) {
	c := newPair()

	c.Toggle("user")
	c.Toggle("mobile")
	if c.IsOpen("user") {
		t.Error("opening mobile should close user")
	}
	if !c.IsOpen("mobile") {
		t.Error("mobile should be open")
	}

	c.Open("user")
	if c.IsOpen("mobile") {
		t.Error("Open(user) should close mobile")
	}
}

func TestMutualExclusionRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ids := []string{"user", "mobile"}

	for seq := 0; seq < 200; seq++ {
		c := newPair()
		for step := 0; step < 20; step++ {
			c.Toggle(ids[rng.Intn(len(ids))])
			if c.IsOpen("user") && c.IsOpen("mobile") {
				t.Fatalf("sequence %d step %d: both overlays open", seq, step)
			}
		}
	}
}

func TestCloseAndCloseAll(t *testing.T) {
	c := newPair()

	if c.Close("user", TriggerExplicit) {
		t.Error("Close on a closed overlay reported a transition")
	}
	c.Open("mobile")
	if !c.Close("mobile", TriggerBackdrop) {
		t.Error("Close on an open overlay reported no transition")
	}

	c.Open("user")
	c.CloseAll(TriggerRouteChange)
	if _, open := c.OpenID(); open {
		t.Error("CloseAll left an overlay open")
	}
}

func TestUnknownOverlay(t *testing.T) {
	c := newPair()
	if c.Toggle("nope") {
		t.Error("Toggle(unknown) = true")
	}
	if c.State("nope") != nil {
		t.Error("State(unknown) != nil")
	}
	if c.Close("nope", TriggerExplicit) {
		t.Error("Close(unknown) = true")
	}
}

func TestRegisterTwiceKeepsState(t *testing.T) {
	c := New()
	first := c.Register("user")
	c.Open("user")
	second := c.Register("user", "user-menu")

	if first != second {
		t.Error("re-register returned a different signal")
	}
	if !c.IsOpen("user") {
		t.Error("re-register reset the state")
	}
	if !c.Contains("user", []string{"user-menu"}) {
		t.Error("re-register did not replace bound ids")
	}
}

func TestObserver(t *testing.T) {
	c := newPair()
	var log []string
	c.Observe(func(id string, open bool, trig Trigger) {
		log = append(log, fmt.Sprintf("%s:%v:%s", id, open, trig))
	})

	c.Toggle("user")
	c.Toggle("mobile")
	c.CloseAll(TriggerEscape)
	c.CloseAll(TriggerEscape)

	want := []string{
		"user:true:toggle",
		"user:false:toggle",
		"mobile:true:toggle",
		"mobile:false:escape",
	}
	if fmt.Sprint(log) != fmt.Sprint(want) {
		t.Errorf("observer log = %v, want %v", log, want)
	}
}

func TestBindEscape(t *testing.T) {
	for _, key := range []string{"Escape", "Esc"} {
		t.Run(key, func(t *testing.T) {
			doc := dom.NewDocument()
			c := newPair()
			unbind := c.Bind(doc)
			defer unbind()

			c.Open("mobile")
			doc.Dispatch(dom.KeyDownEvent(key))
			if c.IsOpen("mobile") {
				t.Error("Escape should close the open overlay")
			}
		})
	}

	doc := dom.NewDocument()
	c := newPair()
	defer c.Bind(doc)()
	c.Open("user")
	doc.Dispatch(dom.KeyDownEvent("Enter"))
	if !c.IsOpen("user") {
		t.Error("Enter should not close the overlay")
	}
}

func TestBindPointerDown(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		path     []string
		wantOpen bool
	}{
		{"inside user menu", "user", []string{"h9", "user-trigger", "user-menu", "app"}, true},
		{"outside user menu", "user", []string{"h2", "logo", "app"}, false},
		{"empty path", "user", nil, false},
		{"mobile toggle counts as inside", "mobile", []string{"mobile-toggle", "app"}, true},
		{"inside mobile panel", "mobile", []string{"h40", "mobile-menu"}, true},
		{"user menu is outside mobile", "mobile", []string{"user-menu"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := dom.NewDocument()
			c := newPair()
			unbind := c.Bind(doc)
			defer unbind()

			c.Open(tt.open)
			doc.Dispatch(dom.PointerDownEvent(tt.path...))
			if got := c.IsOpen(tt.open); got != tt.wantOpen {
				t.Errorf("IsOpen(%s) = %v, want %v", tt.open, got, tt.wantOpen)
			}
		})
	}
}

func TestUnbindRemovesListeners(t *testing.T) {
	doc := dom.NewDocument()
	c := newPair()
	unbind := c.Bind(doc)
	if doc.TotalListeners() != 2 {
		t.Fatalf("TotalListeners = %d, want 2", doc.TotalListeners())
	}
	unbind()
	unbind()
	if doc.TotalListeners() != 0 {
		t.Errorf("TotalListeners after unbind = %d", doc.TotalListeners())
	}
}

func TestSingleNotificationPerTransition(t *testing.T) {
	c := newPair()
	user, mobile := c.State("user"), c.State("mobile")
	c.Open("user")

	runs := 0
	owner := vango.NewOwner(nil)
	defer owner.Dispose()
	owner.Effect(func() vango.Cleanup {
		user.Get()
		mobile.Get()
		runs++
		return nil
	})

	c.Toggle("mobile")
	if runs != 2 {
		t.Errorf("effect ran %d times, want 2 (initial + one batched switch)", runs)
	}
}
