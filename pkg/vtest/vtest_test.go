package vtest

import (
	"reflect"
	"testing"

	"github.com/cineverse/cineverse/pkg/dom"
	"github.com/cineverse/cineverse/pkg/vango"
	"github.com/cineverse/cineverse/pkg/vdom"
)

// counter is a minimal Mountable used to exercise the harness.
type counter struct {
	clicks  *vango.Signal[int]
	keys    []string
	paths   [][]string
	remove  []func()
	mounted bool
}

func newCounter() *counter {
	return &counter{clicks: vango.NewSignal(0)}
}

func (c *counter) Mount(doc *dom.Document) {
	c.mounted = true
	c.remove = append(c.remove,
		doc.AddEventListener(dom.KeyDown, func(e dom.Event) { c.keys = append(c.keys, e.Key) }),
		doc.AddEventListener(dom.PointerDown, func(e dom.Event) { c.paths = append(c.paths, e.Path) }),
	)
}

func (c *counter) Unmount() {
	c.mounted = false
	for _, r := range c.remove {
		r()
	}
}

func (c *counter) Render() *vdom.VNode {
	return vdom.Div(vdom.ID("root"),
		vdom.Button(vdom.ID("inc"), vdom.AriaLabel("Increment"),
			vdom.OnClick(func() { c.clicks.Update(func(n int) int { return n + 1 }) }),
			vdom.Textf("%d", c.clicks.Get()),
		),
	)
}

func TestRenderToString(t *testing.T) {
	html := RenderToString(vdom.Div(vdom.Class("card"), vdom.Text("Hello")))
	if html != `<div class="card">Hello</div>` {
		t.Errorf("RenderToString = %q", html)
	}
	ExpectContains(t, vdom.P(vdom.Text("x")), "<p>x</p>")
	ExpectNotContains(t, vdom.P(), "data-hid")
	ExpectElement(t, vdom.Nav(), "nav")
	ExpectAttribute(t, vdom.Button(vdom.AriaExpanded(false)), "aria-expanded", "false")
}

func TestHarnessClick(t *testing.T) {
	c := newCounter()
	h := Mount(t, c)

	h.ClickLabel("Increment")
	h.Click("inc")

	if got := c.clicks.Peek(); got != 2 {
		t.Errorf("clicks = %d, want 2", got)
	}
	if len(c.paths) != 2 {
		t.Fatalf("pointer-downs = %d, want 2", len(c.paths))
	}
	if got := c.paths[0]; !reflect.DeepEqual(got, []string{"inc", "h-inc", "root", "h-root"}) {
		t.Errorf("pointer path = %v, want [inc h-inc root h-root]", got)
	}
	h.ExpectHTML(`data-on-click="true"`)
	h.ExpectAttr("inc", "aria-label", "Increment")
}

func TestHarnessEvents(t *testing.T) {
	c := newCounter()
	h := Mount(t, c)

	h.KeyDown("Escape")
	h.PointerDownOutside()

	if len(c.keys) != 1 || c.keys[0] != "Escape" {
		t.Errorf("keys = %v", c.keys)
	}
	if len(c.paths) != 1 || c.paths[0][0] != OutsideID {
		t.Errorf("paths = %v", c.paths)
	}
	h.ExpectListeners(2)
	h.ExpectNoElement("missing")
	h.ExpectElement("root")
}

func TestHarnessUnmountsOnCleanup(t *testing.T) {
	c := newCounter()
	var doc *dom.Document

	t.Run("inner", func(t *testing.T) {
		h := Mount(t, c)
		doc = h.Document()
		if !c.mounted {
			t.Fatal("component not mounted")
		}
	})

	if c.mounted {
		t.Error("component still mounted after the test ended")
	}
	if n := doc.TotalListeners(); n != 0 {
		t.Errorf("listeners after cleanup = %d", n)
	}
}
