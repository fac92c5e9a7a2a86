package vtest

import (
	"strings"
	"testing"

	"github.com/cineverse/cineverse/pkg/dom"
	"github.com/cineverse/cineverse/pkg/render"
	"github.com/cineverse/cineverse/pkg/vdom"
)

// Mountable is a component with a subscription lifecycle.
type Mountable interface {
	vdom.Component
	Mount(doc *dom.Document)
	Unmount()
}

// OutsideID is the element id used for pointer-downs outside the component.
const OutsideID = "vtest-outside"

// Harness drives a mounted component.
type Harness struct {
	t    testing.TB
	comp Mountable
	doc  *dom.Document
}

// Mount mounts comp on a new Document. The component is unmounted when
// the test ends.
func Mount(t testing.TB, comp Mountable) *Harness {
	t.Helper()
	h := &Harness{t: t, comp: comp, doc: dom.NewDocument()}
	comp.Mount(h.doc)
	t.Cleanup(comp.Unmount)
	return h
}

// Document returns the host document.
func (h *Harness) Document() *dom.Document { return h.doc }

// Tree renders the component and assigns hydration IDs.
func (h *Harness) Tree() *vdom.VNode {
	root := h.comp.Render()
	vdom.AssignHIDs(root)
	return root
}

// HTML renders the component with hydration markers.
func (h *Harness) HTML() string {
	h.t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{Hydrate: true}).RenderToString(h.comp.Render())
	if err != nil {
		h.t.Fatalf("render: %v", err)
	}
	return html
}

// Find returns the element whose id, HID or aria-label equals ref.
func (h *Harness) Find(ref string) *vdom.VNode {
	return find(h.Tree(), ref)
}

func find(root *vdom.VNode, ref string) *vdom.VNode {
	if n := vdom.FindByID(root, ref); n != nil {
		return n
	}
	return vdom.Find(root, func(n *vdom.VNode) bool {
		label, ok := n.Attr("aria-label")
		return n.Kind == vdom.KindElement && ok && label == ref
	})
}

// KeyDown dispatches a document keydown.
func (h *Harness) KeyDown(key string) {
	h.doc.Dispatch(dom.KeyDownEvent(key))
}

// Scroll dispatches a window scroll to y.
func (h *Harness) Scroll(y float64) {
	h.doc.Dispatch(dom.ScrollEvent(y))
}

// PointerDown dispatches a pointer-down on the element ref. The event path
// holds the element and its ancestors, innermost first.
func (h *Harness) PointerDown(ref string) {
	h.t.Helper()
	tree := h.Tree()
	n := find(tree, ref)
	if n == nil {
		h.t.Fatalf("PointerDown: no element %q", ref)
	}
	h.doc.Dispatch(dom.PointerDownEvent(pathTo(tree, n)...))
}

// PointerDownOutside dispatches a pointer-down on an element outside the
// component.
func (h *Harness) PointerDownOutside() {
	h.doc.Dispatch(dom.PointerDownEvent(OutsideID, "body"))
}

// Click simulates a browser click on ref: a pointer-down on it followed,
// if the element is still rendered, by its click handler.
func (h *Harness) Click(ref string) {
	h.t.Helper()
	h.PointerDown(ref)

	n := find(h.Tree(), ref)
	if n == nil {
		return
	}
	switch fn := n.Handler("click").(type) {
	case nil:
	case func():
		fn()
	default:
		h.t.Fatalf("Click: unsupported handler type %T on %q", fn, ref)
	}
}

// ClickLabel clicks the element with aria-label label.
func (h *Harness) ClickLabel(label string) {
	h.t.Helper()
	h.Click(label)
}

// ExpectElement fails the test unless ref is rendered.
func (h *Harness) ExpectElement(ref string) *vdom.VNode {
	h.t.Helper()
	n := h.Find(ref)
	if n == nil {
		h.t.Errorf("expected element %q, got:\n%s", ref, truncate(h.HTML(), failureContext))
	}
	return n
}

// ExpectNoElement fails the test if ref is rendered.
func (h *Harness) ExpectNoElement(ref string) {
	h.t.Helper()
	if h.Find(ref) != nil {
		h.t.Errorf("expected no element %q, got:\n%s", ref, truncate(h.HTML(), failureContext))
	}
}

// ExpectAttr fails the test unless element ref has attr equal to value.
func (h *Harness) ExpectAttr(ref, attr, value string) {
	h.t.Helper()
	n := h.Find(ref)
	if n == nil {
		h.t.Errorf("expected element %q", ref)
		return
	}
	if got, _ := n.Attr(attr); got != value {
		h.t.Errorf("%s[%s] = %q, want %q", ref, attr, got, value)
	}
}

// ExpectHTML fails the test unless the hydrated HTML contains substr.
func (h *Harness) ExpectHTML(substr string) {
	h.t.Helper()
	if html := h.HTML(); !strings.Contains(html, substr) {
		h.t.Errorf("expected HTML to contain %q, got:\n%s", substr, truncate(html, failureContext))
	}
}

// ExpectListeners fails the test unless the document has n listeners.
func (h *Harness) ExpectListeners(n int) {
	h.t.Helper()
	if got := h.doc.TotalListeners(); got != n {
		h.t.Errorf("document has %d listeners, want %d", got, n)
	}
}

// pathTo returns the ids of n and its ancestors, the way the browser
// client reports a pointer target.
func pathTo(root, n *vdom.VNode) []string {
	ref := n.HID
	if ref == "" {
		ref = n.ID()
	}
	return vdom.PathTo(root, ref)
}
