package overlay

import (
	"sync"

	"github.com/cineverse/cineverse/pkg/dom"
	"github.com/cineverse/cineverse/pkg/vango"
)

// Observer is notified after every transition.
type Observer func(id string, open bool, trigger Trigger)

type entry struct {
	id    string
	bound []string
	state *vango.BoolSignal
}

type transition struct {
	e    *entry
	open bool
}

// Controller is a state machine over a set of overlays. At most one
// overlay is open at any time. Safe for concurrent use, though a live
// session drives it from a single goroutine.
type Controller struct {
	mu        sync.Mutex
	order     []*entry
	byID      map[string]*entry
	observers []Observer
}

// New creates an empty Controller.
func New() *Controller {
	return &Controller{byID: make(map[string]*entry)}
}

// Register declares overlay id, initially closed. bound lists the DOM ids
// whose subtrees count as inside the overlay; id itself is always included.
// The overlay's toggle control must be bound too, otherwise the pointer-down
// preceding its click closes the overlay and the click reopens it.
// Registering an existing id replaces its bound ids and keeps its state.
func (c *Controller) Register(id string, bound ...string) *vango.BoolSignal {
	c.mu.Lock()
	defer c.mu.Unlock()

	refs := append([]string{id}, bound...)
	if e, ok := c.byID[id]; ok {
		e.bound = refs
		return e.state
	}

	e := &entry{id: id, bound: refs, state: vango.NewBoolSignal(false)}
	c.byID[id] = e
	c.order = append(c.order, e)
	return e.state
}

// State returns the signal of overlay id, or nil if it is not registered.
func (c *Controller) State(id string) *vango.BoolSignal {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.byID[id]; ok {
		return e.state
	}
	return nil
}

// Observe adds an observer.
func (c *Controller) Observe(fn Observer) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// IsOpen reports whether overlay id is open. It does not track.
func (c *Controller) IsOpen(id string) bool {
	if s := c.State(id); s != nil {
		return s.Peek()
	}
	return false
}

// OpenID returns the open overlay, if any.
func (c *Controller) OpenID() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.order {
		if e.state.Peek() {
			return e.id, true
		}
	}
	return "", false
}

// Open opens id and closes every other overlay.
func (c *Controller) Open(id string) {
	c.open(id, TriggerExplicit)
}

// Toggle flips id. Opening closes every other overlay. It returns the new
// state of id; unknown ids stay closed.
func (c *Controller) Toggle(id string) bool {
	if c.IsOpen(id) {
		c.Close(id, TriggerToggle)
		return false
	}
	return c.open(id, TriggerToggle)
}

// Close closes id if it is open and reports whether it was.
func (c *Controller) Close(id string, trigger Trigger) bool {
	c.mu.Lock()
	e, ok := c.byID[id]
	c.mu.Unlock()
	if !ok || !e.state.Peek() {
		return false
	}
	c.apply([]transition{{e: e, open: false}}, trigger)
	return true
}

// CloseAll closes every open overlay.
func (c *Controller) CloseAll(trigger Trigger) {
	c.mu.Lock()
	var ts []transition
	for _, e := range c.order {
		if e.state.Peek() {
			ts = append(ts, transition{e: e, open: false})
		}
	}
	c.mu.Unlock()
	c.apply(ts, trigger)
}

// Contains reports whether path (innermost first) passes through one of
// the bound ids of overlay id.
func (c *Controller) Contains(id string, path []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.byID[id]
	if !ok {
		return false
	}
	return e.contains(path)
}

// DismissOutside closes every open overlay whose bound subtrees do not
// contain path.
func (c *Controller) DismissOutside(path []string) {
	c.mu.Lock()
	var ts []transition
	for _, e := range c.order {
		if e.state.Peek() && !e.contains(path) {
			ts = append(ts, transition{e: e, open: false})
		}
	}
	c.mu.Unlock()
	c.apply(ts, TriggerOutsidePointer)
}

// Bind subscribes the controller to doc: Escape closes every overlay and a
// pointer-down outside an open overlay closes it. The returned function
// removes both listeners.
func (c *Controller) Bind(doc *dom.Document) (unbind func()) {
	removeKey := doc.AddEventListener(dom.KeyDown, func(e dom.Event) {
		if isEscape(e.Key) {
			c.CloseAll(TriggerEscape)
		}
	})
	removePointer := doc.AddEventListener(dom.PointerDown, func(e dom.Event) {
		c.DismissOutside(e.Path)
	})
	return func() {
		removePointer()
		removeKey()
	}
}

func (c *Controller) open(id string, trigger Trigger) bool {
	c.mu.Lock()
	target, ok := c.byID[id]
	if !ok {
		c.mu.Unlock()
		return false
	}
	var ts []transition
	for _, e := range c.order {
		if e != target && e.state.Peek() {
			ts = append(ts, transition{e: e, open: false})
		}
	}
	if !target.state.Peek() {
		ts = append(ts, transition{e: target, open: true})
	}
	c.mu.Unlock()

	c.apply(ts, trigger)
	return true
}

// apply writes all transitions in one batch, then notifies observers.
// The lock is not held so effects reacting to the states may call back in.
func (c *Controller) apply(ts []transition, trigger Trigger) {
	if len(ts) == 0 {
		return
	}

	vango.Batch(func() {
		for _, t := range ts {
			t.e.state.Set(t.open)
		}
	})

	c.mu.Lock()
	observers := append([]Observer(nil), c.observers...)
	c.mu.Unlock()

	for _, t := range ts {
		for _, fn := range observers {
			fn(t.e.id, t.open, trigger)
		}
	}
}

func (e *entry) contains(path []string) bool {
	for _, p := range path {
		for _, b := range e.bound {
			if p == b {
				return true
			}
		}
	}
	return false
}

func isEscape(key string) bool {
	return key == "Escape" || key == "Esc"
}
