package dom

import "sync"

// Listener handles a dispatched event.
type Listener func(Event)

type registration struct {
	id uint64
	fn Listener
}

// Document holds document-level listeners. It is safe for concurrent use.
type Document struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[EventKind][]registration
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{listeners: make(map[EventKind][]registration)}
}

// AddEventListener registers fn for kind and returns a function that
// removes it. Calling the returned function more than once is a no-op.
func (d *Document) AddEventListener(kind EventKind, fn Listener) (remove func()) {
	if fn == nil {
		return func() {}
	}

	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], registration{id: id, fn: fn})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(kind, id) })
	}
}

func (d *Document) remove(kind EventKind, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	regs := d.listeners[kind]
	for i, r := range regs {
		if r.id == id {
			next := make([]registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			next = append(next, regs[i+1:]...)
			if len(next) == 0 {
				delete(d.listeners, kind)
			} else {
				d.listeners[kind] = next
			}
			return
		}
	}
}

// Dispatch runs the listeners of e.Kind synchronously, in registration
// order. The listener set is captured before the first call, so listeners
// added or removed meanwhile only affect later dispatches.
func (d *Document) Dispatch(e Event) {
	d.mu.Lock()
	regs := d.listeners[e.Kind]
	d.mu.Unlock()

	for _, r := range regs {
		r.fn(e)
	}
}

// ListenerCount returns the number of listeners registered for kind.
func (d *Document) ListenerCount(kind EventKind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[kind])
}

// TotalListeners returns the number of listeners across all kinds.
func (d *Document) TotalListeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, regs := range d.listeners {
		n += len(regs)
	}
	return n
}
