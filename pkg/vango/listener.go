package vango

// Listener is anything that can be notified when a dependency changes.
// Effects and render hosts implement it.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	MarkDirty()

	// ID returns a unique identifier used for deduplication.
	ID() uint64
}

// Cleanup is returned by effects to release what the effect acquired.
type Cleanup func()

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc struct {
	id uint64
	fn func()
}

// NewListener wraps fn as a Listener with a fresh ID.
func NewListener(fn func()) *ListenerFunc {
	return &ListenerFunc{id: nextID(), fn: fn}
}

// MarkDirty implements Listener.
func (l *ListenerFunc) MarkDirty() { l.fn() }

// ID implements Listener.
func (l *ListenerFunc) ID() uint64 { return l.id }
