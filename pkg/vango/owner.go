package vango

import (
	"sync"
	"sync/atomic"
)

// Owner is a mount scope that owns effects, cleanups and child owners.
// Disposing an Owner tears down everything it owns.
type Owner struct {
	id     uint64
	parent *Owner

	mu       sync.Mutex
	children []*Owner
	effects  []*Effect
	cleanups []func()

	disposed atomic.Bool
}

// NewOwner creates an Owner registered as a child of parent.
// A nil parent creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the unique identifier of the Owner.
func (o *Owner) ID() uint64 { return o.id }

// Parent returns the parent Owner, or nil for a root.
func (o *Owner) Parent() *Owner { return o.parent }

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool { return o.disposed.Load() }

// Effect creates an effect owned by o.
func (o *Owner) Effect(fn func() Cleanup) *Effect {
	var e *Effect
	WithOwner(o, func() {
		e = CreateEffect(fn)
	})
	return e
}

// OnCleanup registers fn to run when o is disposed. On an already disposed
// Owner fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// EffectCount returns the number of live effects owned directly by o.
func (o *Owner) EffectCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.effects)
}

func (o *Owner) addChild(child *Owner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

func (o *Owner) registerEffect(e *Effect) {
	if o.disposed.Load() {
		e.dispose()
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.effects = append(o.effects, e)
}

// Dispose tears down children, effects and cleanups, each in reverse order
// of registration. Every teardown step runs even if an earlier one panics;
// the first panic is re-raised once all steps have completed.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}
	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.mu.Lock()
	children := o.children
	effects := o.effects
	cleanups := o.cleanups
	o.children, o.effects, o.cleanups = nil, nil, nil
	o.mu.Unlock()

	var firstPanic any
	guard := func(fn func()) {
		defer func() {
			if r := recover(); r != nil && firstPanic == nil {
				firstPanic = r
			}
		}()
		fn()
	}

	for i := len(children) - 1; i >= 0; i-- {
		guard(children[i].Dispose)
	}
	for i := len(effects) - 1; i >= 0; i-- {
		guard(effects[i].dispose)
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		guard(cleanups[i])
	}

	if firstPanic != nil {
		panic(firstPanic)
	}
}
