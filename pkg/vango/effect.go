package vango

import (
	"sync"
	"sync/atomic"
)

// maxEffectReruns bounds how often an effect may re-trigger itself within a
// single notification before the loop is cut.
const maxEffectReruns = 64

// Effect is a reactive side effect. It runs once when created and again
// whenever a signal it read during its last run changes. Re-runs happen
// synchronously inside the write that caused them, so state derived by an
// effect is consistent before the writer returns.
type Effect struct {
	id uint64

	fn      func() Cleanup
	cleanup Cleanup

	sources []*source
	owner   *Owner

	mu      sync.Mutex
	running bool
	rerun   bool

	disposed atomic.Bool
}

// MarkDirty implements Listener.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}

	e.mu.Lock()
	if e.running {
		e.rerun = true
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	e.run()
}

// ID implements Listener.
func (e *Effect) ID() uint64 { return e.id }

// IsDisposed reports whether the effect has been disposed.
func (e *Effect) IsDisposed() bool { return e.disposed.Load() }

func (e *Effect) run() {
	for i := 0; i < maxEffectReruns; i++ {
		if e.disposed.Load() {
			return
		}

		e.mu.Lock()
		e.running = true
		e.rerun = false
		sources := e.sources
		e.sources = nil
		e.mu.Unlock()

		if e.cleanup != nil {
			e.cleanup()
			e.cleanup = nil
		}
		for _, s := range sources {
			s.unsubscribe(e)
		}

		e.execGuarded()

		e.mu.Lock()
		e.running = false
		again := e.rerun
		e.mu.Unlock()

		if !again {
			return
		}
	}
}

// execGuarded clears the running flag if the body panics, so the effect can
// run again on the next notification.
func (e *Effect) execGuarded() {
	defer func() {
		if r := recover(); r != nil {
			e.mu.Lock()
			e.running = false
			e.mu.Unlock()
			panic(r)
		}
	}()
	e.exec()
}

func (e *Effect) exec() {
	oldListener := setCurrentListener(e)
	oldOwner := setCurrentOwner(e.owner)
	defer func() {
		setCurrentOwner(oldOwner)
		setCurrentListener(oldListener)
	}()

	e.cleanup = e.fn()
}

func (e *Effect) addSource(s *source) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.sources {
		if existing == s {
			return
		}
	}
	e.sources = append(e.sources, s)
}

// dispose runs the last cleanup and unsubscribes from every source.
func (e *Effect) dispose() {
	if e.disposed.Swap(true) {
		return
	}

	e.mu.Lock()
	sources := e.sources
	e.sources = nil
	cleanup := e.cleanup
	e.cleanup = nil
	e.mu.Unlock()

	for _, s := range sources {
		s.unsubscribe(e)
	}
	if cleanup != nil {
		cleanup()
	}
}

// CreateEffect creates an effect owned by the current owner and runs it.
//
//	CreateEffect(func() Cleanup {
//	    fmt.Println("path is", path.Get())
//	    return nil
//	})
func CreateEffect(fn func() Cleanup) *Effect {
	owner := getCurrentOwner()

	e := &Effect{
		id:    nextID(),
		fn:    fn,
		owner: owner,
	}
	if owner != nil {
		owner.registerEffect(e)
	}

	e.run()
	return e
}

// OnMount runs fn once, untracked, in the current owner.
func OnMount(fn func()) {
	CreateEffect(func() Cleanup {
		Untracked(fn)
		return nil
	})
}

// OnUnmount registers fn to run when the current owner is disposed.
func OnUnmount(fn func()) {
	if owner := getCurrentOwner(); owner != nil {
		owner.OnCleanup(fn)
	}
}

// OnChange runs callback whenever the signals read by deps change, skipping
// the initial run.
func OnChange(deps func(), callback func()) {
	first := true
	CreateEffect(func() Cleanup {
		deps()
		if first {
			first = false
			return nil
		}
		Untracked(callback)
		return nil
	})
}
