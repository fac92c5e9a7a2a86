// Package vango provides the reactive core used by CineVerse components.
//
// Components keep their state in signals. Reading a signal while a listener
// is being tracked (a render pass or an effect body) subscribes that
// listener, and writing the signal marks every subscriber dirty.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	open := NewBoolSignal(false)
//	open.Toggle()
//	if open.Get() { ... }
//
// Effect runs side effects when its dependencies change. The Cleanup it
// returns runs before the next run and when the owning scope is disposed:
//
//	owner.Effect(func() Cleanup {
//	    remove := doc.AddEventListener(dom.EventScroll, onScroll)
//	    return Cleanup(remove)
//	})
//
// Owner is a mount scope. Disposing it disposes its effects, child owners
// and registered cleanups, in reverse order of registration.
//
// # Batching
//
//	Batch(func() {
//	    a.Set(true)
//	    b.Set(false)
//	})  // subscribers are notified once, after both writes
//
// # Thread Safety
//
// Signals and owners are safe for concurrent use. Dependency tracking is
// per goroutine, so concurrent sessions never observe each other's
// listeners.
package vango
