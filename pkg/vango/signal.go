package vango

import (
	"reflect"
	"sync"
)

// source is the type-erased subscriber list shared by all signals.
type source struct {
	id    uint64
	subs  []Listener
	subMu sync.RWMutex
}

func (s *source) subscribe(l Listener) {
	if l == nil {
		return
	}
	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}
	s.subs = append(s.subs, l)
}

func (s *source) unsubscribe(l Listener) {
	if l == nil {
		return
	}
	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *source) subscriberCount() int {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	return len(s.subs)
}

// notify marks subscribers dirty, or queues them when a batch is open.
// Subscribers are copied first so listeners may unsubscribe while notified.
func (s *source) notify() {
	s.subMu.RLock()
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	ctx := getTrackingContext()
	if ctx.batchDepth > 0 {
		ctx.pendingUpdates = append(ctx.pendingUpdates, subs...)
		return
	}
	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// track subscribes the current listener, if any.
func (s *source) track() {
	l := getCurrentListener()
	if l == nil {
		return
	}
	s.subscribe(l)
	if e, ok := l.(*Effect); ok {
		e.addSource(s)
	}
}

// Signal is a reactive value container.
type Signal[T any] struct {
	base  source
	value T
	mu    sync.RWMutex
	equal func(T, T) bool
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		base:  source{id: nextID()},
		value: initial,
	}
}

// Get returns the current value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	s.base.track()
	return value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores value and notifies subscribers if it differs from the
// current value.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.base.notify()
	}
}

// Update replaces the value with fn(current).
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	changed := !s.equals(s.value, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.base.notify()
	}
}

// Subscribe registers l for change notifications until Unsubscribe.
func (s *Signal[T]) Subscribe(l Listener) { s.base.subscribe(l) }

// Unsubscribe removes l.
func (s *Signal[T]) Unsubscribe(l Listener) { s.base.unsubscribe(l) }

// SubscriberCount reports how many listeners are subscribed.
func (s *Signal[T]) SubscriberCount() int { return s.base.subscriberCount() }

// WithEquals sets a custom equality function.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier of the signal.
func (s *Signal[T]) ID() uint64 { return s.base.id }

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	switch av := any(a).(type) {
	case bool:
		return av == any(b).(bool)
	case int:
		return av == any(b).(int)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	default:
		return reflect.DeepEqual(a, b)
	}
}
