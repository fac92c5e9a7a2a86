package vango

import "testing"

func TestSignalGetSet(t *testing.T) {
	s := NewSignal(1)
	if got := s.Get(); got != 1 {
		t.Fatalf("Get() = %d, want 1", got)
	}

	s.Set(2)
	if got := s.Peek(); got != 2 {
		t.Errorf("Peek() = %d, want 2", got)
	}

	s.Update(func(n int) int { return n * 10 })
	if got := s.Peek(); got != 20 {
		t.Errorf("after Update Peek() = %d, want 20", got)
	}
}

func TestSignalNotifiesOnlyOnChange(t *testing.T) {
	s := NewSignal("a")
	calls := 0
	s.Subscribe(NewListener(func() { calls++ }))

	s.Set("a")
	if calls != 0 {
		t.Errorf("equal write notified %d times, want 0", calls)
	}

	s.Set("b")
	if calls != 1 {
		t.Errorf("changed write notified %d times, want 1", calls)
	}
}

func TestSignalSubscribeDeduplicates(t *testing.T) {
	s := NewSignal(0)
	l := NewListener(func() {})

	s.Subscribe(l)
	s.Subscribe(l)
	if n := s.SubscriberCount(); n != 1 {
		t.Fatalf("SubscriberCount() = %d, want 1", n)
	}

	s.Unsubscribe(l)
	if n := s.SubscriberCount(); n != 0 {
		t.Errorf("SubscriberCount() after Unsubscribe = %d, want 0", n)
	}
}

func TestWithListenerTracksReads(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal(2)
	dirty := 0
	l := NewListener(func() { dirty++ })

	WithListener(l, func() {
		_ = a.Get()
		_ = b.Peek()
	})

	b.Set(3)
	if dirty != 0 {
		t.Errorf("Peek subscribed the listener")
	}
	a.Set(5)
	if dirty != 1 {
		t.Errorf("dirty = %d, want 1", dirty)
	}
}

func TestUntracked(t *testing.T) {
	s := NewSignal(0)
	l := NewListener(func() {})

	WithListener(l, func() {
		Untracked(func() { _ = s.Get() })
	})

	if n := s.SubscriberCount(); n != 0 {
		t.Errorf("SubscriberCount() = %d, want 0", n)
	}
}

func TestBoolSignal(t *testing.T) {
	s := NewBoolSignal(false)

	s.Toggle()
	if !s.Peek() {
		t.Error("Toggle() from false should be true")
	}
	s.SetFalse()
	if s.Peek() {
		t.Error("SetFalse() should be false")
	}
	s.SetTrue()
	if !s.Peek() {
		t.Error("SetTrue() should be true")
	}
}

func TestBatchNotifiesOnce(t *testing.T) {
	a := NewBoolSignal(false)
	b := NewBoolSignal(true)
	calls := 0
	l := NewListener(func() { calls++ })
	a.Subscribe(l)
	b.Subscribe(l)

	Batch(func() {
		a.SetTrue()
		b.SetFalse()
		if calls != 0 {
			t.Errorf("notified inside batch")
		}
	})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestNestedBatch(t *testing.T) {
	s := NewSignal(0)
	calls := 0
	s.Subscribe(NewListener(func() { calls++ }))

	Batch(func() {
		Batch(func() { s.Set(1) })
		if calls != 0 {
			t.Errorf("inner batch flushed early")
		}
		s.Set(2)
	})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
