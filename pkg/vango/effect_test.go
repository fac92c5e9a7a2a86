package vango

import "testing"

func TestEffectRunsImmediatelyAndOnChange(t *testing.T) {
	s := NewSignal(0)
	var seen []int

	e := CreateEffect(func() Cleanup {
		seen = append(seen, s.Get())
		return nil
	})
	defer e.dispose()

	s.Set(1)
	s.Set(2)

	want := []int{0, 1, 2}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestEffectCleanupBeforeRerunAndOnDispose(t *testing.T) {
	s := NewSignal(0)
	cleanups := 0

	e := CreateEffect(func() Cleanup {
		_ = s.Get()
		return func() { cleanups++ }
	})

	s.Set(1)
	if cleanups != 1 {
		t.Errorf("cleanups after rerun = %d, want 1", cleanups)
	}

	e.dispose()
	if cleanups != 2 {
		t.Errorf("cleanups after dispose = %d, want 2", cleanups)
	}
	if n := s.SubscriberCount(); n != 0 {
		t.Errorf("disposed effect still subscribed (%d)", n)
	}

	s.Set(2)
	if cleanups != 2 {
		t.Errorf("disposed effect reran")
	}
}

func TestEffectSelfWriteSettles(t *testing.T) {
	s := NewSignal(0)
	runs := 0

	e := CreateEffect(func() Cleanup {
		runs++
		if v := s.Get(); v < 3 {
			s.Set(v + 1)
		}
		return nil
	})
	defer e.dispose()

	if got := s.Peek(); got != 3 {
		t.Errorf("s = %d, want 3", got)
	}
	if runs != 4 {
		t.Errorf("runs = %d, want 4", runs)
	}
}

func TestOnChangeSkipsFirstRun(t *testing.T) {
	owner := NewOwner(nil)
	defer owner.Dispose()

	path := NewSignal("/movies")
	changes := 0
	WithOwner(owner, func() {
		OnChange(func() { _ = path.Get() }, func() { changes++ })
	})

	if changes != 0 {
		t.Fatalf("callback ran on mount")
	}
	path.Set("/genres")
	path.Set("/genres")
	path.Set("/watchlist")
	if changes != 2 {
		t.Errorf("changes = %d, want 2", changes)
	}
}
