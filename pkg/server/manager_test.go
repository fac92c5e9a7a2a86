package server

import "testing"

func TestSessionManager(t *testing.T) {
	sm := NewSessionManager(nil)

	var created, closed []string
	sm.SetOnSessionCreate(func(s *LiveSession) { created = append(created, s.ID) })
	sm.SetOnSessionClose(func(s *LiveSession) { closed = append(closed, s.ID) })

	a := &LiveSession{ID: "a"}
	b := &LiveSession{ID: "b"}
	sm.Add(a)
	sm.Add(b)

	if sm.Count() != 2 || sm.Get("a") != a {
		t.Fatalf("Count = %d, Get(a) = %v", sm.Count(), sm.Get("a"))
	}

	visited := 0
	sm.ForEach(func(*LiveSession) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("ForEach visited %d after returning false", visited)
	}

	sm.Remove("a")
	sm.Remove("a")
	sm.Remove("unknown")

	if sm.Count() != 1 || sm.Get("a") != nil {
		t.Errorf("after Remove: Count = %d", sm.Count())
	}
	if len(created) != 2 || len(closed) != 1 || closed[0] != "a" {
		t.Errorf("created = %v, closed = %v", created, closed)
	}
}
