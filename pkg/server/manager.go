package server

import (
	"log/slog"
	"sync"
)

// SessionManager tracks the open live sessions.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*LiveSession
	logger   *slog.Logger

	onCreate func(*LiveSession)
	onClose  func(*LiveSession)
}

// NewSessionManager creates an empty manager.
func NewSessionManager(logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		sessions: make(map[string]*LiveSession),
		logger:   logger,
	}
}

// Add registers s.
func (sm *SessionManager) Add(s *LiveSession) {
	sm.mu.Lock()
	sm.sessions[s.ID] = s
	onCreate := sm.onCreate
	sm.mu.Unlock()

	if onCreate != nil {
		onCreate(s)
	}
}

// Remove unregisters the session id. Removing an unknown id is a no-op.
func (sm *SessionManager) Remove(id string) {
	sm.mu.Lock()
	s, ok := sm.sessions[id]
	delete(sm.sessions, id)
	onClose := sm.onClose
	sm.mu.Unlock()

	if ok && onClose != nil {
		onClose(s)
	}
}

// Get returns the session id, or nil.
func (sm *SessionManager) Get(id string) *LiveSession {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// Count returns the number of open sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// ForEach calls fn for each session until fn returns false.
func (sm *SessionManager) ForEach(fn func(*LiveSession) bool) {
	sm.mu.RLock()
	list := make([]*LiveSession, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		list = append(list, s)
	}
	sm.mu.RUnlock()

	for _, s := range list {
		if !fn(s) {
			return
		}
	}
}

// SetOnSessionCreate sets a callback run after a session is added.
func (sm *SessionManager) SetOnSessionCreate(fn func(*LiveSession)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.onCreate = fn
}

// SetOnSessionClose sets a callback run after a session is removed.
func (sm *SessionManager) SetOnSessionClose(fn func(*LiveSession)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.onClose = fn
}

// Shutdown closes every session.
func (sm *SessionManager) Shutdown() {
	n := 0
	sm.ForEach(func(s *LiveSession) bool {
		s.Close()
		n++
		return true
	})
	if n > 0 {
		sm.logger.Info("closed live sessions", "count", n)
	}
}
