package store

import (
	"context"
	"log/slog"
	"regexp"
	"sync"

	"github.com/cineverse/cineverse/internal/config"
	"github.com/cineverse/cineverse/internal/errors"
	"github.com/cineverse/cineverse/pkg/vango"
)

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidID reports whether id is an acceptable movie id.
func ValidID(id string) bool {
	return validID.MatchString(id)
}

// Open creates the backend selected by cfg.
func Open(ctx context.Context, cfg config.WatchlistConfig) (Backend, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		b, err := NewRedisBackend(ctx, cfg.RedisURL, cfg.KeyPrefix)
		if err != nil {
			return nil, errors.New("E303").WithDetail(cfg.RedisURL).Wrap(err)
		}
		return b, nil
	default:
		return NewMemoryBackend(), nil
	}
}

// Store hands out Watchlist handles per browser session. Handles pinned
// with Acquire are shared until their last Release; every other handle is
// transient, so sessions that never open a live connection leave nothing
// behind.
type Store struct {
	backend Backend
	logger  *slog.Logger

	mu     sync.Mutex
	pinned map[string]*Watchlist
}

// New creates a Store over backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		logger:  slog.Default().With("component", "watchlist"),
		pinned:  make(map[string]*Watchlist),
	}
}

// Acquire returns the shared handle of session and pins it until the
// matching Release.
func (s *Store) Acquire(ctx context.Context, session string) *Watchlist {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.pinned[session]
	if !ok {
		w = s.newWatchlist(ctx, session)
		s.pinned[session] = w
	}
	w.refs++
	return w
}

// Release unpins w. The shared handle is dropped with its last holder.
// Releasing a transient handle is a no-op.
func (s *Store) Release(w *Watchlist) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w == nil || s.pinned[w.session] != w {
		return
	}
	w.refs--
	if w.refs <= 0 {
		delete(s.pinned, w.session)
	}
}

// Session returns the shared handle of session while one is pinned, and a
// transient handle loaded from the backend otherwise. Changes made through
// a transient handle still reach the shared handle's count signal.
func (s *Store) Session(ctx context.Context, session string) *Watchlist {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.pinned[session]; ok {
		return w
	}
	return s.newWatchlist(ctx, session)
}

// Pinned returns the number of shared handles currently held.
func (s *Store) Pinned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pinned)
}

func (s *Store) newWatchlist(ctx context.Context, session string) *Watchlist {
	w := &Watchlist{
		store:   s,
		session: session,
		count:   vango.NewSignal(0),
	}
	if n, err := s.backend.Count(ctx, session); err != nil {
		s.logger.Warn("load watchlist count", "session", session, "error", err)
	} else {
		w.count.Set(n)
	}
	return w
}

// publish stores n on w and on the shared handle of w's session.
func (s *Store) publish(w *Watchlist, n int) {
	s.mu.Lock()
	shared := s.pinned[w.session]
	s.mu.Unlock()

	w.count.Set(n)
	if shared != nil && shared != w {
		shared.count.Set(n)
	}
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Watchlist is the watchlist of one browser session.
type Watchlist struct {
	store   *Store
	session string
	count   *vango.Signal[int]
	refs    int
}

// Session returns the owning session id.
func (w *Watchlist) Session() string { return w.session }

// Add inserts id. Adding an existing id is a no-op.
func (w *Watchlist) Add(ctx context.Context, id string) error {
	if !ValidID(id) {
		return errors.New("E204").WithDetailf("%q", id)
	}
	added, err := w.store.backend.Add(ctx, w.session, id)
	if err != nil {
		return errors.New("E303").Wrap(err)
	}
	if !added {
		return nil
	}
	return w.Refresh(ctx)
}

// Remove deletes id. Removing a missing id is a no-op.
func (w *Watchlist) Remove(ctx context.Context, id string) error {
	if !ValidID(id) {
		return errors.New("E204").WithDetailf("%q", id)
	}
	removed, err := w.store.backend.Remove(ctx, w.session, id)
	if err != nil {
		return errors.New("E303").Wrap(err)
	}
	if !removed {
		return nil
	}
	return w.Refresh(ctx)
}

// Has reports whether id is on the list.
func (w *Watchlist) Has(ctx context.Context, id string) (bool, error) {
	ok, err := w.store.backend.Has(ctx, w.session, id)
	if err != nil {
		return false, errors.New("E303").Wrap(err)
	}
	return ok, nil
}

// Items returns the ids in ascending order.
func (w *Watchlist) Items(ctx context.Context) ([]string, error) {
	items, err := w.store.backend.Items(ctx, w.session)
	if err != nil {
		return nil, errors.New("E303").Wrap(err)
	}
	return items, nil
}

// Count returns the number of ids and subscribes the current listener.
func (w *Watchlist) Count() int {
	return w.count.Get()
}

// CountSignal exposes the count signal for explicit subscriptions.
func (w *Watchlist) CountSignal() *vango.Signal[int] {
	return w.count
}

// Refresh reloads the count from the backend and publishes it to the
// session's shared handle. Page renders and new live sessions call it so
// that changes made by other processes sharing a Redis backend show up.
func (w *Watchlist) Refresh(ctx context.Context) error {
	n, err := w.store.backend.Count(ctx, w.session)
	if err != nil {
		return errors.New("E303").Wrap(err)
	}
	w.store.publish(w, n)
	return nil
}
