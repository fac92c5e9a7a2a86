package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/websocket"
	"github.com/rs/xid"

	"github.com/cineverse/cineverse/app/components/header"
	"github.com/cineverse/cineverse/internal/errors"
	"github.com/cineverse/cineverse/pkg/dom"
	"github.com/cineverse/cineverse/pkg/features/store"
	"github.com/cineverse/cineverse/pkg/middleware"
	"github.com/cineverse/cineverse/pkg/overlay"
	"github.com/cineverse/cineverse/pkg/protocol"
	"github.com/cineverse/cineverse/pkg/render"
	"github.com/cineverse/cineverse/pkg/vango"
	"github.com/cineverse/cineverse/pkg/vdom"
)

const writeWait = 10 * time.Second

// LiveSession is one browser tab driving a header over a WebSocket.
type LiveSession struct {
	// ID identifies this connection.
	ID string

	// BrowserID is the cookie session the tab belongs to.
	BrowserID string

	// CreatedAt is when the connection was accepted.
	CreatedAt time.Time

	conn    *websocket.Conn
	config  *ServerConfig
	logger  *slog.Logger
	metrics *middleware.Metrics
	tracing *middleware.Tracing

	header    *header.HeaderBar
	doc       *dom.Document
	renderer  *render.Renderer
	store     *store.Store
	watchlist *store.Watchlist
	onCount   *vango.ListenerFunc

	// renderDeps is subscribed to every signal the last render read;
	// dirty is set when one of them changes.
	renderDeps *vango.ListenerFunc
	dirty      atomic.Bool

	inbox   chan []byte
	refresh chan struct{}
	done    chan struct{}
	once    sync.Once

	bytesSent atomic.Int64
	bytesRecv atomic.Int64
	events    atomic.Int64
}

func newLiveSession(srv *Server, conn *websocket.Conn, browserID, path string) *LiveSession {
	id := xid.New().String()
	s := &LiveSession{
		ID:        id,
		BrowserID: browserID,
		CreatedAt: time.Now(),
		conn:      conn,
		config:    srv.config,
		logger:    srv.logger.With("session_id", id),
		metrics:   srv.metrics,
		tracing:   srv.tracing,
		doc:       dom.NewDocument(),
		renderer:  render.NewRenderer(render.RendererConfig{Hydrate: true}),
		store:     srv.store,
		watchlist: srv.store.Acquire(context.Background(), browserID),
		inbox:     make(chan []byte, srv.config.MaxEventQueue),
		refresh:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}

	if err := s.watchlist.Refresh(context.Background()); err != nil {
		s.logger.Warn("refresh watchlist", "error", err)
	}

	s.header = header.New(header.Props{OnSearch: s.search}, header.Snapshot{
		Path:           path,
		WatchlistCount: s.watchlist.CountSignal().Peek(),
	})
	s.header.Overlays().Observe(func(id string, open bool, trigger overlay.Trigger) {
		s.metrics.OverlayTransition(id, open, trigger.String())
		s.logger.Debug("overlay", "overlay", id, "open", open, "trigger", trigger.String())
	})

	// Runs on whichever goroutine changed the watchlist; only wake the
	// event loop from here.
	s.onCount = vango.NewListener(func() {
		select {
		case s.refresh <- struct{}{}:
		default:
		}
	})
	s.renderDeps = vango.NewListener(func() { s.dirty.Store(true) })
	return s
}

// Header returns the session's header component.
func (s *LiveSession) Header() *header.HeaderBar { return s.header }

// Done is closed when the session ends.
func (s *LiveSession) Done() <-chan struct{} { return s.done }

// EventCount returns the number of client messages processed.
func (s *LiveSession) EventCount() int64 { return s.events.Load() }

// Run starts the read and heartbeat loops and runs the event loop on the
// calling goroutine until the session closes.
func (s *LiveSession) Run() {
	go s.ReadLoop()
	go s.WriteLoop()
	s.EventLoop()
}

// EventLoop mounts the header, sends the first render and then processes
// client messages and watchlist refreshes one at a time.
func (s *LiveSession) EventLoop() {
	defer vango.ReleaseGoroutine()
	defer s.teardown()

	s.header.Mount(s.doc)
	s.watchlist.CountSignal().Subscribe(s.onCount)

	if err := s.render(); err != nil {
		s.logger.Error("initial render failed", "error", err)
		s.Close()
		return
	}

	for {
		select {
		case msg := <-s.inbox:
			s.handleMessage(msg)
		case <-s.refresh:
			s.refreshWatchlist()
		case <-s.done:
			return
		}
	}
}

// handleMessage decodes, dispatches and re-renders one client message.
func (s *LiveSession) handleMessage(msg []byte) {
	start := time.Now()
	s.events.Add(1)

	ev, err := protocol.DecodeEvent(msg)
	if err != nil {
		s.metrics.ObserveEvent("invalid", err, time.Since(start))
		s.sendError(err)
		return
	}

	name := ev.Type.String()
	_, span := s.tracing.StartEvent(context.Background(), name, s.ID, s.header.Snapshot().Path)

	// A panicking handler may have changed state before it failed, so
	// the header is re-rendered whenever something it read changed.
	err = s.dispatch(ev)
	if rerr := s.renderIfDirty(); rerr != nil && err == nil {
		err = rerr
	}

	middleware.EndEvent(span, err)
	s.metrics.ObserveEvent(name, err, time.Since(start))
	s.logger.Debug("event", "type", name, "duration", time.Since(start), "error", err)

	if err != nil {
		s.sendError(err)
	}
}

// dispatch routes ev to the header. A panic is reported as E301.
func (s *LiveSession) dispatch(ev *protocol.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("event handler panicked",
				"type", ev.Type.String(),
				"panic", r,
				"stack", string(debug.Stack()))
			err = errors.New("E301").WithDetailf("%v", r)
		}
	}()

	switch ev.Type {
	case protocol.EventClick:
		h, ok := s.renderer.Handler(ev.HID, "click")
		if !ok {
			return errors.New("E203").WithDetail(ev.HID)
		}
		fn, ok := h.(func())
		if !ok {
			return errors.New("E203").WithDetailf("%s has an unsupported handler", ev.HID)
		}
		fn()

	case protocol.EventKeyDown:
		s.doc.Dispatch(dom.KeyDownEvent(ev.Key))

	case protocol.EventPointerDown:
		s.doc.Dispatch(dom.PointerDownEvent(ev.Targets...))

	case protocol.EventScroll:
		s.doc.Dispatch(dom.ScrollEvent(ev.ScrollY))

	case protocol.EventNavigate:
		s.header.Update(header.Snapshot{
			Path:           ev.Path,
			WatchlistCount: s.watchlist.CountSignal().Peek(),
		})
	}
	return nil
}

func (s *LiveSession) refreshWatchlist() {
	snap := s.header.Snapshot()
	snap.WatchlistCount = s.watchlist.CountSignal().Peek()
	s.header.Update(snap)

	if err := s.renderIfDirty(); err != nil {
		s.sendError(err)
	}
}

// renderIfDirty renders only when state read by the last render changed.
// Events that change nothing send no frame, so the client keeps its DOM
// and hydration ids between a pointer-down and the click that follows.
func (s *LiveSession) renderIfDirty() error {
	if !s.dirty.Load() {
		return nil
	}
	return s.render()
}

// render sends the header HTML and rebuilds the handler registry.
func (s *LiveSession) render() error {
	start := time.Now()
	s.dirty.Store(false)

	var tree *vdom.VNode
	vango.WithListener(s.renderDeps, func() { tree = s.header.Render() })

	html, err := s.renderer.RenderToString(tree)
	if err != nil {
		return errors.New("E302").Wrap(err)
	}
	s.metrics.ObserveRender(time.Since(start))
	return s.send(protocol.RenderFrame(html))
}

func (s *LiveSession) sendError(err error) {
	frame := protocol.ErrorFrame(err)
	s.metrics.ProtocolError(frame.Code)
	s.logger.Warn("live message rejected", "code", frame.Code, "error", err)
	if serr := s.send(frame); serr != nil {
		s.logger.Debug("send error frame", "error", serr)
	}
}

// send writes frame. Only EventLoop calls it, so there is one writer.
func (s *LiveSession) send(frame protocol.Frame) error {
	data, err := frame.Encode()
	if err != nil {
		return err
	}
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.Close()
		return err
	}
	s.bytesSent.Add(int64(len(data)))
	return nil
}

func (s *LiveSession) search() {
	s.logger.Debug("search requested", "path", s.header.Snapshot().Path)
}

// Close ends the session. It is safe to call from any goroutine and more
// than once.
func (s *LiveSession) Close() {
	s.once.Do(func() {
		close(s.done)
		s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		s.conn.Close()
	})
}

// teardown runs on the event loop after it stops.
func (s *LiveSession) teardown() {
	s.Close()
	s.watchlist.CountSignal().Unsubscribe(s.onCount)
	s.store.Release(s.watchlist)
	s.header.Unmount()

	s.logger.Info("live session closed",
		"opened", humanize.Time(s.CreatedAt),
		"events", s.events.Load(),
		"sent", humanize.Bytes(uint64(s.bytesSent.Load())),
		"received", humanize.Bytes(uint64(s.bytesRecv.Load())))
}
