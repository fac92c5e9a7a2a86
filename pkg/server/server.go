package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cineverse/cineverse/pkg/features/store"
	"github.com/cineverse/cineverse/pkg/middleware"
)

// Options are the collaborators of a Server. Nil fields get defaults: an
// in-memory watchlist, no metrics and the global tracer.
type Options struct {
	Logger   *slog.Logger
	Store    *store.Store
	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer
	Tracing  *middleware.Tracing
}

// Server is the HTTP and WebSocket server.
type Server struct {
	config   *ServerConfig
	logger   *slog.Logger
	store    *store.Store
	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	tracing  *middleware.Tracing

	cookies  *browserSessions
	sessions *SessionManager
	upgrader websocket.Upgrader
	handler  http.Handler

	mu         sync.Mutex
	httpServer *http.Server
}

// New creates a Server.
func New(config *ServerConfig, opts Options) (*Server, error) {
	if config == nil {
		config = DefaultServerConfig()
	}
	config = config.withDefaults()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "server")

	cookies, err := newBrowserSessions(config)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:   config,
		logger:   logger,
		store:    opts.Store,
		metrics:  opts.Metrics,
		gatherer: opts.Gatherer,
		tracing:  opts.Tracing,
		cookies:  cookies,
		sessions: NewSessionManager(logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	if s.store == nil {
		s.store = store.New(store.NewMemoryBackend())
	}
	if s.tracing == nil {
		s.tracing = middleware.NewTracing()
	}
	if config.DevMode {
		s.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}

	s.sessions.SetOnSessionCreate(func(*LiveSession) { s.metrics.SessionOpened() })
	s.sessions.SetOnSessionClose(func(*LiveSession) { s.metrics.SessionClosed() })

	s.handler = s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every live session and stops the HTTP server, waiting
// at most the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.sessions.Shutdown()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	if err := s.store.Close(); err != nil {
		s.logger.Warn("close watchlist store", "error", err)
	}
	s.logger.Info("server shutdown complete")
	return nil
}

// Sessions returns the live session manager.
func (s *Server) Sessions() *SessionManager { return s.sessions }

// Store returns the watchlist store.
func (s *Server) Store() *store.Store { return s.store }

// Config returns the effective configuration.
func (s *Server) Config() *ServerConfig { return s.config }

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger { return s.logger }
