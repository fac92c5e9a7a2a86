package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	sloghttp "github.com/samber/slog-http"

	"github.com/cineverse/cineverse/app/routes"
	"github.com/cineverse/cineverse/pkg/middleware"
	"github.com/cineverse/cineverse/pkg/vango"
)

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.tracing.HTTP)
	r.Use(s.metrics.HTTP)
	r.Use(releaseTracking)

	// Live sessions log their own lifecycle.
	r.Get("/live", s.HandleWebSocket)

	r.Group(func(r chi.Router) {
		r.Use(sloghttp.New(s.logger))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, routes.DefaultPath, http.StatusFound)
		})
		for _, page := range routes.Pages() {
			r.Get(page.Path, s.handlePage(page))
		}
		r.Get(routes.ClientScriptPath, s.serveClient)

		r.Get("/api/watchlist", s.handleWatchlistList)
		r.Post("/api/watchlist/{id}", s.handleWatchlistAdd)
		r.Delete("/api/watchlist/{id}", s.handleWatchlistRemove)

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte("ok"))
		})
		if s.gatherer != nil {
			r.Handle("/metrics", middleware.Handler(s.gatherer))
		}

		r.NotFound(s.handleNotFound)
	})
	return r
}

// releaseTracking drops the reactive tracking state that signal writes
// leave on the request goroutine.
func releaseTracking(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer vango.ReleaseGoroutine()
		next.ServeHTTP(w, r)
	})
}
