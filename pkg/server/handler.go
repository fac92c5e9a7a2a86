package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cineverse/cineverse/app/components/header"
	"github.com/cineverse/cineverse/app/routes"
	clientdist "github.com/cineverse/cineverse/client/dist"
	"github.com/cineverse/cineverse/internal/errors"
	"github.com/cineverse/cineverse/pkg/features/store"
	"github.com/cineverse/cineverse/pkg/protocol"
)

func (s *Server) handlePage(page routes.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writePage(w, r, page, page.Path, http.StatusOK)
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "not_found", Message: "no such endpoint"})
		return
	}
	s.writePage(w, r, routes.NotFoundPage, r.URL.Path, http.StatusNotFound)
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, page routes.Page, path string, status int) {
	wl, err := s.watchlist(w, r)
	if err != nil {
		s.logger.Error("browser session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	// Picks up changes made through other instances and wakes this
	// browser's live headers if the count moved.
	if err := wl.Refresh(r.Context()); err != nil {
		s.logger.Warn("refresh watchlist", "error", err)
	}

	html, err := routes.Render(page, s.config.SiteName, header.Snapshot{
		Path:           path,
		WatchlistCount: wl.CountSignal().Peek(),
	})
	if err != nil {
		s.logger.Error("render page", "path", path, "error", errors.New("E302").Wrap(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(html))
}

// HandleWebSocket upgrades the request to a live session for the page at
// the "path" query parameter.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if !strings.HasPrefix(path, "/") {
		path = routes.DefaultPath
	}

	browserID, err := s.cookies.ID(w, r)
	if err != nil {
		s.logger.Error("browser session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// The upgrade response is written by the upgrader, so a freshly issued
	// cookie has to be passed along explicitly.
	var respHeader http.Header
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) > 0 {
		respHeader = http.Header{"Set-Cookie": cookies}
	}

	conn, err := s.upgrader.Upgrade(w, r, respHeader)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sess := newLiveSession(s, conn, browserID, path)
	s.sessions.Add(sess)
	defer s.sessions.Remove(sess.ID)

	sess.logger.Info("live session opened", "browser_session", browserID, "path", path)
	sess.Run()
}

type watchlistBody struct {
	Count int      `json:"count"`
	Items []string `json:"items"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleWatchlistList(w http.ResponseWriter, r *http.Request) {
	wl, err := s.watchlist(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeWatchlist(w, r, wl)
}

func (s *Server) handleWatchlistAdd(w http.ResponseWriter, r *http.Request) {
	s.modifyWatchlist(w, r, (*store.Watchlist).Add)
}

func (s *Server) handleWatchlistRemove(w http.ResponseWriter, r *http.Request) {
	s.modifyWatchlist(w, r, (*store.Watchlist).Remove)
}

func (s *Server) modifyWatchlist(w http.ResponseWriter, r *http.Request, op func(*store.Watchlist, context.Context, string) error) {
	wl, err := s.watchlist(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := op(wl, r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeWatchlist(w, r, wl)
}

func (s *Server) writeWatchlist(w http.ResponseWriter, r *http.Request, wl *store.Watchlist) {
	items, err := wl.Items(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if items == nil {
		items = []string{}
	}
	writeJSON(w, http.StatusOK, watchlistBody{Count: len(items), Items: items})
}

func (s *Server) watchlist(w http.ResponseWriter, r *http.Request) (*store.Watchlist, error) {
	id, err := s.cookies.ID(w, r)
	if err != nil {
		return nil, err
	}
	return s.store.Session(r.Context(), id), nil
}

// writeError maps coded errors to a status and a JSON body. Uncoded
// errors are logged and reported without detail.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case "E204":
		status = http.StatusBadRequest
	case "E303":
		status = http.StatusServiceUnavailable
	}

	frame := protocol.ErrorFrame(err)
	body := errorBody{Code: frame.Code, Message: frame.Message}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", body.Code, "error", err)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) serveClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if s.config.DevMode {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
	}
	w.Write(clientdist.CineverseJS)
}
