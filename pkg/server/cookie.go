package server

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/xid"
)

const sessionIDKey = "id"

// browserSessions issues the signed cookie that ties pages, live sessions
// and the watchlist API of one browser together.
type browserSessions struct {
	store *sessions.CookieStore
	name  string
}

func newBrowserSessions(cfg *ServerConfig) (*browserSessions, error) {
	key := []byte(cfg.SessionSecret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate cookie key: %w", err)
		}
	}

	store := sessions.NewCookieStore(key)
	store.MaxAge(cfg.SessionMaxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = !cfg.DevMode
	store.Options.SameSite = http.SameSiteLaxMode

	return &browserSessions{store: store, name: cfg.CookieName}, nil
}

// ID returns the browser session id of r, issuing a new one (and a
// Set-Cookie header on w) when the request has none or an invalid one.
func (b *browserSessions) ID(w http.ResponseWriter, r *http.Request) (string, error) {
	// A cookie that fails verification still yields a fresh session.
	sess, _ := b.store.Get(r, b.name)

	if id, ok := sess.Values[sessionIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := xid.New().String()
	sess.Values[sessionIDKey] = id
	if err := sess.Save(r, w); err != nil {
		return "", fmt.Errorf("save session cookie: %w", err)
	}
	return id, nil
}
