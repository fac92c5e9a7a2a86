package server

import (
	"time"

	"github.com/cineverse/cineverse/internal/config"
)

// ServerConfig holds the server settings.
type ServerConfig struct {
	// Address is the listen address (e.g., ":8080").
	Address string

	// SiteName is used in page titles.
	SiteName string

	// DevMode disables secure cookies and caching of the client script.
	DevMode bool

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds request header reads.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// CookieName names the browser session cookie.
	// Default: "cv_session".
	CookieName string

	// SessionSecret signs the cookie. Empty generates a random key, so
	// sessions do not survive a restart.
	SessionSecret string

	// SessionMaxAge is the cookie lifetime in seconds.
	SessionMaxAge int

	// ReadLimit is the maximum size of a client message.
	// Default: 4096 bytes.
	ReadLimit int64

	// IdleTimeout closes a live session that sent nothing, not even a pong.
	// Default: 60 seconds.
	IdleTimeout time.Duration

	// HeartbeatInterval is the time between pings.
	// Default: IdleTimeout / 2.
	HeartbeatInterval time.Duration

	// MaxEventQueue is the buffer of queued client messages per session.
	// Default: 64.
	MaxEventQueue int
}

// DefaultServerConfig returns a ServerConfig with defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           config.DefaultAddr,
		SiteName:          "CineVerse",
		DevMode:           true,
		ShutdownTimeout:   config.DefaultShutdownTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		CookieName:        config.DefaultCookieName,
		SessionMaxAge:     30 * 24 * 60 * 60,
		ReadLimit:         4096,
		IdleTimeout:       60 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxEventQueue:     64,
	}
}

// ConfigFrom maps a loaded configuration onto server settings.
func ConfigFrom(cfg *config.Config) *ServerConfig {
	c := DefaultServerConfig()
	if cfg == nil {
		return c
	}

	c.Address = cfg.Server.Addr
	if cfg.Name != "" {
		c.SiteName = cfg.Name
	}
	c.DevMode = cfg.Dev
	c.ShutdownTimeout = cfg.ShutdownTimeout()
	c.ReadHeaderTimeout = cfg.ReadHeaderTimeout()
	if cfg.Session.CookieName != "" {
		c.CookieName = cfg.Session.CookieName
	}
	c.SessionSecret = cfg.Session.Secret
	if cfg.Session.MaxAge > 0 {
		c.SessionMaxAge = cfg.Session.MaxAge
	}
	if cfg.Live.ReadLimit > 0 {
		c.ReadLimit = cfg.Live.ReadLimit
	}
	c.IdleTimeout = cfg.IdleTimeout()
	c.HeartbeatInterval = c.IdleTimeout / 2
	return c
}

func (c *ServerConfig) withDefaults() *ServerConfig {
	out := *c
	def := DefaultServerConfig()
	if out.Address == "" {
		out.Address = def.Address
	}
	if out.SiteName == "" {
		out.SiteName = def.SiteName
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = def.ShutdownTimeout
	}
	if out.ReadHeaderTimeout <= 0 {
		out.ReadHeaderTimeout = def.ReadHeaderTimeout
	}
	if out.CookieName == "" {
		out.CookieName = def.CookieName
	}
	if out.SessionMaxAge <= 0 {
		out.SessionMaxAge = def.SessionMaxAge
	}
	if out.ReadLimit <= 0 {
		out.ReadLimit = def.ReadLimit
	}
	if out.IdleTimeout <= 0 {
		out.IdleTimeout = def.IdleTimeout
	}
	if out.HeartbeatInterval <= 0 || out.HeartbeatInterval >= out.IdleTimeout {
		out.HeartbeatInterval = out.IdleTimeout / 2
	}
	if out.MaxEventQueue <= 0 {
		out.MaxEventQueue = def.MaxEventQueue
	}
	return &out
}
