package server

import (
	"testing"
	"time"

	"github.com/cineverse/cineverse/internal/config"
)

func TestConfigFrom(t *testing.T) {
	cfg := config.New()
	cfg.Name = "CineVerse Staging"
	cfg.Server.Addr = ":9090"
	cfg.Server.ShutdownTimeout = "3s"
	cfg.Live.IdleTimeout = "20s"
	cfg.Session.Secret = "s3cret"
	cfg.Dev = false

	c := ConfigFrom(cfg)
	if c.Address != ":9090" || c.SiteName != "CineVerse Staging" || c.DevMode {
		t.Errorf("ConfigFrom = %+v", c)
	}
	if c.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v", c.ShutdownTimeout)
	}
	if c.IdleTimeout != 20*time.Second || c.HeartbeatInterval != 10*time.Second {
		t.Errorf("IdleTimeout = %v, HeartbeatInterval = %v", c.IdleTimeout, c.HeartbeatInterval)
	}
	if c.CookieName != "cv_session" || c.SessionSecret != "s3cret" {
		t.Errorf("cookie settings = %q %q", c.CookieName, c.SessionSecret)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	c := (&ServerConfig{IdleTimeout: 10 * time.Second, HeartbeatInterval: time.Minute}).withDefaults()
	if c.Address != ":8080" || c.ReadLimit != 4096 || c.MaxEventQueue != 64 {
		t.Errorf("withDefaults = %+v", c)
	}
	if c.HeartbeatInterval != 5*time.Second {
		t.Errorf("HeartbeatInterval = %v, want half of IdleTimeout", c.HeartbeatInterval)
	}
}
