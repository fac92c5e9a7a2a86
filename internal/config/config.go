package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/drone/envsubst"
	"github.com/goccy/go-yaml"

	"github.com/cineverse/cineverse/internal/errors"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "cineverse.json"

	// YAMLConfigFileName is the alternative YAML configuration file.
	YAMLConfigFileName = "cineverse.yaml"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":8080"

	// DefaultCookieName is the browser session cookie.
	DefaultCookieName = "cv_session"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second
)

// Watchlist backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the complete server configuration.
type Config struct {
	// Name is shown in page titles.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Dev enables development mode (verbose logging, no secure cookies).
	Dev bool `json:"dev,omitempty" yaml:"dev,omitempty"`

	Server    ServerConfig    `json:"server" yaml:"server"`
	Log       LogConfig       `json:"log" yaml:"log"`
	Session   SessionConfig   `json:"session" yaml:"session"`
	Watchlist WatchlistConfig `json:"watchlist" yaml:"watchlist"`
	Live      LiveConfig      `json:"live" yaml:"live"`
	Metrics   MetricsConfig   `json:"metrics" yaml:"metrics"`

	configPath string
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	// Addr is the listen address (e.g., ":8080").
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`

	// ShutdownTimeout is how long graceful shutdown waits (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`

	// ReadHeaderTimeout bounds request header reads (e.g., "5s").
	ReadHeaderTimeout string `json:"readHeaderTimeout,omitempty" yaml:"readHeaderTimeout,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// SessionConfig contains browser session cookie settings.
type SessionConfig struct {
	CookieName string `json:"cookieName,omitempty" yaml:"cookieName,omitempty"`

	// Secret signs the cookie. Required outside dev mode.
	Secret string `json:"secret,omitempty" yaml:"secret,omitempty"`

	// MaxAge is the cookie lifetime in seconds.
	MaxAge int `json:"maxAge,omitempty" yaml:"maxAge,omitempty"`
}

// WatchlistConfig selects the watchlist store backend.
type WatchlistConfig struct {
	// Backend is memory or redis.
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`

	// RedisURL is used by the redis backend (redis://host:port/db).
	RedisURL string `json:"redisUrl,omitempty" yaml:"redisUrl,omitempty"`

	// KeyPrefix namespaces redis keys.
	KeyPrefix string `json:"keyPrefix,omitempty" yaml:"keyPrefix,omitempty"`
}

// LiveConfig contains live WebSocket session settings.
type LiveConfig struct {
	// ReadLimit is the maximum client message size in bytes.
	ReadLimit int64 `json:"readLimit,omitempty" yaml:"readLimit,omitempty"`

	// IdleTimeout closes a session with no client traffic (e.g., "60s").
	IdleTimeout string `json:"idleTimeout,omitempty" yaml:"idleTimeout,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Disabled removes the /metrics endpoint.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`

	// Namespace prefixes metric names.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Name: "CineVerse",
		Dev:  true,
		Server: ServerConfig{
			Addr:              DefaultAddr,
			ShutdownTimeout:   "10s",
			ReadHeaderTimeout: "5s",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Session: SessionConfig{
			CookieName: DefaultCookieName,
			MaxAge:     30 * 24 * 60 * 60,
		},
		Watchlist: WatchlistConfig{
			Backend:   BackendMemory,
			KeyPrefix: "cineverse:watchlist:",
		},
		Live: LiveConfig{
			ReadLimit:   4096,
			IdleTimeout: "60s",
		},
		Metrics: MetricsConfig{
			Namespace: "cineverse",
		},
	}
}

// Load reads the configuration file at path and applies environment
// overrides. An empty path yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := New()
		cfg.ApplyEnv(os.Getenv)
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E101").WithDetail(path).Wrap(err)
	}

	cfg, err := Parse(data, filepath.Ext(path), os.Getenv)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads cineverse.json, or cineverse.yaml, from dir. Without
// either file it returns the defaults plus environment overrides.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName, "cineverse.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Load("")
}

// Parse decodes a configuration document over the defaults. ext selects
// the format (".yaml"/".yml" for YAML, anything else JSON). ${VAR}
// references are expanded with getenv before decoding.
func Parse(data []byte, ext string, getenv func(string) string) (*Config, error) {
	expanded, err := envsubst.Eval(string(data), getenv)
	if err != nil {
		return nil, errors.New("E104").Wrap(err)
	}

	cfg := New()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal([]byte(expanded), cfg)
	default:
		err = json.Unmarshal([]byte(expanded), cfg)
	}
	if err != nil {
		return nil, errors.New("E102").Wrap(err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// ApplyEnv applies environment overrides using getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if port := getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if addr := getenv("CINEVERSE_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := getenv("CINEVERSE_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	if url := getenv("CINEVERSE_REDIS_URL"); url != "" {
		c.Watchlist.Backend = BackendRedis
		c.Watchlist.RedisURL = url
	}
	if secret := getenv("CINEVERSE_SESSION_SECRET"); secret != "" {
		c.Session.Secret = secret
	}
	if strings.EqualFold(getenv("ENVIRONMENT"), "production") {
		c.Dev = false
	}
}

// applyDefaults fills in default values for fields a file left empty.
func (c *Config) applyDefaults() {
	d := New()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Server.ReadHeaderTimeout == "" {
		c.Server.ReadHeaderTimeout = d.Server.ReadHeaderTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = d.Session.CookieName
	}
	if c.Session.MaxAge == 0 {
		c.Session.MaxAge = d.Session.MaxAge
	}
	if c.Watchlist.Backend == "" {
		c.Watchlist.Backend = d.Watchlist.Backend
	}
	if c.Watchlist.KeyPrefix == "" {
		c.Watchlist.KeyPrefix = d.Watchlist.KeyPrefix
	}
	if c.Live.ReadLimit == 0 {
		c.Live.ReadLimit = d.Live.ReadLimit
	}
	if c.Live.IdleTimeout == "" {
		c.Live.IdleTimeout = d.Live.IdleTimeout
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E103").WithDetailf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E103").WithDetailf("log.format %q: want text or json", c.Log.Format)
	}
	switch c.Watchlist.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Watchlist.RedisURL == "" {
			return errors.New("E103").WithDetail("watchlist.redisUrl is required for the redis backend")
		}
	default:
		return errors.New("E103").WithDetailf("watchlist.backend %q: want memory or redis", c.Watchlist.Backend)
	}
	if !c.Dev && c.Session.Secret == "" {
		return errors.New("E103").
			WithDetail("session.secret is required in production").
			WithSuggestion("Set CINEVERSE_SESSION_SECRET or session.secret.")
	}
	if c.Live.ReadLimit < 0 {
		return errors.New("E103").WithDetail("live.readLimit must not be negative")
	}
	for name, value := range map[string]string{
		"server.shutdownTimeout":   c.Server.ShutdownTimeout,
		"server.readHeaderTimeout": c.Server.ReadHeaderTimeout,
		"live.idleTimeout":         c.Live.IdleTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return errors.New("E103").WithDetailf("%s %q", name, value).Wrap(err)
		}
	}
	return nil
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.configPath
}

// ShutdownTimeout returns the parsed graceful shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, DefaultShutdownTimeout)
}

// ReadHeaderTimeout returns the parsed header read timeout.
func (c *Config) ReadHeaderTimeout() time.Duration {
	return parseDuration(c.Server.ReadHeaderTimeout, 5*time.Second)
}

// IdleTimeout returns the parsed live session idle timeout.
func (c *Config) IdleTimeout() time.Duration {
	return parseDuration(c.Live.IdleTimeout, time.Minute)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
