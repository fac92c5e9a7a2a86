package main

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/cineverse/cineverse/internal/config"
	"github.com/cineverse/cineverse/internal/errors"
	"github.com/cineverse/cineverse/pkg/features/store"
	"github.com/cineverse/cineverse/pkg/middleware"
	"github.com/cineverse/cineverse/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		envFile    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Start the web server.

Configuration is read from --config, or from cineverse.json /
cineverse.yaml in the working directory. Variables from the .env file
are loaded first, so they can be referenced as ${VAR} in the config.

Examples:
  cineverse serve
  cineverse serve --addr :3000
  cineverse serve --config deploy/cineverse.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath, addr, envFile)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: cineverse.json or cineverse.yaml in the working directory)")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address, overrides the config file")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before the config")
	return cmd
}

func runServe(ctx context.Context, configPath, addr, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return errors.New("E101").WithDetail(envFile).Wrap(err)
		}
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger := newLogger(os.Stderr, cfg.Log)
	slog.SetDefault(logger)

	backend, err := store.Open(ctx, cfg.Watchlist)
	if err != nil {
		return err
	}

	opts := server.Options{
		Logger:  logger,
		Store:   store.New(backend),
		Tracing: middleware.NewTracing(middleware.WithTracerName("cineverse")),
	}
	if !cfg.Metrics.Disabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts.Metrics = middleware.NewMetrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(reg),
		)
		opts.Gatherer = reg
	}

	srv, err := server.New(server.ConfigFrom(cfg), opts)
	if err != nil {
		return errors.New("E304").Wrap(err)
	}

	logger.Info("starting cineverse",
		"version", version,
		"config", cfg.Path(),
		"dev", cfg.Dev,
		"watchlist", cfg.Watchlist.Backend)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return errors.New("E304").Wrap(err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.New("E101").Wrap(err)
	}
	return config.LoadFromDir(wd)
}

// newLogger builds the process logger from cfg. Unknown levels fall back
// to info; Validate rejects them before this point.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
