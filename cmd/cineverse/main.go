package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cverrors "github.com/cineverse/cineverse/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cineverse",
		Short: "CineVerse streaming front end",
		Long: `CineVerse serves the streaming site: server-rendered pages with a
live header driven over WebSocket.

  • Pages for movies, TV shows, genres and the watchlist
  • Header state (menus, scroll style, badge) kept on the server
  • Watchlist API with memory or Redis storage
  • Prometheus metrics and OpenTelemetry spans`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printError prints coded errors with their suggestion, anything else on
// one line.
func printError(err error) {
	var e *cverrors.Error
	if errors.As(err, &e) {
		fmt.Fprint(os.Stderr, e.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
}
