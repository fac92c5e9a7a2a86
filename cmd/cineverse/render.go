package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cineverse/cineverse/app/components/header"
	"github.com/cineverse/cineverse/internal/errors"
	"github.com/cineverse/cineverse/pkg/dom"
	"github.com/cineverse/cineverse/pkg/render"
)

type renderOptions struct {
	path      string
	watchlist int
	scrolled  bool
	open      string
	hydrate   bool
}

func renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the header HTML for a given state",
		Long: `Render the header for a path and watchlist count and print its HTML.

Examples:
  cineverse render --path /movies
  cineverse render --path /watchlist --watchlist 3 --open mobile
  cineverse render --scrolled --hydrate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := renderHeader(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "/movies", "Current route")
	cmd.Flags().IntVar(&opts.watchlist, "watchlist", 0, "Watchlist item count")
	cmd.Flags().BoolVar(&opts.scrolled, "scrolled", false, "Render the scrolled style")
	cmd.Flags().StringVar(&opts.open, "open", "", "Open an overlay: user or mobile")
	cmd.Flags().BoolVar(&opts.hydrate, "hydrate", false, "Include hydration markers")
	return cmd
}

// renderHeader mounts a header on a scratch document, drives it into the
// requested state through the same events a browser sends, and renders it.
func renderHeader(opts renderOptions) (string, error) {
	h := header.New(header.Props{}, header.Snapshot{Path: opts.path, WatchlistCount: opts.watchlist})

	doc := dom.NewDocument()
	h.Mount(doc)
	defer h.Unmount()

	if opts.scrolled {
		doc.Dispatch(dom.ScrollEvent(header.ScrollThreshold + 1))
	}
	switch opts.open {
	case "":
	case header.OverlayUser:
		h.ToggleUserMenu()
	case header.OverlayMobile:
		h.ToggleMobileMenu()
	default:
		return "", errors.Newf(errors.CategoryCLI, "unknown overlay %q", opts.open).
			WithSuggestion("Use --open user or --open mobile.")
	}

	r := render.NewRenderer(render.RendererConfig{Hydrate: opts.hydrate})
	html, err := r.RenderToString(h.Render())
	if err != nil {
		return "", errors.New("E302").Wrap(err)
	}
	return html, nil
}
