// Package routes holds the CineVerse pages and the page shell.
package routes

import (
	. "github.com/cineverse/cineverse/el"

	"github.com/cineverse/cineverse/app/components/header"
	"github.com/cineverse/cineverse/pkg/render"
)

// DefaultPath is where "/" redirects.
const DefaultPath = "/movies"

// Page is one placeholder section.
type Page struct {
	Path    string
	Title   string
	Heading string
	Blurb   string
}

var pages = []Page{
	{"/movies", "Movies", "Movies", "Blockbusters, indies and festival favourites in 4K."},
	{"/tv-shows", "TV Shows", "TV Shows", "Binge-worthy series, from limited runs to long sagas."},
	{"/genres", "Genres", "Browse by genre", "Action, drama, sci-fi and everything in between."},
	{"/watchlist", "Watchlist", "Your watchlist", "Titles you saved for later."},
}

// Pages returns every page in navigation order.
func Pages() []Page {
	return append([]Page(nil), pages...)
}

// Lookup returns the page served at path.
func Lookup(path string) (Page, bool) {
	for _, p := range pages {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}

// NotFoundPage is rendered for unknown paths.
var NotFoundPage = Page{
	Title:   "Not found",
	Heading: "Page not found",
	Blurb:   "The page you are looking for does not exist.",
}

// Render renders page as a full HTML document whose header shows snap.
func Render(page Page, siteName string, snap header.Snapshot) (string, error) {
	hr := render.NewRenderer(render.RendererConfig{Hydrate: true})
	headerHTML, err := hr.RenderToString(header.New(header.Props{}, snap).Render())
	if err != nil {
		return "", err
	}

	title := page.Title + " | " + siteName
	doc := Layout(title, headerHTML, content(page, snap))

	return render.NewRenderer(render.RendererConfig{Doctype: true}).RenderToString(doc)
}

func content(page Page, snap header.Snapshot) *VNode {
	return Section(Class("space-y-4"), Data("page", page.Path),
		H2(Class("text-3xl font-bold"), Text(page.Heading)),
		P(Class("text-gray-600 dark:text-gray-400"), Text(page.Blurb)),
		When(page.Path == "/watchlist", func() *VNode {
			if snap.WatchlistCount == 0 {
				return P(Class("text-sm text-gray-500"), Text("Nothing saved yet."))
			}
			return P(Class("text-sm text-gray-500"), Textf("%d saved titles.", snap.WatchlistCount))
		}),
	)
}
