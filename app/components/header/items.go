package header

import "fmt"

// ScrollThreshold is the scroll offset, in pixels, past which the header
// switches to its opaque style.
const ScrollThreshold = 20

// IsScrolled reports whether a viewport scrolled to y shows the opaque
// header.
func IsScrolled(y float64) bool {
	return y > ScrollThreshold
}

// Snapshot is the external state the header renders from.
type Snapshot struct {
	Path           string
	WatchlistCount int
}

func (s Snapshot) normalized() Snapshot {
	if s.WatchlistCount < 0 {
		s.WatchlistCount = 0
	}
	return s
}

// NavigationItem is one primary navigation link.
type NavigationItem struct {
	Name      string
	Path      string
	Icon      string
	AriaLabel string
	Badge     *int
	Active    bool
}

type route struct {
	name, path, icon, label string
}

const watchlistPath = "/watchlist"

var routes = []route{
	{"Movies", "/movies", "home", "Browse movies"},
	{"TV Shows", "/tv-shows", "tv", "Browse TV shows"},
	{"Genres", "/genres", "grid", "Browse by genres"},
	{"Watchlist", watchlistPath, "bookmark", "View watchlist"},
}

// Paths returns the navigation paths in display order.
func Paths() []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.path
	}
	return out
}

// NavigationItems derives the four navigation items from s. An item is
// active only on an exact path match. The watchlist item carries a badge
// and an item count in its label when the count is positive.
func NavigationItems(s Snapshot) []NavigationItem {
	s = s.normalized()

	items := make([]NavigationItem, 0, len(routes))
	for _, r := range routes {
		item := NavigationItem{
			Name:      r.name,
			Path:      r.path,
			Icon:      r.icon,
			AriaLabel: r.label,
			Active:    s.Path == r.path,
		}
		if r.path == watchlistPath && s.WatchlistCount > 0 {
			n := s.WatchlistCount
			item.Badge = &n
			item.AriaLabel = fmt.Sprintf("%s (%d items)", r.label, n)
		}
		items = append(items, item)
	}
	return items
}
