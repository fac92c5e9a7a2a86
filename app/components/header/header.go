// Package header implements the CineVerse navigation header.
//
// HeaderBar renders the logo, primary navigation with the watchlist badge,
// the search and notification buttons, the theme toggle, the user menu and
// the mobile menu. Its two overlays are mutually exclusive and close on
// Escape, on a pointer-down outside them, and on every route change.
//
//	h := header.New(header.Props{OnSearch: openSearch}, snapshot)
//	h.Mount(doc)
//	defer h.Unmount()
//	h.Update(header.Snapshot{Path: "/genres", WatchlistCount: 2})
package header

import (
	"sync"

	"github.com/cineverse/cineverse/pkg/dom"
	"github.com/cineverse/cineverse/pkg/overlay"
	"github.com/cineverse/cineverse/pkg/vango"
	"github.com/cineverse/cineverse/pkg/vdom"
)

// Overlay identities and the DOM ids bound to them.
const (
	OverlayUser   = "user"
	OverlayMobile = "mobile"

	UserMenuID      = "user-menu"
	UserMenuButton  = "user-menu-button"
	MobileMenuID    = "mobile-menu"
	MobileToggleID  = "mobile-menu-toggle"
	MobileBackdrop  = "mobile-menu-backdrop"
	HeaderElementID = "site-header"
	SearchButtonID  = "search-button"
)

// Props are the callbacks the header is configured with. Route and
// watchlist data arrive separately as a Snapshot.
type Props struct {
	// OnSearch runs when the search button is activated. Nil makes the
	// button a no-op.
	OnSearch func()
}

// HeaderBar is the header component. Create it with New.
type HeaderBar struct {
	props Props

	overlays *overlay.Controller
	userOpen *vango.BoolSignal
	mobile   *vango.BoolSignal
	scrolled *vango.BoolSignal
	path     *vango.Signal[string]
	count    *vango.Signal[int]

	mu    sync.Mutex
	owner *vango.Owner
}

// New creates an unmounted header with both overlays closed. snap is the
// external state injected by the host (current path and watchlist size);
// later changes are pushed with Update rather than read by the header.
func New(props Props, snap Snapshot) *HeaderBar {
	snap = snap.normalized()

	c := overlay.New()
	h := &HeaderBar{
		props:    props,
		overlays: c,
		userOpen: c.Register(OverlayUser, UserMenuID),
		mobile:   c.Register(OverlayMobile, MobileMenuID, MobileToggleID),
		scrolled: vango.NewBoolSignal(false),
		path:     vango.NewSignal(snap.Path),
		count:    vango.NewSignal(snap.WatchlistCount),
	}
	return h
}

// Overlays exposes the overlay controller, e.g. to observe transitions.
func (h *HeaderBar) Overlays() *overlay.Controller {
	return h.overlays
}

// Mount subscribes the header to doc: scroll updates the scrolled state,
// Escape and outside pointer-downs dismiss the overlays, and a route
// change closes both. Mounting a mounted header is a no-op.
func (h *HeaderBar) Mount(doc *dom.Document) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.owner != nil {
		return
	}

	owner := vango.NewOwner(nil)

	removeScroll := doc.AddEventListener(dom.Scroll, func(e dom.Event) {
		h.scrolled.Set(IsScrolled(e.ScrollY))
	})
	owner.OnCleanup(removeScroll)

	unbind := h.overlays.Bind(doc)
	owner.OnCleanup(unbind)

	vango.WithOwner(owner, func() {
		vango.OnChange(
			func() { h.path.Get() },
			func() { h.overlays.CloseAll(overlay.TriggerRouteChange) },
		)
	})

	h.owner = owner
}

// Unmount removes every subscription made by Mount. All cleanups run even
// if one of them panics.
func (h *HeaderBar) Unmount() {
	h.mu.Lock()
	owner := h.owner
	h.owner = nil
	h.mu.Unlock()

	if owner != nil {
		owner.Dispose()
	}
}

// Mounted reports whether the header is mounted.
func (h *HeaderBar) Mounted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.owner != nil
}

// Update injects a new snapshot. When the path changes both overlays are
// closed before Update returns.
func (h *HeaderBar) Update(snap Snapshot) {
	snap = snap.normalized()
	routeChanged := h.path.Peek() != snap.Path

	vango.Batch(func() {
		h.path.Set(snap.Path)
		h.count.Set(snap.WatchlistCount)
	})

	// Mounted headers close through the route-change effect.
	if routeChanged && !h.Mounted() {
		h.overlays.CloseAll(overlay.TriggerRouteChange)
	}
}

// Snapshot returns the current snapshot without tracking.
func (h *HeaderBar) Snapshot() Snapshot {
	return Snapshot{Path: h.path.Peek(), WatchlistCount: h.count.Peek()}
}

// ToggleMobileMenu flips the mobile menu and closes the user menu.
func (h *HeaderBar) ToggleMobileMenu() {
	h.overlays.Toggle(OverlayMobile)
}

// ToggleUserMenu flips the user menu and closes the mobile menu.
func (h *HeaderBar) ToggleUserMenu() {
	h.overlays.Toggle(OverlayUser)
}

// CloseMobileMenu closes the mobile menu after a link was chosen.
func (h *HeaderBar) CloseMobileMenu() {
	h.overlays.Close(OverlayMobile, overlay.TriggerExplicit)
}

func (h *HeaderBar) dismissBackdrop() {
	h.overlays.Close(OverlayMobile, overlay.TriggerBackdrop)
}

func (h *HeaderBar) search() {
	if h.props.OnSearch != nil {
		h.props.OnSearch()
	}
}

// MobileMenuOpen reports the mobile menu state.
func (h *HeaderBar) MobileMenuOpen() bool { return h.mobile.Peek() }

// UserMenuOpen reports the user menu state.
func (h *HeaderBar) UserMenuOpen() bool { return h.userOpen.Peek() }

// Scrolled reports whether the header is in its scrolled style.
func (h *HeaderBar) Scrolled() bool { return h.scrolled.Peek() }

// Render implements vdom.Component. It reads every piece of state through
// signals, so a render host listening with vango.WithListener is notified
// of any change that affects the output.
func (h *HeaderBar) Render() *vdom.VNode {
	return h.view(viewState{
		snap: Snapshot{
			Path:           h.path.Get(),
			WatchlistCount: h.count.Get(),
		},
		scrolled:   h.scrolled.Get(),
		userOpen:   h.userOpen.Get(),
		mobileOpen: h.mobile.Get(),
	})
}
