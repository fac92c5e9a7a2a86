package header

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/cineverse/cineverse/pkg/dom"
	"github.com/cineverse/cineverse/pkg/overlay"
	"github.com/cineverse/cineverse/pkg/vdom"
	"github.com/cineverse/cineverse/pkg/vtest"
)

func mount(t *testing.T, props Props, snap Snapshot) (*HeaderBar, *vtest.Harness) {
	t.Helper()
	h := New(props, snap)
	return h, vtest.Mount(t, h)
}

func TestHeaderInitialState(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})

	if h.UserMenuOpen() || h.MobileMenuOpen() || h.Scrolled() {
		t.Fatal("new header should start closed and unscrolled")
	}
	th.ExpectAttr(UserMenuButton, "aria-expanded", "false")
	th.ExpectAttr(MobileToggleID, "aria-expanded", "false")
	th.ExpectAttr(MobileToggleID, "aria-label", "Open mobile menu")
	th.ExpectAttr(MobileToggleID, "aria-controls", MobileMenuID)
	th.ExpectAttr(UserMenuButton, "aria-haspopup", "menu")
	th.ExpectAttr(HeaderElementID, "role", "banner")
	th.ExpectAttr("Main navigation", "role", "navigation")
	th.ExpectAttr("Browse movies", "aria-current", "page")
	th.ExpectNoElement(MobileMenuID)
	th.ExpectNoElement(MobileBackdrop)
	th.ExpectElement(ThemeToggleID)
	th.ExpectHTML("CineVerse")
	th.ExpectHTML("Premium • Unlimited • 4K")
}

func TestHeaderToggleUserMenu(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})

	th.Click(UserMenuButton)
	if !h.UserMenuOpen() {
		t.Fatal("user menu should open on click")
	}
	th.ExpectAttr(UserMenuButton, "aria-expanded", "true")
	th.ExpectHTML("john@example.com")
	for _, item := range []string{"Account Settings", "Billing", "Help &amp; Support", "Sign Out"} {
		th.ExpectHTML(item)
	}

	// The pointer-down on the button is inside the menu, so the click
	// toggles it closed.
	th.Click(UserMenuButton)
	if h.UserMenuOpen() {
		t.Fatal("second click should close the user menu")
	}
}

func TestHeaderToggleMobileMenu(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/genres"})

	th.Click(MobileToggleID)
	if !h.MobileMenuOpen() {
		t.Fatal("mobile menu should open on click")
	}
	th.ExpectElement(MobileMenuID)
	th.ExpectElement(MobileBackdrop)
	th.ExpectAttr(MobileToggleID, "aria-label", "Close mobile menu")
	th.ExpectAttr(MobileBackdrop, "aria-hidden", "true")
	th.ExpectAttr(MobileMenuID, "role", "menu")

	th.Click(MobileToggleID)
	if h.MobileMenuOpen() {
		t.Fatal("second click should close the mobile menu")
	}
}

func TestHeaderMutualExclusion(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})

	th.Click(UserMenuButton)
	th.Click(MobileToggleID)
	if h.UserMenuOpen() || !h.MobileMenuOpen() {
		t.Fatalf("user=%v mobile=%v, want only mobile open", h.UserMenuOpen(), h.MobileMenuOpen())
	}

	h.ToggleUserMenu()
	if !h.UserMenuOpen() || h.MobileMenuOpen() {
		t.Fatalf("user=%v mobile=%v, want only user open", h.UserMenuOpen(), h.MobileMenuOpen())
	}
}

func TestHeaderMutualExclusionRandom(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})
	rng := rand.New(rand.NewSource(7))
	paths := Paths()

	actions := []func(){
		h.ToggleUserMenu,
		h.ToggleMobileMenu,
		h.CloseMobileMenu,
		func() { th.Click(UserMenuButton) },
		func() { th.Click(MobileToggleID) },
		func() { th.KeyDown("Escape") },
		th.PointerDownOutside,
		func() { th.Scroll(float64(rng.Intn(100))) },
		func() { h.Update(Snapshot{Path: paths[rng.Intn(len(paths))], WatchlistCount: rng.Intn(5)}) },
	}

	for i := 0; i < 500; i++ {
		actions[rng.Intn(len(actions))]()
		if h.UserMenuOpen() && h.MobileMenuOpen() {
			t.Fatalf("step %d: both overlays open", i)
		}
	}
}

func TestHeaderEscapeClosesOverlays(t *testing.T) {
	for _, key := range []string{"Escape", "Esc"} {
		t.Run(key, func(t *testing.T) {
			h, th := mount(t, Props{}, Snapshot{Path: "/movies"})

			h.ToggleMobileMenu()
			th.KeyDown(key)
			if h.MobileMenuOpen() {
				t.Error("mobile menu still open")
			}

			h.ToggleUserMenu()
			th.KeyDown(key)
			if h.UserMenuOpen() {
				t.Error("user menu still open")
			}
		})
	}

	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})
	h.ToggleUserMenu()
	th.KeyDown("Enter")
	if !h.UserMenuOpen() {
		t.Error("Enter should not close the user menu")
	}
}

func TestHeaderPointerDown(t *testing.T) {
	tests := []struct {
		name     string
		open     func(*HeaderBar)
		target   string
		wantOpen bool
	}{
		{"outside closes user menu", (*HeaderBar).ToggleUserMenu, vtest.OutsideID, false},
		{"outside closes mobile menu", (*HeaderBar).ToggleMobileMenu, vtest.OutsideID, false},
		{"user-menu subtree keeps it open", (*HeaderBar).ToggleUserMenu, UserMenuButton, true},
		{"mobile panel keeps it open", (*HeaderBar).ToggleMobileMenu, MobileMenuID, true},
		{"mobile toggle keeps it open", (*HeaderBar).ToggleMobileMenu, MobileToggleID, true},
		{"logo closes user menu", (*HeaderBar).ToggleUserMenu, "CineVerse - Go to movies page", false},
		{"hamburger closes user menu", (*HeaderBar).ToggleUserMenu, MobileToggleID, false},
		{"backdrop closes mobile menu", (*HeaderBar).ToggleMobileMenu, MobileBackdrop, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, th := mount(t, Props{}, Snapshot{Path: "/movies"})
			tt.open(h)

			if tt.target == vtest.OutsideID {
				th.PointerDownOutside()
			} else {
				th.PointerDown(tt.target)
			}

			if got := h.UserMenuOpen() || h.MobileMenuOpen(); got != tt.wantOpen {
				t.Errorf("open = %v, want %v", got, tt.wantOpen)
			}
		})
	}
}

func TestHeaderUserMenuItemKeepsMenuOpen(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})
	h.ToggleUserMenu()

	menu := th.ExpectElement(UserMenuID)
	item := vdom.Find(menu, func(n *vdom.VNode) bool {
		role, _ := n.Attr("role")
		return role == "menuitem"
	})
	if item == nil {
		t.Fatal("no menu item rendered")
	}
	th.Click(item.HID)
	if !h.UserMenuOpen() {
		t.Error("placeholder item should not close the menu")
	}
}

func TestHeaderRouteChangeClosesOverlays(t *testing.T) {
	h, _ := mount(t, Props{}, Snapshot{Path: "/movies"})

	var triggers []overlay.Trigger
	h.Overlays().Observe(func(id string, open bool, trigger overlay.Trigger) {
		if !open {
			triggers = append(triggers, trigger)
		}
	})

	h.ToggleMobileMenu()
	h.Update(Snapshot{Path: "/tv-shows"})
	if h.MobileMenuOpen() {
		t.Fatal("mobile menu should close on route change")
	}

	h.ToggleUserMenu()
	h.Update(Snapshot{Path: "/genres", WatchlistCount: 2})
	if h.UserMenuOpen() {
		t.Fatal("user menu should close on route change")
	}

	if len(triggers) != 2 || triggers[0] != overlay.TriggerRouteChange || triggers[1] != overlay.TriggerRouteChange {
		t.Errorf("close triggers = %v", triggers)
	}

	// Same path keeps the menu open.
	h.ToggleUserMenu()
	h.Update(Snapshot{Path: "/genres", WatchlistCount: 5})
	if !h.UserMenuOpen() {
		t.Error("count-only update should not close the user menu")
	}
}

func TestHeaderUpdateWhileUnmounted(t *testing.T) {
	h := New(Props{}, Snapshot{Path: "/movies"})
	h.ToggleUserMenu()

	h.Update(Snapshot{Path: "/watchlist"})
	if h.UserMenuOpen() {
		t.Error("route change should close overlays on an unmounted header")
	}
	if got := h.Snapshot(); got.Path != "/watchlist" {
		t.Errorf("Snapshot().Path = %q", got.Path)
	}
}

func TestHeaderScroll(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})

	steps := []struct {
		y    float64
		want bool
	}{
		{21, true},
		{20, false},
		{300, true},
		{0, false},
	}
	for _, s := range steps {
		th.Scroll(s.y)
		if h.Scrolled() != s.want {
			t.Errorf("scroll %v: scrolled = %v, want %v", s.y, h.Scrolled(), s.want)
		}
		want := "false"
		if s.want {
			want = "true"
		}
		th.ExpectAttr(HeaderElementID, "data-scrolled", want)
	}
}

func TestHeaderWatchlistBadge(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})

	th.ExpectElement("View watchlist")
	if strings.Contains(th.HTML(), `data-badge="true"`) {
		t.Error("badge rendered for an empty watchlist")
	}

	h.Update(Snapshot{Path: "/movies", WatchlistCount: 3})
	link := th.ExpectElement("View watchlist (3 items)")
	if link == nil {
		return
	}
	b := vdom.Find(link, func(n *vdom.VNode) bool {
		v, _ := n.Attr("data-badge")
		return v == "true"
	})
	if b == nil || b.TextContent() != "3" {
		t.Errorf("badge = %v, want 3", b)
	}

	h.Update(Snapshot{Path: "/movies", WatchlistCount: -2})
	if got := h.Snapshot().WatchlistCount; got != 0 {
		t.Errorf("negative count stored as %d", got)
	}
	th.ExpectElement("View watchlist")
}

func TestHeaderActiveItem(t *testing.T) {
	tests := []struct {
		path  string
		label string
	}{
		{"/movies", "Browse movies"},
		{"/tv-shows", "Browse TV shows"},
		{"/genres", "Browse by genres"},
		{"/watchlist", "View watchlist"},
		{"/unknown", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, th := mount(t, Props{}, Snapshot{Path: tt.path})
			current := vdom.FindAll(th.Tree(), func(n *vdom.VNode) bool {
				v, _ := n.Attr("aria-current")
				return v == "page"
			})
			if tt.label == "" {
				if len(current) != 0 {
					t.Errorf("%d active links, want none", len(current))
				}
				return
			}
			if len(current) != 1 {
				t.Fatalf("%d active links, want 1", len(current))
			}
			if got, _ := current[0].Attr("aria-label"); got != tt.label {
				t.Errorf("active link = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestHeaderMobileMenu(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/tv-shows", WatchlistCount: 2})
	h.ToggleMobileMenu()

	panel := th.ExpectElement(MobileMenuID)
	links := vdom.FindAll(panel, func(n *vdom.VNode) bool { return n.Tag == "a" })
	if len(links) != 4 {
		t.Fatalf("mobile menu has %d links, want 4", len(links))
	}
	dots := vdom.FindAll(panel, func(n *vdom.VNode) bool {
		v, _ := n.Attr("data-active-dot")
		return v == "true"
	})
	if len(dots) != 1 {
		t.Errorf("%d active dots, want 1", len(dots))
	}

	// Choosing a link closes the menu.
	th.Click(links[2].HID)
	if h.MobileMenuOpen() {
		t.Error("mobile link click should close the menu")
	}
}

func TestHeaderBackdropClick(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})

	var last overlay.Trigger
	h.Overlays().Observe(func(_ string, _ bool, trigger overlay.Trigger) { last = trigger })

	h.ToggleMobileMenu()
	th.Click(MobileBackdrop)
	if h.MobileMenuOpen() {
		t.Fatal("backdrop click should close the mobile menu")
	}
	if last != overlay.TriggerOutsidePointer {
		t.Errorf("trigger = %v, want %v", last, overlay.TriggerOutsidePointer)
	}

	// Without a preceding pointer-down the click handler closes it.
	h.ToggleMobileMenu()
	h.dismissBackdrop()
	if h.MobileMenuOpen() || last != overlay.TriggerBackdrop {
		t.Errorf("open=%v trigger=%v", h.MobileMenuOpen(), last)
	}
}

func TestHeaderSearch(t *testing.T) {
	calls := 0
	_, th := mount(t, Props{OnSearch: func() { calls++ }}, Snapshot{Path: "/movies"})

	th.ClickLabel("Open search")
	if calls != 1 {
		t.Errorf("OnSearch called %d times, want 1", calls)
	}

	_, th = mount(t, Props{}, Snapshot{Path: "/movies"})
	th.ClickLabel("Open search")
}

func TestHeaderUnmount(t *testing.T) {
	h := New(Props{}, Snapshot{Path: "/movies"})
	doc := dom.NewDocument()

	h.Mount(doc)
	h.Mount(doc)
	if !h.Mounted() {
		t.Fatal("header not mounted")
	}
	if got := doc.ListenerCount(dom.PointerDown); got != 1 {
		t.Errorf("pointerdown listeners = %d, want 1", got)
	}

	h.Unmount()
	h.Unmount()

	if h.Mounted() {
		t.Error("header still mounted")
	}
	for _, kind := range []dom.EventKind{dom.Scroll, dom.KeyDown, dom.PointerDown} {
		if n := doc.ListenerCount(kind); n != 0 {
			t.Errorf("%v listeners after unmount = %d", kind, n)
		}
	}

	// Events after unmount have no effect.
	h.ToggleUserMenu()
	doc.Dispatch(dom.KeyDownEvent("Escape"))
	doc.Dispatch(dom.ScrollEvent(100))
	if !h.UserMenuOpen() || h.Scrolled() {
		t.Error("unmounted header reacted to document events")
	}

	// Remounting works.
	h.Mount(doc)
	doc.Dispatch(dom.KeyDownEvent("Escape"))
	if h.UserMenuOpen() {
		t.Error("remounted header ignored Escape")
	}
	h.Unmount()
}

func TestHeaderHydratedRender(t *testing.T) {
	_, th := mount(t, Props{}, Snapshot{Path: "/movies"})
	html := th.HTML()

	for _, want := range []string{
		`id="user-menu-button"`,
		`data-on-click="true"`,
		`data-hid="h1"`,
		`aria-label="View notifications (1 new)"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %s", want)
		}
	}
}

func interactiveHIDs(root *vdom.VNode) map[string]string {
	out := make(map[string]string)
	for _, n := range vdom.FindAll(root, (*vdom.VNode).IsInteractive) {
		out[n.HID] = n.ID() + "|" + n.Key
	}
	return out
}

func TestHeaderHandlerHIDsAreStable(t *testing.T) {
	h, th := mount(t, Props{}, Snapshot{Path: "/movies"})
	positional := regexp.MustCompile(`^h\d+$`)

	base := interactiveHIDs(th.Tree())
	for hid, who := range base {
		if positional.MatchString(hid) {
			t.Errorf("handler on %q has positional hid %s", who, hid)
		}
	}

	steps := []struct {
		name string
		act  func()
	}{
		{"user menu open", h.ToggleUserMenu},
		{"mobile menu open", h.ToggleMobileMenu},
		{"scrolled", func() { th.Scroll(300) }},
		{"all closed", h.CloseMobileMenu},
	}
	for _, step := range steps {
		step.act()
		got := interactiveHIDs(th.Tree())
		for hid, who := range base {
			if got[hid] != who {
				t.Errorf("%s: hid %s = %q, want %q", step.name, hid, got[hid], who)
			}
		}
	}
}
