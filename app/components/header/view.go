package header

import (
	. "github.com/cineverse/cineverse/el"
)

type viewState struct {
	snap       Snapshot
	scrolled   bool
	userOpen   bool
	mobileOpen bool
}

const (
	headerScrolled = "bg-white/95 dark:bg-black/95 backdrop-blur-xl border-b border-gray-300/60 dark:border-white/10 shadow-lg"
	headerTop      = "bg-white/80 dark:bg-black/30 backdrop-blur-2xl border-b border-gray-200/50 dark:border-white/5"

	focusRing = "focus:outline-none focus:ring-2 focus:ring-red-500 focus:ring-offset-2 focus:ring-offset-transparent"

	iconButton = "p-2 sm:p-2.5 lg:p-3 text-gray-600 dark:text-white/80 hover:text-gray-800 dark:hover:text-white transition-all duration-300 hover:bg-gray-100 dark:hover:bg-white/10 rounded-lg border border-gray-200 dark:border-white/10"

	navActive   = "text-white bg-gradient-to-r from-red-600 to-purple-600 shadow-lg"
	navInactive = "text-gray-700 dark:text-white/70 hover:text-gray-900 dark:hover:text-white hover:bg-gray-100/50 dark:hover:bg-white/10"

	mobileActive   = "text-white bg-gradient-to-r from-red-600 to-purple-600 shadow-lg"
	mobileInactive = "text-gray-700 dark:text-gray-300 hover:text-red-600 dark:hover:text-red-400 hover:bg-white/50 dark:hover:bg-white/5"

	badgeClass = "bg-gradient-to-r from-red-500 to-purple-600 text-white text-xs px-2 py-0.5 rounded-full font-bold min-w-[1.25rem] text-center"
	menuItem   = "w-full px-4 py-2 text-left text-sm text-gray-700 dark:text-white/80 hover:bg-gray-100 dark:hover:bg-white/10 transition-colors"
)

func (h *HeaderBar) view(s viewState) *VNode {
	items := NavigationItems(s.snap)

	return Fragment(
		Header(
			ID(HeaderElementID),
			Role("banner"),
			Class(
				"fixed top-0 left-0 right-0 z-50 transition-all duration-500",
				ClassIf(s.scrolled, headerScrolled),
				ClassIf(!s.scrolled, headerTop),
			),
			Data("scrolled", boolString(s.scrolled)),
			Div(Class("relative container mx-auto px-4 sm:px-6 lg:px-8 h-16 lg:h-20 flex items-center justify-between max-w-7xl"),
				logo(),
				desktopNav(items),
				premiumBadge("hidden md:flex items-center"),
				Div(Class("flex items-center gap-2 sm:gap-3 flex-shrink-0"),
					h.searchButton(),
					notificationsButton(),
					Div(Class("p-0.5 rounded-lg border border-gray-200 dark:border-white/10"), ThemeToggle()),
					h.userMenu(s.userOpen),
					h.hamburger(s.mobileOpen),
				),
			),
		),
		When(s.mobileOpen, func() *VNode { return h.mobilePanel(items) }),
		When(s.mobileOpen, h.backdrop),
	)
}

func logo() *VNode {
	return Link("/movies",
		Class("flex items-center gap-2 sm:gap-3 lg:gap-4 group flex-shrink-0 rounded-lg min-w-0", focusRing),
		AriaLabel("CineVerse - Go to movies page"),
		Div(Class("relative bg-gradient-to-br from-red-600 via-red-700 to-purple-800 p-2 sm:p-3 rounded-lg shadow-2xl"),
			icon("film", "h-5 w-5 sm:h-6 sm:w-6 lg:h-8 lg:w-8 text-white"),
		),
		Div(Class("flex flex-col min-w-0"),
			H1(Class("text-lg sm:text-xl lg:text-2xl font-black bg-gradient-to-r from-gray-900 via-red-600 to-purple-600 dark:from-white dark:via-red-200 dark:to-purple-200 bg-clip-text text-transparent tracking-tight truncate"),
				Text("CineVerse"),
			),
			P(Class("hidden sm:flex items-center gap-1 text-xs text-red-600 dark:text-red-400 font-semibold -mt-1 tracking-wider uppercase"),
				icon("star", "w-3 h-3 text-yellow-500 dark:text-yellow-400"),
				Text("Premium • Unlimited • 4K"),
			),
		),
	)
}

func desktopNav(items []NavigationItem) *VNode {
	return Nav(
		Class("hidden md:flex items-center flex-1 justify-center max-w-3xl mx-8"),
		Role("navigation"),
		AriaLabel("Main navigation"),
		Div(Class("flex items-center justify-center w-full rounded-2xl border border-gray-200/30 dark:border-white/10 p-2"),
			Range(items, func(item NavigationItem, _ int) *VNode {
				return A(
					Key(item.Path),
					Href(item.Path),
					AriaLabel(item.AriaLabel),
					activeAttr(item.Active),
					Class(
						"relative group px-6 lg:px-8 py-3 transition-all duration-300 font-semibold text-sm lg:text-base rounded-xl",
						focusRing,
						ClassIf(item.Active, navActive),
						ClassIf(!item.Active, navInactive),
					),
					Span(Class("relative z-10 flex items-center gap-2"),
						icon(item.Icon, "w-4 h-4"),
						Span(Class("whitespace-nowrap"), Text(item.Name)),
						badge(item, ""),
					),
				)
			}),
		),
	)
}

func premiumBadge(class string) *VNode {
	return Div(Class(class),
		Div(Class("flex items-center gap-2 px-4 py-2 bg-gradient-to-r from-amber-500/20 to-yellow-500/20 border border-amber-500/30 rounded-full"),
			icon("zap", "w-4 h-4 text-amber-500 dark:text-amber-400"),
			Span(Class("text-amber-600 dark:text-amber-300 font-bold text-sm tracking-wide"), Text("PREMIUM")),
		),
	)
}

func (h *HeaderBar) searchButton() *VNode {
	return Button(
		ID(SearchButtonID),
		Type("button"),
		Class(iconButton, focusRing),
		AriaLabel("Open search"),
		OnClick(h.search),
		icon("search", "h-4 w-4 sm:h-5 sm:w-5"),
	)
}

// notificationsButton is placeholder UI.
func notificationsButton() *VNode {
	return Button(
		Type("button"),
		Class("hidden sm:flex relative", iconButton, focusRing),
		AriaLabel("View notifications (1 new)"),
		icon("bell", "h-4 w-4 lg:h-5 lg:w-5"),
		Div(Class("absolute -top-1 -right-1 w-3 h-3 bg-gradient-to-r from-red-500 to-pink-500 rounded-full animate-pulse"), AriaHidden(true)),
	)
}

func (h *HeaderBar) userMenu(open bool) *VNode {
	return Div(
		ID(UserMenuID),
		Class("hidden sm:block relative"),
		Button(
			ID(UserMenuButton),
			Type("button"),
			Class("flex items-center gap-2 lg:gap-3 p-2 pr-3 lg:pr-4 bg-gradient-to-r from-red-600/20 to-purple-600/20 border border-red-500/30 dark:border-white/20 rounded-lg transition-all duration-300 shadow-lg", focusRing),
			AriaExpanded(open),
			AriaHasPopup("menu"),
			AriaLabel("User menu"),
			OnClick(h.ToggleUserMenu),
			avatar("w-8 h-8 lg:w-10 lg:h-10"),
			Div(Class("hidden md:block text-left"),
				Div(Class("text-gray-900 dark:text-white/90 font-semibold text-sm"), Text("Profile")),
				Div(Class("text-gray-600 dark:text-white/60 text-xs"), Text("Premium User")),
			),
			icon("chevron-down", "w-4 h-4 text-gray-600 dark:text-white/60 transition-transform duration-200"+rotateIf(open)),
		),
		When(open, userDropdown),
	)
}

// userDropdown items are placeholders without actions.
func userDropdown() *VNode {
	return Div(
		Role("menu"),
		Class("absolute right-0 top-full mt-2 w-48 bg-white/95 dark:bg-black/90 border border-gray-200/50 dark:border-white/10 rounded-xl shadow-2xl overflow-hidden z-50"),
		Div(Class("py-2"),
			Div(Class("px-4 py-3 border-b border-gray-200/50 dark:border-white/10"),
				Div(Class("text-sm font-medium text-gray-900 dark:text-white"), Text("John Doe")),
				Div(Class("text-xs text-gray-600 dark:text-white/60"), Text("john@example.com")),
			),
			Button(Type("button"), Class(menuItem), Role("menuitem"), Text("Account Settings")),
			Button(Type("button"), Class(menuItem), Role("menuitem"), Text("Billing")),
			Button(Type("button"), Class(menuItem), Role("menuitem"), Text("Help & Support")),
			Div(Class("border-t border-gray-200/50 dark:border-white/10 mt-2 pt-2"),
				Button(Type("button"),
					Class("w-full px-4 py-2 text-left text-sm text-red-600 dark:text-red-400 hover:bg-red-50 dark:hover:bg-red-500/10 transition-colors"),
					Role("menuitem"),
					Text("Sign Out"),
				),
			),
		),
	)
}

func (h *HeaderBar) hamburger(open bool) *VNode {
	label, glyph := "Open mobile menu", "menu"
	if open {
		label, glyph = "Close mobile menu", "x"
	}
	return Button(
		ID(MobileToggleID),
		Type("button"),
		Class("lg:hidden", iconButton, focusRing),
		AriaLabel(label),
		AriaExpanded(open),
		AriaControls(MobileMenuID),
		OnClick(h.ToggleMobileMenu),
		icon(glyph, "h-5 w-5"),
	)
}

func (h *HeaderBar) mobilePanel(items []NavigationItem) *VNode {
	return Div(
		ID(MobileMenuID),
		Role("menu"),
		Class("fixed top-16 lg:top-20 left-0 right-0 z-40 lg:hidden"),
		Div(Class("mx-4 mt-2 bg-white/95 dark:bg-black/90 border border-gray-200/50 dark:border-white/10 rounded-2xl shadow-2xl overflow-hidden"),
			Div(Class("p-4 space-y-2"),
				Range(items, func(item NavigationItem, _ int) *VNode {
					return A(
						Key(item.Path),
						Href(item.Path),
						Role("menuitem"),
						AriaLabel(item.AriaLabel),
						activeAttr(item.Active),
						OnClick(h.CloseMobileMenu),
						Class(
							"flex items-center gap-3 p-4 rounded-xl font-semibold transition-all duration-300 min-h-[3rem]",
							focusRing,
							ClassIf(item.Active, mobileActive),
							ClassIf(!item.Active, mobileInactive),
						),
						icon(item.Icon, "w-5 h-5 flex-shrink-0"),
						Span(Class("text-base"), Text(item.Name)),
						badge(item, "ml-auto"),
						If(item.Active && item.Badge == nil,
							Div(Class("ml-auto w-2 h-2 bg-white rounded-full flex-shrink-0"), Data("active-dot", "true")),
						),
					)
				}),
			),
			Div(Class("px-4 pb-4 pt-2 border-t border-gray-200/50 dark:border-white/10"),
				Div(Class("flex items-center justify-between gap-3"),
					premiumBadge("flex-shrink-0"),
					Button(
						Type("button"),
						Class("flex items-center gap-2 p-2 bg-gradient-to-r from-red-600/20 to-purple-600/20 border border-red-500/30 dark:border-white/20 rounded-lg min-h-[2.5rem]", focusRing),
						AriaLabel("User profile"),
						avatar("w-8 h-8"),
						Div(Class("text-left min-w-0"),
							Div(Class("text-gray-900 dark:text-white/90 font-semibold text-sm truncate"), Text("Profile")),
							Div(Class("text-gray-600 dark:text-white/60 text-xs"), Text("Premium User")),
						),
					),
				),
			),
		),
	)
}

func (h *HeaderBar) backdrop() *VNode {
	return Div(
		ID(MobileBackdrop),
		Class("fixed inset-0 bg-black/20 dark:bg-black/40 backdrop-blur-sm z-30 lg:hidden"),
		AriaHidden(true),
		OnClick(h.dismissBackdrop),
	)
}

func avatar(size string) *VNode {
	return Div(Class("relative bg-gradient-to-br from-red-500 to-purple-600 rounded-lg flex items-center justify-center overflow-hidden", size),
		icon("user", "h-4 w-4 lg:h-5 lg:w-5 text-white"),
		Div(Class("absolute -bottom-0.5 -right-0.5 w-2.5 h-2.5 bg-green-400 border-2 border-white dark:border-black rounded-full")),
	)
}

func badge(item NavigationItem, extra string) *VNode {
	if item.Badge == nil {
		return nil
	}
	return Span(Class(extra, badgeClass), Data("badge", "true"), Textf("%d", *item.Badge))
}

func activeAttr(active bool) Attr {
	if active {
		return AriaCurrent("page")
	}
	return Attr{}
}

func rotateIf(open bool) string {
	if open {
		return " rotate-180"
	}
	return ""
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
