package routes

import (
	. "github.com/cineverse/cineverse/el"

	"github.com/cineverse/cineverse/app/components/header"
)

// HeaderContainerID is the element the live client replaces on every
// render frame.
const HeaderContainerID = "cineverse-header"

// ClientScriptPath serves the live client.
const ClientScriptPath = "/_cineverse/client.js"

const themeInit = `(function(){var t=localStorage.getItem('theme');if(t==='dark'||(!t&&window.matchMedia('(prefers-color-scheme:dark)').matches)){document.documentElement.classList.add('dark')}})();`

// The header is re-rendered by the live session, so the handler is
// delegated from the document.
const themeToggle = `document.addEventListener('click',function(e){if(e.target.closest&&e.target.closest('#` + header.ThemeToggleID + `')){document.documentElement.classList.toggle('dark');localStorage.setItem('theme',document.documentElement.classList.contains('dark')?'dark':'light')}});`

// Layout wraps main in the page shell. headerHTML is the hydrated header
// markup, rendered separately so its hydration ids match the live
// session's.
func Layout(title, headerHTML string, main *VNode) *VNode {
	return Html(Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Meta(Name("color-scheme"), Content("light dark")),
			Title(Text(title)),
			Script(Raw(themeInit)),
		),
		Body(Class("bg-white dark:bg-black text-gray-900 dark:text-white min-h-screen transition-colors"),
			Div(ID(HeaderContainerID), Raw(headerHTML)),
			Main(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 pt-24 lg:pt-28 pb-12"), main),
			Script(Raw(themeToggle)),
			Script(Src(ClientScriptPath), Data("live", "/live")),
		),
	)
}
