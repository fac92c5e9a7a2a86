// Package store holds session-scoped state shared between the HTTP API and
// live sessions: the watchlist.
//
// A Store maps browser-session ids to Watchlists on top of a Backend
// (in-memory or Redis). Every Watchlist exposes its size as a reactive
// signal. Live sessions pin their browser session's handle with Acquire,
// so a change made by another request of the same browser session
// notifies every live header that read Count during render.
package store
