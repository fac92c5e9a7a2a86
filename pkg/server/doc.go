// Package server is the CineVerse HTTP and live-session runtime.
//
// Pages are rendered on the server with the header hydrated: every element
// carries a data-hid and every element with a click handler a
// data-on-click marker. The embedded client then opens a WebSocket on
// /live and a LiveSession takes over the header.
//
// # Live sessions
//
// Each connection creates a LiveSession that owns a header.HeaderBar
// mounted on its own dom.Document. The session runs three goroutines:
//
//   - ReadLoop: reads client messages and queues them
//   - EventLoop: decodes and dispatches messages, then re-renders
//   - WriteLoop: sends heartbeat pings
//
// All component state is touched only by EventLoop, so handlers run to
// completion one at a time. After each message EventLoop sends a render
// frame holding the header HTML; bad messages produce an error frame and
// the session stays open.
//
// Watchlist changes made through the HTTP API reach every live session of
// the same browser session: the count signal wakes EventLoop, which
// re-renders.
//
// # Routes
//
//	GET    /                     redirect to /movies
//	GET    /movies ...           server-rendered pages
//	GET    /live?path=/movies    WebSocket upgrade
//	GET    /api/watchlist        {"count":N,"items":[...]}
//	POST   /api/watchlist/{id}   add a title
//	DELETE /api/watchlist/{id}   remove a title
//	GET    /metrics              Prometheus
//	GET    /healthz              "ok"
package server
