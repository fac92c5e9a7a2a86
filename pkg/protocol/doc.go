// Package protocol defines the JSON messages exchanged over a live session
// WebSocket.
//
// Client to server, one JSON object per text frame:
//
//	{"type":"click","hid":"h12"}
//	{"type":"keydown","key":"Escape"}
//	{"type":"pointerdown","path":["h3","h2","user-menu"]}
//	{"type":"scroll","y":42}
//	{"type":"navigate","path":"/genres"}
//
// Server to client:
//
//	{"type":"render","html":"<header ...>"}
//	{"type":"error","code":"E203","message":"Unknown hydration id: h99"}
//
// The pointerdown path is the target's composedPath() reduced to element
// ids and data-hid values, innermost first.
package protocol
