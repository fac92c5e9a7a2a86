// Package vdom implements the virtual DOM used by CineVerse components.
//
// Components build trees of *VNode with the element, attribute and event
// helpers in this package (usually through the dot-imported el package):
//
//	Nav(Role("navigation"), AriaLabel("Main navigation"),
//	    A(Href("/movies"), Text("Movies")),
//	)
//
// Event handlers are stored in Props under "on<event>" keys and are never
// rendered as attributes. AssignHIDs gives every element a stable
// hydration ID so the browser client can address handlers by HID.
//
// The tree helpers (FindByID, PathTo, Walk) let a host answer questions
// such as "is this pointer target inside that overlay" without a browser.
package vdom
