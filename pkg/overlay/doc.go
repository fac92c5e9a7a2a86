// Package overlay manages mutually exclusive overlays such as dropdown
// menus and slide-out panels.
//
// A Controller keeps one open/closed state per registered overlay and at
// most one overlay open at a time. Bound to a dom.Document it closes the
// open overlay on Escape and on a pointer-down outside the overlay's bound
// subtrees:
//
//	c := overlay.New()
//	userMenu := c.Register("user", "user-menu")
//	mobile := c.Register("mobile", "mobile-menu", "mobile-toggle")
//	unbind := c.Bind(doc)
//	defer unbind()
//
// Register returns a *vango.BoolSignal, so render functions that read the
// state are re-run when it changes.
package overlay
