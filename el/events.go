// This file re-exports vdom event helpers for the el package.
package el

import "github.com/cineverse/cineverse/pkg/vdom"

func OnClick(handler any) EventHandler       { return vdom.OnClick(handler) }
func OnMouseDown(handler any) EventHandler   { return vdom.OnMouseDown(handler) }
func OnPointerDown(handler any) EventHandler { return vdom.OnPointerDown(handler) }
func OnKeyDown(handler any) EventHandler     { return vdom.OnKeyDown(handler) }
func OnScroll(handler any) EventHandler      { return vdom.OnScroll(handler) }
