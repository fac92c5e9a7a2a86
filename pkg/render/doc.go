// Package render turns vdom trees into HTML.
//
// With Hydrate enabled every element gets a data-hid attribute and every
// element with handlers gets data-on-<event> markers. The handler registry
// (GetHandlers) maps "<hid>_on<event>" to the Go handler so a live session
// can route client events back to the component.
package render
