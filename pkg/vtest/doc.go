// Package vtest provides helpers for testing CineVerse components without a
// browser.
//
// Render helpers assert on HTML output:
//
//	vtest.ExpectContains(t, comp.Render(), "Welcome")
//
// A Harness mounts a component on a fresh dom.Document and fires the same
// events a browser would, in the same order:
//
//	h := vtest.Mount(t, header.New(header.Props{}, snap))
//	h.ClickLabel("User menu")
//	h.KeyDown("Escape")
//	h.ExpectNoElement("[role=menu]")
package vtest
