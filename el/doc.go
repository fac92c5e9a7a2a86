// Package el is the element DSL for CineVerse components. It re-exports
// the vdom constructors so component files can dot-import a single
// package:
//
//	import . "github.com/cineverse/cineverse/el"
//
//	func Logo() *VNode {
//	    return A(Href("/movies"), AriaLabel("Go home"), Text("CineVerse"))
//	}
package el
