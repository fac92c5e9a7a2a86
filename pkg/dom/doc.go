// Package dom is the host-side event source a mounted component listens to.
//
// A Document stands in for the browser's document/window pair. The live
// session (or a test) feeds it events decoded from the client, and
// components subscribe with AddEventListener exactly as browser code would:
//
//	remove := doc.AddEventListener(dom.KeyDown, func(e dom.Event) {
//	    if e.Key == "Escape" { ... }
//	})
//	defer remove()
package dom
