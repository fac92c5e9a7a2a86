// This file re-exports vdom element constructors for the el package.
package el

import "github.com/cineverse/cineverse/pkg/vdom"

func El(tag string, args ...any) *VNode { return vdom.El(tag, args...) }

func Html(args ...any) *VNode    { return vdom.Html(args...) }
func Head(args ...any) *VNode    { return vdom.Head(args...) }
func Body(args ...any) *VNode    { return vdom.Body(args...) }
func Title(args ...any) *VNode   { return vdom.Title(args...) }
func Meta(args ...any) *VNode    { return vdom.Meta(args...) }
func LinkEl(args ...any) *VNode  { return vdom.LinkEl(args...) }
func Script(args ...any) *VNode  { return vdom.Script(args...) }
func Header(args ...any) *VNode  { return vdom.Header(args...) }
func Footer(args ...any) *VNode  { return vdom.Footer(args...) }
func Main(args ...any) *VNode    { return vdom.Main(args...) }
func Nav(args ...any) *VNode     { return vdom.Nav(args...) }
func Section(args ...any) *VNode { return vdom.Section(args...) }
func Div(args ...any) *VNode     { return vdom.Div(args...) }
func Span(args ...any) *VNode    { return vdom.Span(args...) }
func P(args ...any) *VNode       { return vdom.P(args...) }
func H1(args ...any) *VNode      { return vdom.H1(args...) }
func H2(args ...any) *VNode      { return vdom.H2(args...) }
func A(args ...any) *VNode       { return vdom.A(args...) }
func Button(args ...any) *VNode  { return vdom.Button(args...) }
func Img(args ...any) *VNode     { return vdom.Img(args...) }

// Link creates an anchor to href.
func Link(href string, args ...any) *VNode {
	return vdom.A(append([]any{vdom.Href(href)}, args...)...)
}
