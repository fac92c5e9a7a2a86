// This file re-exports vdom node helpers for the el package.
package el

import "github.com/cineverse/cineverse/pkg/vdom"

func Text(content string) *VNode                { return vdom.Text(content) }
func Textf(format string, args ...any) *VNode   { return vdom.Textf(format, args...) }
func Raw(html string) *VNode                    { return vdom.Raw(html) }
func Fragment(children ...any) *VNode           { return vdom.Fragment(children...) }
func If(condition bool, node *VNode) *VNode     { return vdom.If(condition, node) }
func When(condition bool, fn func() *VNode) *VNode {
	return vdom.When(condition, fn)
}
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	return vdom.IfElse(condition, ifTrue, ifFalse)
}
func Func(render func() *VNode) Component { return vdom.Func(render) }

// Range maps items to nodes, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vdom.Range(items, fn)
}
