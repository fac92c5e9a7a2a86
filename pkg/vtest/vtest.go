package vtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cineverse/cineverse/pkg/render"
	"github.com/cineverse/cineverse/pkg/vdom"
)

// failureContext bounds how much HTML a failed assertion prints.
const failureContext = 500

// RenderToString renders node without hydration markers. Render errors
// yield an empty string.
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains fails the test unless the rendered node contains want.
func ExpectContains(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	checkHTML(t, node, want, true, "substring %q")
}

// ExpectNotContains fails the test if the rendered node contains unwanted.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unwanted string) {
	t.Helper()
	checkHTML(t, node, unwanted, false, "substring %q")
}

// ExpectElement fails the test unless the rendered node contains a tag
// element.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	checkHTML(t, node, "<"+tag, true, "element %q")
}

// ExpectAttribute fails the test unless some rendered element carries
// attr="value".
//
//	vtest.ExpectAttribute(t, comp.Render(), "aria-expanded", "false")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	checkHTML(t, node, fmt.Sprintf("%s=%q", attr, value), true, "attribute %s")
}

func checkHTML(t testing.TB, node *vdom.VNode, needle string, present bool, what string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, needle) == present {
		return
	}
	verb := "missing"
	if !present {
		verb = "unexpected"
	}
	t.Errorf("%s "+what+" in:\n%s", verb, needle, truncate(html, failureContext))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
