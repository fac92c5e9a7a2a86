// This file re-exports vdom attribute helpers for the el package.
package el

import "github.com/cineverse/cineverse/pkg/vdom"

func ID(id string) Attr                 { return vdom.ID(id) }
func Class(classes ...string) Attr      { return vdom.Class(classes...) }
func Key(key string) Attr               { return vdom.Key(key) }
func Data(key, value string) Attr       { return vdom.Data(key, value) }
func Role(role string) Attr             { return vdom.Role(role) }
func TabIndex(index int) Attr           { return vdom.TabIndex(index) }
func Lang(lang string) Attr             { return vdom.Lang(lang) }
func Charset(charset string) Attr       { return vdom.Charset(charset) }
func Name(name string) Attr             { return vdom.Name(name) }
func Content(content string) Attr       { return vdom.Content(content) }
func Href(url string) Attr              { return vdom.Href(url) }
func Rel(rel string) Attr               { return vdom.Rel(rel) }
func Src(url string) Attr               { return vdom.Src(url) }
func Alt(text string) Attr              { return vdom.Alt(text) }
func Type(t string) Attr                { return vdom.Type(t) }
func TitleAttr(title string) Attr       { return vdom.TitleAttr(title) }
func ClassIf(cond bool, c string) string { return vdom.ClassIf(cond, c) }

// ARIA attributes used by the header's menus and navigation.

func AriaLabel(label string) Attr      { return vdom.AriaLabel(label) }
func AriaHidden(hidden bool) Attr      { return vdom.AriaHidden(hidden) }
func AriaExpanded(expanded bool) Attr  { return vdom.AriaExpanded(expanded) }
func AriaHasPopup(value string) Attr   { return vdom.AriaHasPopup(value) }
func AriaControls(id string) Attr      { return vdom.AriaControls(id) }
func AriaCurrent(value string) Attr    { return vdom.AriaCurrent(value) }
