package el

import "github.com/cineverse/cineverse/pkg/vdom"

type (
	VNode        = vdom.VNode
	Attr         = vdom.Attr
	EventHandler = vdom.EventHandler
	Component    = vdom.Component
)
