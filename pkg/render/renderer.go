package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/cineverse/cineverse/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Hydrate assigns hydration IDs and emits data-hid / data-on-* markers.
	Hydrate bool

	// Doctype prefixes the output with <!DOCTYPE html> when the root is <html>.
	Doctype bool
}

// Renderer renders VNode trees to HTML. A Renderer is not safe for
// concurrent use; create one per render or per session.
type Renderer struct {
	config   RendererConfig
	handlers map[string]any
}

// NewRenderer creates a Renderer.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{
		config:   config,
		handlers: make(map[string]any),
	}
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams node to w. With Hydrate set, HIDs are reassigned
// and the handler registry is rebuilt from scratch.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	if r.config.Hydrate {
		r.handlers = make(map[string]any)
		vdom.AssignHIDs(node)
	}
	if r.config.Doctype && node != nil && node.Kind == vdom.KindElement && node.Tag == "html" {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
	}
	return r.renderNode(w, node)
}

// GetHandlers returns the handlers collected by the last hydrating render,
// keyed "<hid>_on<event>" (e.g. "h12_onclick").
func (r *Renderer) GetHandlers() map[string]any {
	return r.handlers
}

// Handler returns the handler for hid and event ("click").
func (r *Renderer) Handler(hid, event string) (any, bool) {
	h, ok := r.handlers[hid+"_on"+event]
	return h, ok
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindFragment:
		return r.renderChildren(w, node.Children)
	case vdom.KindComponent:
		if len(node.Children) > 0 {
			return r.renderChildren(w, node.Children)
		}
		if node.Comp != nil {
			return r.renderNode(w, node.Comp.Render())
		}
		return nil
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderChildren(w io.Writer, children []*vdom.VNode) error {
	for _, child := range children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if vdom.IsVoidElement(node.Tag) {
		return nil
	}

	if err := r.renderChildren(w, node.Children); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+node.Tag+">")
	return err
}

// renderAttributes writes attributes in sorted order for deterministic output.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []string
	for _, key := range keys {
		value := node.Props[key]

		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			events = append(events, key)
			continue
		}
		if strings.HasPrefix(key, "_") {
			continue
		}

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := io.WriteString(w, " "+key); err != nil {
						return err
					}
				}
				continue
			}
		}

		str, ok := attrToString(value)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(str)); err != nil {
			return err
		}
	}

	if !r.config.Hydrate || node.HID == "" {
		return nil
	}

	if _, err := fmt.Fprintf(w, ` data-hid="%s"`, escapeAttr(node.HID)); err != nil {
		return err
	}
	for _, key := range events {
		r.handlers[node.HID+"_"+key] = node.Props[key]
		if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, key[2:]); err != nil {
			return err
		}
	}
	return nil
}

var booleanAttrs = map[string]bool{
	"autofocus": true,
	"checked":   true,
	"defer":     true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

func isBooleanAttr(key string) bool {
	return booleanAttrs[key]
}

func isEventHandler(value any) bool {
	switch value.(type) {
	case nil:
		return false
	case func(), func(any):
		return true
	default:
		return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
	}
}

// attrToString converts an attribute value; aria-* booleans render as
// "true"/"false" because assistive technology reads the literal value.
func attrToString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
