package vdom

import "strconv"

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the current node. Component nodes are expanded by
// calling Render.
func Walk(n *VNode, fn func(*VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.children() {
		Walk(child, fn)
	}
}

// children returns the child list, rendering a component node that has not
// been expanded yet.
func (v *VNode) children() []*VNode {
	if v.Kind == KindComponent && len(v.Children) == 0 && v.Comp != nil {
		return []*VNode{v.Comp.Render()}
	}
	return v.Children
}

// Find returns the first node, in document order, matching pred.
func Find(root *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred, in document order.
func FindAll(root *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindByID returns the element whose id attribute or HID equals ref.
func FindByID(root *VNode, ref string) *VNode {
	if ref == "" {
		return nil
	}
	return Find(root, func(n *VNode) bool {
		return n.Kind == KindElement && (n.ID() == ref || n.HID == ref)
	})
}

// NodeRefs returns the identifiers a host may use for n: its id attribute
// and its HID, whichever are set.
func NodeRefs(n *VNode) []string {
	var refs []string
	if id := n.ID(); id != "" {
		refs = append(refs, id)
	}
	if n.HID != "" {
		refs = append(refs, n.HID)
	}
	return refs
}

// PathTo returns the identifiers of the element matching ref and all its
// element ancestors, innermost first, mirroring a browser composedPath().
// It returns nil when ref is not in the tree.
func PathTo(root *VNode, ref string) []string {
	var stack []*VNode
	var result []*VNode

	var visit func(n *VNode) bool
	visit = func(n *VNode) bool {
		if n == nil {
			return false
		}
		if n.Kind == KindElement {
			stack = append(stack, n)
			if n.ID() == ref || n.HID == ref {
				result = append([]*VNode(nil), stack...)
				return true
			}
		}
		for _, child := range n.children() {
			if visit(child) {
				return true
			}
		}
		if n.Kind == KindElement {
			stack = stack[:len(stack)-1]
		}
		return false
	}

	if ref == "" || !visit(root) {
		return nil
	}

	path := make([]string, 0, len(result)*2)
	for i := len(result) - 1; i >= 0; i-- {
		path = append(path, NodeRefs(result[i])...)
	}
	return path
}

// AssignHIDs gives every element a hydration id and returns the number of
// elements visited. Component nodes are rendered in place so the ids match
// what the renderer emits.
//
// An element with an id attribute gets "h-<id>", and a keyed element gets
// "<scope>:<key>" where scope is the HID of its nearest ancestor with such
// a stable id. These survive siblings appearing or disappearing between
// renders, so event handlers should sit on elements with an id or key.
// Remaining elements, and duplicates, are numbered h1, h2, ... in
// document order.
func AssignHIDs(root *VNode) int {
	count, anon := 0, 0
	used := make(map[string]bool)

	stable := func(n *VNode, scope string) string {
		var hid string
		switch {
		case n.ID() != "":
			hid = "h-" + n.ID()
		case n.Key != "":
			hid = scope + ":" + n.Key
		default:
			return ""
		}
		if used[hid] {
			return ""
		}
		used[hid] = true
		return hid
	}

	var visit func(n *VNode, scope string)
	visit = func(n *VNode, scope string) {
		if n == nil {
			return
		}
		switch n.Kind {
		case KindElement:
			count++
			if hid := stable(n, scope); hid != "" {
				n.HID = hid
				scope = hid
			} else {
				anon++
				n.HID = "h" + strconv.Itoa(anon)
			}
		case KindComponent:
			if n.Comp != nil && len(n.Children) == 0 {
				n.Children = []*VNode{n.Comp.Render()}
			}
		}
		for _, child := range n.Children {
			visit(child, scope)
		}
	}
	visit(root, "h")
	return count
}
