package vdom

import (
	"reflect"
	"testing"
)

func sampleTree() *VNode {
	return Div(ID("app"),
		Header(
			Div(ID("user-menu"),
				Button(ID("user-trigger"), Text("Profile")),
				Div(Role("menu"), Button(Text("Sign Out"))),
			),
		),
		Div(ID("mobile-menu")),
	)
}

func TestFindByID(t *testing.T) {
	root := sampleTree()

	if n := FindByID(root, "user-trigger"); n == nil || n.Tag != "button" {
		t.Fatalf("FindByID(user-trigger) = %v", n)
	}
	if FindByID(root, "nope") != nil {
		t.Error("found a missing id")
	}
	if FindByID(root, "") != nil {
		t.Error("empty ref matched")
	}
}

func TestPathToByID(t *testing.T) {
	root := sampleTree()

	got := PathTo(root, "user-trigger")
	want := []string{"user-trigger", "user-menu", "app"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PathTo() = %v, want %v", got, want)
	}

	if PathTo(root, "missing") != nil {
		t.Error("PathTo(missing) should be nil")
	}
}

func TestPathToIncludesHIDs(t *testing.T) {
	root := sampleTree()
	AssignHIDs(root)

	signOut := Find(root, func(n *VNode) bool {
		return n.Tag == "button" && n.TextContent() == "Sign Out"
	})
	if signOut == nil {
		t.Fatal("sign out button missing")
	}

	path := PathTo(root, signOut.HID)
	if len(path) == 0 || path[0] != signOut.HID {
		t.Fatalf("path = %v, want it to start with %s", path, signOut.HID)
	}
	found := false
	for _, ref := range path {
		if ref == "user-menu" {
			found = true
		}
	}
	if !found {
		t.Errorf("path %v does not contain user-menu", path)
	}
}

func TestAssignHIDsDocumentOrder(t *testing.T) {
	root := Div(Span(), Fragment(Button(), Text("t")), P())
	n := AssignHIDs(root)

	if n != 4 {
		t.Fatalf("AssignHIDs() = %d, want 4", n)
	}
	hids := []string{root.HID, root.Children[0].HID, root.Children[1].Children[0].HID, root.Children[2].HID}
	want := []string{"h1", "h2", "h3", "h4"}
	if !reflect.DeepEqual(hids, want) {
		t.Errorf("hids = %v, want %v", hids, want)
	}
}

func TestAssignHIDsStableAcrossOverlays(t *testing.T) {
	build := func(open bool) *VNode {
		return Div(ID("app"),
			Button(ID("toggle")),
			If(open, Div(ID("panel"), A(Key("/a")), A(Key("/b")))),
			Nav(A(Key("/a")), A(Key("/b"))),
			Span(),
		)
	}
	closed, open := build(false), build(true)
	AssignHIDs(closed)
	AssignHIDs(open)

	tests := []struct {
		name string
		node func(root *VNode) *VNode
		want string
	}{
		{"id", func(r *VNode) *VNode { return r.Children[0] }, "h-toggle"},
		{"keyed under root", func(r *VNode) *VNode { return r.Children[len(r.Children)-2].Children[1] }, "h-app:/b"},
		{"anonymous", func(r *VNode) *VNode { return r.Children[len(r.Children)-2] }, "h1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node(closed).HID; got != tt.want {
				t.Errorf("closed HID = %q, want %q", got, tt.want)
			}
			if got := tt.node(open).HID; got != tt.want {
				t.Errorf("open HID = %q, want %q", got, tt.want)
			}
		})
	}

	if got := open.Children[1].Children[0].HID; got != "h-panel:/a" {
		t.Errorf("panel link HID = %q, want h-panel:/a", got)
	}
}

func TestAssignHIDsDuplicateKeys(t *testing.T) {
	root := Div(ID("list"), P(Key("x")), P(Key("x")))
	AssignHIDs(root)

	if got := root.Children[0].HID; got != "h-list:x" {
		t.Errorf("first HID = %q, want h-list:x", got)
	}
	if got := root.Children[1].HID; got != "h1" {
		t.Errorf("duplicate HID = %q, want h1", got)
	}
}

func TestWalkExpandsComponents(t *testing.T) {
	comp := Func(func() *VNode { return Button(ID("inside")) })
	root := Div(comp)

	if FindByID(root, "inside") == nil {
		t.Error("component output not walked")
	}
	if got := PathTo(root, "inside"); !reflect.DeepEqual(got, []string{"inside"}) {
		t.Errorf("PathTo() = %v", got)
	}
}

func TestFindAll(t *testing.T) {
	root := sampleTree()
	buttons := FindAll(root, func(n *VNode) bool { return n.Tag == "button" })
	if len(buttons) != 2 {
		t.Errorf("len(buttons) = %d, want 2", len(buttons))
	}
}
