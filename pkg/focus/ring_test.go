package focus

import (
	"reflect"
	"testing"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
)

type itemNode struct {
	core.NodeBase
	id string
}

func (n *itemNode) Focusable() bool {
	return true
}

type itemWidget struct {
	id string
}

func (w itemWidget) NodeType() reflect.Type {
	return reflect.TypeOf(&itemNode{})
}

func (w itemWidget) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *itemNode
	if existing == nil {
		n = &itemNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*itemNode)
	}
	n.id = w.id
	return n
}

type panelNode struct {
	core.NodeBase
	children []core.Node
}

func (n *panelNode) VisitChildren(visitor func(core.Node) bool) {
	for _, child := range n.children {
		if !visitor(child) {
			return
		}
	}
}

type panelWidget struct {
	children []core.Widget
}

func (w panelWidget) NodeType() reflect.Type {
	return reflect.TypeOf(&panelNode{})
}

func (w panelWidget) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *panelNode
	if existing == nil {
		n = &panelNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*panelNode)
	}
	n.children = core.ReconcileSlice(n.children, w.children, ctx)
	return n
}

// grid builds a 2x2 panel and arranges the items manually:
//
//	a b
//	c d
func grid(t *testing.T) (*core.Session, *Ring, map[string]core.Node) {
	t.Helper()
	s := core.NewSession(nil)
	if err := s.Reconcile(panelWidget{children: []core.Widget{
		itemWidget{id: "a"},
		itemWidget{id: "b"},
		itemWidget{id: "c"},
		itemWidget{id: "d"},
	}}); err != nil {
		t.Fatal(err)
	}
	panel := s.Root().(*panelNode)
	rects := []geometry.Rect{
		geometry.RectOf(0, 0, 5, 1),
		geometry.RectOf(10, 0, 5, 1),
		geometry.RectOf(0, 4, 5, 1),
		geometry.RectOf(10, 4, 5, 1),
	}
	byID := map[string]core.Node{}
	for i, child := range panel.children {
		child.Arrange(rects[i])
		byID[child.(*itemNode).id] = child
	}
	return s, New(s), byID
}

func focusedID(s *core.Session) string {
	if n, ok := s.Focused().(*itemNode); ok {
		return n.id
	}
	return ""
}

func TestOrderIsPreOrder(t *testing.T) {
	s := core.NewSession(nil)
	if err := s.Reconcile(panelWidget{children: []core.Widget{
		itemWidget{id: "a"},
		panelWidget{children: []core.Widget{
			itemWidget{id: "b"},
			itemWidget{id: "c"},
		}},
		itemWidget{id: "d"},
	}}); err != nil {
		t.Fatal(err)
	}
	ring := New(s)
	var got []string
	for _, n := range ring.Order() {
		got = append(got, n.(*itemNode).id)
	}
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestNextPrevWrap(t *testing.T) {
	s, ring, _ := grid(t)

	if !ring.Next() {
		t.Fatal("Next on empty focus should focus the first node")
	}
	if focusedID(s) != "a" {
		t.Fatalf("focused = %q, want a", focusedID(s))
	}
	for _, want := range []string{"b", "c", "d", "a"} {
		ring.Next()
		if focusedID(s) != want {
			t.Fatalf("focused = %q, want %q", focusedID(s), want)
		}
	}
	ring.Prev()
	if focusedID(s) != "d" {
		t.Fatalf("after wrap back, focused = %q, want d", focusedID(s))
	}
}

func TestPrevFromNoFocusLandsOnLast(t *testing.T) {
	s, ring, _ := grid(t)
	ring.Prev()
	if focusedID(s) != "d" {
		t.Fatalf("focused = %q, want d", focusedID(s))
	}
}

func TestOrderRebuiltOnStructureChange(t *testing.T) {
	s := core.NewSession(nil)
	if err := s.Reconcile(panelWidget{children: []core.Widget{
		itemWidget{id: "a"},
		itemWidget{id: "b"},
	}}); err != nil {
		t.Fatal(err)
	}
	ring := New(s)
	if got := len(ring.Order()); got != 2 {
		t.Fatalf("order len = %d, want 2", got)
	}

	if err := s.Reconcile(panelWidget{children: []core.Widget{
		itemWidget{id: "a"},
	}}); err != nil {
		t.Fatal(err)
	}
	order := ring.Order()
	if len(order) != 1 || order[0].(*itemNode).id != "a" {
		t.Errorf("stale order after structure change: %v", order)
	}
}

func TestMoveDirection(t *testing.T) {
	s, ring, byID := grid(t)
	s.SetFocus(byID["a"])

	steps := []struct {
		dir  Direction
		want string
	}{
		{DirRight, "b"},
		{DirDown, "d"},
		{DirLeft, "c"},
		{DirUp, "a"},
	}
	for _, step := range steps {
		if !ring.MoveDirection(step.dir) {
			t.Fatalf("MoveDirection(%v) = false", step.dir)
		}
		if focusedID(s) != step.want {
			t.Fatalf("after %v, focused = %q, want %q", step.dir, focusedID(s), step.want)
		}
	}
}

func TestMoveDirectionPrefersAligned(t *testing.T) {
	// From a, both b and d lie to the right; b shares the row and must win
	// despite d being equally close on the primary axis.
	s, ring, byID := grid(t)
	s.SetFocus(byID["a"])
	ring.MoveDirection(DirRight)
	if focusedID(s) != "b" {
		t.Errorf("focused = %q, want row-aligned b", focusedID(s))
	}
}

func TestMoveDirectionFallsBackLinear(t *testing.T) {
	// Nothing is left of a, so the move degrades to Prev and wraps to d.
	s, ring, byID := grid(t)
	s.SetFocus(byID["a"])
	ring.MoveDirection(DirLeft)
	if focusedID(s) != "d" {
		t.Errorf("focused = %q, want d via linear fallback", focusedID(s))
	}
}

func TestMoveDirectionNoFocusFocusesFirst(t *testing.T) {
	s, ring, _ := grid(t)
	ring.MoveDirection(DirDown)
	if focusedID(s) != "a" {
		t.Errorf("focused = %q, want a", focusedID(s))
	}
}

func TestEmptyTree(t *testing.T) {
	s := core.NewSession(nil)
	ring := New(s)
	if ring.Next() || ring.Prev() || ring.FocusFirst() || ring.MoveDirection(DirDown) {
		t.Error("movement on an empty tree should report false")
	}
}
