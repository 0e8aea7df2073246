package widgets

import (
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
)

// List is a focusable, scrollable column of items with one selected row.
// Items carrying keys (core.Keyed) are matched by key across frames, so
// inserting or reordering items keeps selection and per-item state with
// the item it belongs to. Selection index and scroll offset live on the
// node and survive reconciliation; when the item set shrinks beneath the
// selection it is clamped to the last item.
type List struct {
	// Items are the row descriptors, in display order.
	Items []core.Widget
	// OnSelect is called with the new index when selection moves.
	OnSelect func(index int)
}

// ListOf creates a list of the given items.
func ListOf(items ...core.Widget) List {
	return List{Items: items}
}

// WithOnSelect returns a copy of the list with a selection callback.
func (l List) WithOnSelect(fn func(int)) List {
	l.OnSelect = fn
	return l
}

func (l List) NodeType() reflect.Type {
	return reflect.TypeOf(&ListNode{})
}

func (l List) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *ListNode
	if existing == nil {
		n = &ListNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*ListNode)
	}
	n.onSelect = l.OnSelect
	n.children = core.ReconcileKeyed(n.children, l.Items, ctx.WithAxis(geometry.AxisVertical))
	n.clampSelection()
	return n
}

// ListNode is the render node behind List.
type ListNode struct {
	core.NodeBase
	children []core.Node
	selected int
	scroll   int
	onSelect func(int)
}

func (n *ListNode) Focusable() bool {
	return true
}

func (n *ListNode) VisitChildren(visitor func(core.Node) bool) {
	for _, child := range n.children {
		if !visitor(child) {
			return
		}
	}
}

// Selected returns the index of the selected item. It is zero for an
// empty list.
func (n *ListNode) Selected() int {
	return n.selected
}

// Select moves selection to index, clamped to the item range.
func (n *ListNode) Select(index int) {
	prev := n.selected
	n.selected = index
	n.clampSelection()
	if n.selected != prev {
		n.MarkDirty()
		if n.onSelect != nil {
			n.onSelect(n.selected)
		}
	}
}

// SelectNext moves selection down one item, stopping at the end.
func (n *ListNode) SelectNext() {
	n.Select(n.selected + 1)
}

// SelectPrev moves selection up one item, stopping at the start.
func (n *ListNode) SelectPrev() {
	n.Select(n.selected - 1)
}

func (n *ListNode) clampSelection() {
	if len(n.children) == 0 {
		n.selected = 0
		return
	}
	if n.selected >= len(n.children) {
		n.selected = len(n.children) - 1
	}
	if n.selected < 0 {
		n.selected = 0
	}
}

func (n *ListNode) MeasureContent(c geometry.Constraints) geometry.Size {
	loose := c.Loosen()
	var size geometry.Size
	for _, child := range n.children {
		cs := child.Measure(loose)
		size.Height += cs.Height
		if cs.Width > size.Width {
			size.Width = cs.Width
		}
	}
	return size
}

func (n *ListNode) ArrangeChildren(bounds geometry.Rect) {
	if len(n.children) == 0 {
		return
	}
	loose := geometry.Loose(geometry.Size{Width: bounds.Width, Height: geometry.Unbounded})

	heights := make([]int, len(n.children))
	tops := make([]int, len(n.children))
	total := 0
	for i, child := range n.children {
		heights[i] = child.Measure(loose).Height
		tops[i] = total
		total += heights[i]
	}

	// Keep the selected item inside the viewport, then clamp the scroll
	// range so shrinking content snaps back.
	selTop := tops[n.selected]
	selBottom := selTop + heights[n.selected]
	if selBottom > n.scroll+bounds.Height {
		n.scroll = selBottom - bounds.Height
	}
	if selTop < n.scroll {
		n.scroll = selTop
	}
	if maxScroll := total - bounds.Height; n.scroll > maxScroll {
		n.scroll = maxScroll
	}
	if n.scroll < 0 {
		n.scroll = 0
	}

	for i, child := range n.children {
		child.Arrange(geometry.RectOf(bounds.X, bounds.Y+tops[i]-n.scroll, bounds.Width, heights[i]))
	}
}

func (n *ListNode) RenderContent(rc *core.RenderContext) {
	if n.selected >= len(n.children) {
		return
	}
	style := rc.Theme.ListItem
	if n.IsFocused() {
		style = rc.Theme.ListSelected
	}
	if len(n.children) > 0 {
		row := n.children[n.selected].Bounds().Intersect(n.Bounds()).Intersect(rc.Clip)
		rc.Surface.Fill(row, style)
	}
}
