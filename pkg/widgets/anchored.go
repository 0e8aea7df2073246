package widgets

import (
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
)

// Anchored floats a child next to an anchor rectangle: a dropdown under
// its trigger, a tooltip beside its target. The node claims the whole
// area it is given so the overlay can escape its trigger's bounds, but
// hit-testing sees only the floating content.
//
// The child keeps its natural size; the placement edge-aligns it to the
// anchor and the result is shifted back into bounds when it would
// overflow.
type Anchored struct {
	// Anchor is the rectangle to attach to, in the same coordinate space
	// the node is arranged in.
	Anchor geometry.Rect
	// Placement picks the side of the anchor. Below is the zero value.
	Placement geometry.Placement
	// Child is the floating content.
	Child core.Widget
}

// AnchoredOf floats child below the anchor rectangle.
func AnchoredOf(anchor geometry.Rect, child core.Widget) Anchored {
	return Anchored{Anchor: anchor, Child: child}
}

// WithPlacement returns a copy with the given placement.
func (a Anchored) WithPlacement(p geometry.Placement) Anchored {
	a.Placement = p
	return a
}

func (a Anchored) NodeType() reflect.Type {
	return reflect.TypeOf(&anchoredNode{})
}

func (a Anchored) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *anchoredNode
	if existing == nil {
		n = &anchoredNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*anchoredNode)
	}
	core.Assign(n, &n.anchor, a.Anchor)
	core.Assign(n, &n.placement, a.Placement)
	n.child = core.ReconcileChild(n.child, a.Child, ctx)
	return n
}

type anchoredNode struct {
	core.NodeBase
	child     core.Node
	anchor    geometry.Rect
	placement geometry.Placement
}

func (n *anchoredNode) VisitChildren(visitor func(core.Node) bool) {
	if n.child != nil {
		visitor(n.child)
	}
}

func (n *anchoredNode) MeasureContent(c geometry.Constraints) geometry.Size {
	if n.child != nil {
		n.child.Measure(c.Loosen())
	}
	return c.MaxSize()
}

func (n *anchoredNode) ArrangeChildren(bounds geometry.Rect) {
	if n.child == nil {
		return
	}
	size := n.child.Measure(geometry.Loose(bounds.Size()))
	n.child.Arrange(geometry.Anchor(n.anchor, size, bounds, n.placement))
}

// ContentBounds narrows hit-testing to the floating child, so cells a
// transparent overlay covers still belong to whatever is underneath.
func (n *anchoredNode) ContentBounds() geometry.Rect {
	if n.child == nil {
		return geometry.Rect{}
	}
	return n.child.Bounds()
}
