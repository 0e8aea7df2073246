package widgets

import (
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
)

// Switcher holds several branches and shows one. All branches stay in the
// node tree, so the hidden ones keep their state (scroll positions,
// selections, loaded content) and switching back is instant. Only the
// active branch is measured, rendered, and reachable by focus traversal.
//
// When the active branch changes while focus was inside the old one,
// focus moves to the first focusable node of the new branch.
type Switcher struct {
	// Active is the index of the visible branch, clamped to range.
	Active int
	// Branches are the alternative subtrees.
	Branches []core.Widget
}

// SwitcherOf creates a switcher showing branch 0.
func SwitcherOf(branches ...core.Widget) Switcher {
	return Switcher{Branches: branches}
}

// WithActive returns a copy showing the given branch.
func (s Switcher) WithActive(active int) Switcher {
	s.Active = active
	return s
}

func (s Switcher) NodeType() reflect.Type {
	return reflect.TypeOf(&switcherNode{})
}

func (s Switcher) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *switcherNode
	if existing == nil {
		n = &switcherNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*switcherNode)
	}
	n.children = core.ReconcileSlice(n.children, s.Branches, ctx.WithParentManagesFocus())

	active := s.Active
	if active < 0 {
		active = 0
	}
	if len(n.children) > 0 && active >= len(n.children) {
		active = len(n.children) - 1
	}
	core.Assign(n, &n.active, active)

	n.fixFocus(ctx.Session())
	core.SeedFocus(ctx, n)
	return n
}

type switcherNode struct {
	core.NodeBase
	children []core.Node
	active   int
}

func (n *switcherNode) activeChild() core.Node {
	if n.active < 0 || n.active >= len(n.children) {
		return nil
	}
	return n.children[n.active]
}

// fixFocus moves focus into the active branch when an inactive branch
// holds it, which happens right after the active index changes.
func (n *switcherNode) fixFocus(s *core.Session) {
	active := n.activeChild()
	if s == nil || active == nil || core.FocusWithin(active) {
		return
	}
	for i, branch := range n.children {
		if i != n.active && core.FocusWithin(branch) {
			s.SetFocus(core.FirstFocusable(active))
			return
		}
	}
}

// VisitChildren exposes every branch: reconciliation and disposal must
// reach the hidden ones.
func (n *switcherNode) VisitChildren(visitor func(core.Node) bool) {
	for _, child := range n.children {
		if !visitor(child) {
			return
		}
	}
}

// VisitRenderChildren exposes only the active branch.
func (n *switcherNode) VisitRenderChildren(visitor func(core.Node) bool) {
	if child := n.activeChild(); child != nil {
		visitor(child)
	}
}

// VisitFocusChildren exposes only the active branch.
func (n *switcherNode) VisitFocusChildren(visitor func(core.Node) bool) {
	if child := n.activeChild(); child != nil {
		visitor(child)
	}
}

func (n *switcherNode) MeasureContent(c geometry.Constraints) geometry.Size {
	if child := n.activeChild(); child != nil {
		return child.Measure(c)
	}
	return geometry.Size{}
}

func (n *switcherNode) ArrangeChildren(bounds geometry.Rect) {
	if child := n.activeChild(); child != nil {
		child.Arrange(bounds)
	}
}
