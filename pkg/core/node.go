// Package core implements the retained render tree: persistent nodes,
// immutable widget descriptors, the reconciler that matches one to the
// other, and the session that owns cross-cutting state such as focus.
//
// Application code declares a tree of widget descriptors each frame. The
// reconciler walks the old node tree and the new descriptor tree in
// lockstep, reusing matched nodes and creating or disposing the rest. The
// updated tree is then measured bottom-up, arranged top-down and rendered
// into a cell surface.
package core

import (
	"github.com/go-tessel/tessel/pkg/geometry"
)

// Node is a persistent, mutable render-tree element. A node is created by
// exactly one reconciliation and owned by exactly one parent; it survives
// across frames while its descriptor keeps matching, carrying layout and
// interaction state the descriptor does not.
type Node interface {
	// Measure computes the node's size under the given constraints.
	// Results are cached per frame keyed by the constraints used, since
	// Arrange always follows a corresponding Measure in the same pass.
	Measure(c geometry.Constraints) geometry.Size

	// Arrange assigns the node's absolute bounds and positions children.
	Arrange(bounds geometry.Rect)

	// Render emits the node's cells and recurses into rendered children.
	Render(rc *RenderContext)

	// Bounds returns the last-arranged rectangle.
	Bounds() geometry.Rect

	// ContentBounds returns the effective hit-test rectangle. It defaults
	// to Bounds; overlay nodes narrow it to their floating content.
	ContentBounds() geometry.Rect

	// IsDirty reports whether the node must re-render even if its bounds
	// are unchanged.
	IsDirty() bool

	// MarkDirty flags the node for re-render.
	MarkDirty()

	// IsFocused reports whether this node holds the single focus.
	IsFocused() bool

	// IsHovered reports whether the pointer rests on this node.
	IsHovered() bool

	// Focusable reports whether the node can receive focus.
	Focusable() bool

	// VisitChildren calls the visitor for each child in order, stopping
	// when the visitor returns false.
	VisitChildren(visitor func(Node) bool)

	// Dispose tears down the node and its subtree, releasing resources
	// and surrendering focus. A disposed node is never reused.
	Dispose()

	// Mounted reports whether the node is still part of the tree.
	Mounted() bool

	base() *NodeBase
}

// ContentMeasurer computes a node's natural size. Nodes that don't
// implement it measure as empty (clamped into the constraints).
type ContentMeasurer interface {
	MeasureContent(c geometry.Constraints) geometry.Size
}

// ChildArranger positions children after the node's own bounds are set.
type ChildArranger interface {
	ArrangeChildren(bounds geometry.Rect)
}

// ContentRenderer paints the node's own cells. Children are rendered by
// the base after the node's content.
type ContentRenderer interface {
	RenderContent(rc *RenderContext)
}

// ContentDisposer releases type-specific resources on disposal.
type ContentDisposer interface {
	DisposeContent()
}

// RenderChildVisitor is implemented by nodes whose rendered children
// differ from their structural children (e.g. a switcher renders only the
// active branch).
type RenderChildVisitor interface {
	VisitRenderChildren(visitor func(Node) bool)
}

// FocusChildVisitor is implemented by nodes whose focus-reachable children
// differ from their structural children.
type FocusChildVisitor interface {
	VisitFocusChildren(visitor func(Node) bool)
}

// NodeBase provides the common node state. Concrete nodes embed it and
// register themselves with Init so the base can reach their hook methods.
type NodeBase struct {
	self    Node
	session *Session

	bounds  geometry.Rect
	dirty   bool
	focused bool
	hovered bool
	mounted bool

	measureConstraints geometry.Constraints
	measuredSize       geometry.Size
	measureFrame       uint64
	hasMeasure         bool
}

// Init registers the concrete node and binds it to the reconciling
// session. Widgets call this once, when creating a node.
func (n *NodeBase) Init(self Node, ctx Context) {
	n.self = self
	n.session = ctx.session
	n.mounted = true
	n.dirty = true
}

// Self returns the concrete node registered via Init.
func (n *NodeBase) Self() Node {
	return n.self
}

// Session returns the session this node belongs to.
func (n *NodeBase) Session() *Session {
	return n.session
}

func (n *NodeBase) base() *NodeBase {
	return n
}

// Bounds returns the last-arranged rectangle.
func (n *NodeBase) Bounds() geometry.Rect {
	return n.bounds
}

// ContentBounds returns the hit-test rectangle, defaulting to Bounds.
func (n *NodeBase) ContentBounds() geometry.Rect {
	return n.bounds
}

// IsDirty reports whether the node needs re-rendering.
func (n *NodeBase) IsDirty() bool {
	return n.dirty
}

// MarkDirty flags the node for re-render.
func (n *NodeBase) MarkDirty() {
	n.dirty = true
}

// ClearDirty marks the node as rendered.
func (n *NodeBase) ClearDirty() {
	n.dirty = false
}

// IsFocused reports whether this node holds the single focus.
func (n *NodeBase) IsFocused() bool {
	return n.focused
}

// IsHovered reports whether the pointer rests on this node.
func (n *NodeBase) IsHovered() bool {
	return n.hovered
}

// Focusable reports whether the node can receive focus. The base is not
// focusable; interactive nodes shadow this method.
func (n *NodeBase) Focusable() bool {
	return false
}

// Mounted reports whether the node is still part of the tree.
func (n *NodeBase) Mounted() bool {
	return n.mounted
}

// VisitChildren is a no-op on the base; containers shadow it.
func (n *NodeBase) VisitChildren(visitor func(Node) bool) {}

// setFocused flips the focus flag. Only the session calls this, which is
// what keeps the single-focus invariant a single-writer concern.
func (n *NodeBase) setFocused(focused bool) {
	if n.focused == focused {
		return
	}
	n.focused = focused
	n.dirty = true
}

func (n *NodeBase) setHovered(hovered bool) {
	if n.hovered == hovered {
		return
	}
	n.hovered = hovered
	n.dirty = true
}

// Measure handles constraint caching and defensive clamping, delegating
// natural sizing to the node's MeasureContent.
//
// The cache is valid for one layout pass: Arrange is always invoked with a
// rectangle derived from a Measure call in the same pass, so a container
// re-asking for a child's size during Arrange hits the cache instead of
// re-running the child's measurement.
func (n *NodeBase) Measure(c geometry.Constraints) geometry.Size {
	var frame uint64
	if n.session != nil {
		frame = n.session.frame
	}
	if n.hasMeasure && n.measureFrame == frame && c == n.measureConstraints {
		return n.measuredSize
	}

	var size geometry.Size
	if m, ok := n.self.(ContentMeasurer); ok {
		size = m.MeasureContent(c)
	}
	// A child reporting a size outside its constraints is clamped rather
	// than allowed to propagate bad geometry.
	size = c.Constrain(size)

	n.measureConstraints = c
	n.measuredSize = size
	n.measureFrame = frame
	n.hasMeasure = true
	return size
}

// Arrange assigns bounds and positions children via ArrangeChildren.
func (n *NodeBase) Arrange(bounds geometry.Rect) {
	if bounds.Width < 0 {
		bounds.Width = 0
	}
	if bounds.Height < 0 {
		bounds.Height = 0
	}
	if bounds != n.bounds {
		n.bounds = bounds
		n.dirty = true
	}
	if a, ok := n.self.(ChildArranger); ok {
		a.ArrangeChildren(bounds)
	}
}

// Render paints the node's content, then its rendered children clipped to
// this node's bounds, and clears the dirty flag.
func (n *NodeBase) Render(rc *RenderContext) {
	if r, ok := n.self.(ContentRenderer); ok {
		r.RenderContent(rc)
	}
	childClip := rc.Clip.Intersect(n.bounds)
	childCtx := rc.WithClip(childClip)
	visitRenderChildren(n.self, func(child Node) bool {
		child.Render(childCtx)
		return true
	})
	n.dirty = false
}

// Dispose tears down the subtree rooted at this node.
func (n *NodeBase) Dispose() {
	if !n.mounted {
		return
	}
	n.mounted = false
	if n.session != nil {
		n.session.noteDisposed(n.self)
	}
	if d, ok := n.self.(ContentDisposer); ok {
		d.DisposeContent()
	}
	n.self.VisitChildren(func(child Node) bool {
		if child != nil {
			child.Dispose()
		}
		return true
	})
}

// visitRenderChildren visits the children that participate in rendering.
func visitRenderChildren(n Node, visitor func(Node) bool) {
	if rv, ok := n.(RenderChildVisitor); ok {
		rv.VisitRenderChildren(visitor)
		return
	}
	n.VisitChildren(visitor)
}

// visitFocusChildren visits the children reachable by focus traversal.
func visitFocusChildren(n Node, visitor func(Node) bool) {
	if fv, ok := n.(FocusChildVisitor); ok {
		fv.VisitFocusChildren(visitor)
		return
	}
	n.VisitChildren(visitor)
}

// Assign sets *dst to v, marking the node dirty only when the value
// actually changes. Widgets use it to keep re-render cost proportional to
// actual descriptor change.
func Assign[T comparable](n Node, dst *T, v T) bool {
	if *dst == v {
		return false
	}
	*dst = v
	n.MarkDirty()
	return true
}
