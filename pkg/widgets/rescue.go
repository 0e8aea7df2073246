package widgets

import (
	"fmt"
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/errors"
	"github.com/go-tessel/tessel/pkg/geometry"
)

// Rescue isolates a subtree's failures. A panic in the child during
// reconciliation, layout, or rendering is captured as a phase-tagged
// error, the broken subtree is disposed, and the fallback is shown in
// its place. Without a Rescue the error propagates to the session and
// fails the whole frame.
type Rescue struct {
	// Child is the protected subtree.
	Child core.Widget
	// Fallback builds the replacement content from the captured error.
	// Nil renders the error message in the theme's error style.
	Fallback func(err *errors.PhaseError) core.Widget
}

// RescueOf protects child with the default fallback.
func RescueOf(child core.Widget) Rescue {
	return Rescue{Child: child}
}

// WithFallback returns a copy using the given fallback builder.
func (r Rescue) WithFallback(fn func(*errors.PhaseError) core.Widget) Rescue {
	r.Fallback = fn
	return r
}

func (r Rescue) NodeType() reflect.Type {
	return reflect.TypeOf(&RescueNode{})
}

func (r Rescue) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *RescueNode
	if existing == nil {
		n = &RescueNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*RescueNode)
	}

	if n.failed == nil {
		perr := errors.Guard("widgets.Rescue", errors.PhaseReconcile, func() {
			n.child = core.ReconcileChild(n.child, r.Child, ctx)
		})
		if perr != nil {
			n.fail(perr)
		}
	}
	if n.failed != nil {
		var fb core.Widget
		if r.Fallback != nil {
			fb = r.Fallback(n.failed)
		} else {
			fb = TextOf(fmt.Sprintf("error: %v", n.failed)).WithStyle(ctx.Theme().Error)
		}
		n.fallback = core.ReconcileChild(n.fallback, fb, ctx)
	}
	return n
}

// RescueNode is the render node behind Rescue.
type RescueNode struct {
	core.NodeBase
	child    core.Node
	fallback core.Node
	failed   *errors.PhaseError
}

// Err returns the captured failure, or nil while the child is healthy.
func (n *RescueNode) Err() *errors.PhaseError {
	return n.failed
}

// Reset clears the captured failure so the next frame rebuilds the child.
func (n *RescueNode) Reset() {
	if n.failed == nil {
		return
	}
	n.failed = nil
	if n.fallback != nil {
		n.fallback.Dispose()
		n.fallback = nil
	}
	n.MarkDirty()
}

// fail records the error and tears down the broken subtree, releasing any
// focus or hover it held.
func (n *RescueNode) fail(perr *errors.PhaseError) {
	n.failed = perr
	if n.child != nil {
		n.child.Dispose()
		n.child = nil
	}
	n.MarkDirty()
}

func (n *RescueNode) active() core.Node {
	if n.failed != nil {
		return n.fallback
	}
	return n.child
}

func (n *RescueNode) VisitChildren(visitor func(core.Node) bool) {
	if active := n.active(); active != nil {
		visitor(active)
	}
}

// VisitRenderChildren exposes nothing: RenderContent paints the active
// subtree itself so the paint runs under the render guard.
func (n *RescueNode) VisitRenderChildren(visitor func(core.Node) bool) {
}

func (n *RescueNode) MeasureContent(c geometry.Constraints) geometry.Size {
	active := n.active()
	if active == nil {
		return geometry.Size{}
	}
	var size geometry.Size
	perr := errors.Guard("widgets.Rescue", errors.PhaseMeasure, func() {
		size = active.Measure(c)
	})
	if perr != nil {
		n.fail(perr)
		return geometry.Size{}
	}
	return size
}

func (n *RescueNode) ArrangeChildren(bounds geometry.Rect) {
	active := n.active()
	if active == nil {
		return
	}
	if perr := errors.Guard("widgets.Rescue", errors.PhaseArrange, func() {
		active.Arrange(bounds)
	}); perr != nil {
		n.fail(perr)
	}
}

func (n *RescueNode) RenderContent(rc *core.RenderContext) {
	active := n.active()
	if active == nil {
		return
	}
	if perr := errors.Guard("widgets.Rescue", errors.PhaseRender, func() {
		active.Render(rc)
	}); perr != nil {
		n.fail(perr)
	}
}
