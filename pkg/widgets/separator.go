package widgets

import (
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
)

// Separator draws a one-cell rule across the container. Inside a vertical
// stack it renders a horizontal line, and vice versa; the orientation
// comes from the reconcile context unless Axis is set.
type Separator struct {
	// Axis forces the rule's orientation when HasAxis is true.
	Axis    geometry.Axis
	HasAxis bool
}

// SeparatorOf creates a separator oriented by its container.
func SeparatorOf() Separator {
	return Separator{}
}

// WithAxis returns a copy of the separator with a forced orientation.
func (s Separator) WithAxis(axis geometry.Axis) Separator {
	s.Axis = axis
	s.HasAxis = true
	return s
}

// SizeHint reserves one cell on the containing stack's main axis.
func (s Separator) SizeHint() geometry.SizeHint {
	return geometry.Fixed(1)
}

func (s Separator) NodeType() reflect.Type {
	return reflect.TypeOf(&separatorNode{})
}

func (s Separator) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *separatorNode
	if existing == nil {
		n = &separatorNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*separatorNode)
	}
	axis := ctx.Axis().Cross()
	if s.HasAxis {
		axis = s.Axis
	}
	core.Assign(n, &n.axis, axis)
	return n
}

type separatorNode struct {
	core.NodeBase
	axis geometry.Axis
}

func (n *separatorNode) MeasureContent(c geometry.Constraints) geometry.Size {
	length := c.Main(n.axis)
	if length >= geometry.Unbounded {
		length = 1
	}
	return alongAxis(n.axis, length, 1)
}

func (n *separatorNode) RenderContent(rc *core.RenderContext) {
	bounds := n.Bounds().Intersect(rc.Clip)
	if bounds.IsEmpty() {
		return
	}
	r := '─'
	length := bounds.Width
	if n.axis == geometry.AxisVertical {
		r = '│'
		length = bounds.Height
	}
	rc.Surface.DrawLine(bounds.Origin(), length, n.axis, r, rc.Theme.Separator)
}
