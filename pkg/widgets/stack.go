package widgets

import (
	"log"
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
)

// HintCarrier is implemented by widgets that declare how a Stack should
// size them on its main axis. Children without a hint are content-sized.
type HintCarrier interface {
	SizeHint() geometry.SizeHint
}

// Stack lays out children along one axis. Content and fixed children take
// their declared space first; weighted children split what remains, with
// leftover cells going to earlier children.
type Stack struct {
	// Axis is the layout direction. Vertical is the zero value.
	Axis geometry.Axis
	// Gap is the number of blank cells between adjacent children.
	Gap int
	// Children are laid out in order.
	Children []core.Widget
}

// Column creates a vertical stack.
func Column(children ...core.Widget) Stack {
	return Stack{Axis: geometry.AxisVertical, Children: children}
}

// Row creates a horizontal stack.
func Row(children ...core.Widget) Stack {
	return Stack{Axis: geometry.AxisHorizontal, Children: children}
}

// WithGap returns a copy of the stack with the given inter-child gap.
func (s Stack) WithGap(gap int) Stack {
	s.Gap = gap
	return s
}

func (s Stack) NodeType() reflect.Type {
	return reflect.TypeOf(&stackNode{})
}

func (s Stack) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *stackNode
	if existing == nil {
		n = &stackNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*stackNode)
	}
	core.Assign(n, &n.axis, s.Axis)
	core.Assign(n, &n.gap, s.Gap)

	// Nil children are skipped during reconciliation, so hints must be
	// collected over the same filtered list to stay index-aligned.
	widgets := make([]core.Widget, 0, len(s.Children))
	hints := make([]geometry.SizeHint, 0, len(s.Children))
	for _, child := range s.Children {
		if child == nil {
			continue
		}
		widgets = append(widgets, child)
		var hint geometry.SizeHint
		if carrier, ok := child.(HintCarrier); ok {
			hint = carrier.SizeHint()
		}
		hints = append(hints, hint)
	}
	if !hintsEqual(n.hints, hints) {
		n.hints = hints
		n.MarkDirty()
	}

	n.children = core.ReconcileSlice(n.children, widgets, ctx.WithAxis(s.Axis))
	return n
}

func hintsEqual(a, b []geometry.SizeHint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type stackNode struct {
	core.NodeBase
	axis     geometry.Axis
	gap      int
	hints    []geometry.SizeHint
	children []core.Node
}

func (n *stackNode) VisitChildren(visitor func(core.Node) bool) {
	for _, child := range n.children {
		if !visitor(child) {
			return
		}
	}
}

func (n *stackNode) MeasureContent(c geometry.Constraints) geometry.Size {
	loose := c.Loosen()
	main := 0
	cross := 0
	for i, child := range n.children {
		if n.hints[i].Kind == geometry.HintWeighted && c.Main(n.axis) >= geometry.Unbounded {
			log.Printf("widgets: weighted child %d of an unbounded %v stack receives zero cells", i, n.axis)
		}
		cs := child.Measure(loose)
		m := mainOf(cs, n.axis)
		if n.hints[i].Kind == geometry.HintFixed {
			m = n.hints[i].Cells
		}
		main += m
		if x := crossOf(cs, n.axis); x > cross {
			cross = x
		}
	}
	if len(n.children) > 1 {
		main += n.gap * (len(n.children) - 1)
	}
	return alongAxis(n.axis, main, cross)
}

func (n *stackNode) ArrangeChildren(bounds geometry.Rect) {
	count := len(n.children)
	if count == 0 {
		return
	}
	crossExtent := crossOf(bounds.Size(), n.axis)
	budget := mainOf(bounds.Size(), n.axis) - n.gap*(count-1)
	if budget < 0 {
		budget = 0
	}

	// First pass: content and fixed children claim their space.
	sizes := make([]int, count)
	remaining := budget
	totalWeight := 0
	for i, child := range n.children {
		switch n.hints[i].Kind {
		case geometry.HintFixed:
			sizes[i] = min(max(n.hints[i].Cells, 0), remaining)
		case geometry.HintWeighted:
			totalWeight += max(n.hints[i].Weight, 1)
			continue
		default:
			cs := child.Measure(looseAlong(n.axis, remaining, crossExtent))
			sizes[i] = min(mainOf(cs, n.axis), remaining)
		}
		remaining -= sizes[i]
	}

	// Second pass: weighted children split the remainder; leftover cells
	// go to earlier weighted children so allocation is deterministic.
	if totalWeight > 0 && remaining > 0 {
		leftover := remaining
		for i := range n.children {
			if n.hints[i].Kind != geometry.HintWeighted {
				continue
			}
			w := max(n.hints[i].Weight, 1)
			sizes[i] = remaining * w / totalWeight
			leftover -= sizes[i]
		}
		for i := range n.children {
			if leftover == 0 {
				break
			}
			if n.hints[i].Kind == geometry.HintWeighted {
				sizes[i]++
				leftover--
			}
		}
	}

	offset := mainOf(geometry.Size{Width: bounds.X, Height: bounds.Y}, n.axis)
	for i, child := range n.children {
		child.Arrange(rectAlong(n.axis, bounds, offset, sizes[i], crossExtent))
		offset += sizes[i] + n.gap
	}
}

func mainOf(s geometry.Size, axis geometry.Axis) int {
	if axis == geometry.AxisHorizontal {
		return s.Width
	}
	return s.Height
}

func crossOf(s geometry.Size, axis geometry.Axis) int {
	if axis == geometry.AxisHorizontal {
		return s.Height
	}
	return s.Width
}

func alongAxis(axis geometry.Axis, main, cross int) geometry.Size {
	if axis == geometry.AxisHorizontal {
		return geometry.Size{Width: main, Height: cross}
	}
	return geometry.Size{Width: cross, Height: main}
}

func looseAlong(axis geometry.Axis, main, cross int) geometry.Constraints {
	return geometry.Loose(alongAxis(axis, main, cross))
}

func rectAlong(axis geometry.Axis, bounds geometry.Rect, offset, main, cross int) geometry.Rect {
	if axis == geometry.AxisHorizontal {
		return geometry.RectOf(offset, bounds.Y, main, cross)
	}
	return geometry.RectOf(bounds.X, offset, cross, main)
}
