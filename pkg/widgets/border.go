package widgets

import (
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
	"github.com/go-tessel/tessel/pkg/surface"
)

// Border frames a child with box-drawing characters and an optional title.
// It is a focus boundary: when first built it places focus on the first
// focusable node in its subtree, and while any descendant holds focus the
// frame uses the theme's focused border style.
type Border struct {
	// Child is the framed content.
	Child core.Widget
	// Title is drawn into the top edge when non-empty.
	Title string
	// Set overrides the theme's border characters when HasSet is true.
	Set    surface.BorderSet
	HasSet bool
}

// BorderOf frames child with the theme's border characters.
func BorderOf(child core.Widget) Border {
	return Border{Child: child}
}

// WithTitle returns a copy of the border with the given title.
func (b Border) WithTitle(title string) Border {
	b.Title = title
	return b
}

// WithSet returns a copy of the border using the given characters.
func (b Border) WithSet(set surface.BorderSet) Border {
	b.Set = set
	b.HasSet = true
	return b
}

func (b Border) NodeType() reflect.Type {
	return reflect.TypeOf(&borderNode{})
}

func (b Border) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *borderNode
	if existing == nil {
		n = &borderNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*borderNode)
	}
	core.Assign(n, &n.title, b.Title)
	core.Assign(n, &n.set, b.Set)
	core.Assign(n, &n.hasSet, b.HasSet)
	n.child = core.ReconcileChild(n.child, b.Child, ctx.WithParentManagesFocus())
	core.SeedFocus(ctx, n)
	return n
}

type borderNode struct {
	core.NodeBase
	child  core.Node
	title  string
	set    surface.BorderSet
	hasSet bool
}

func (n *borderNode) VisitChildren(visitor func(core.Node) bool) {
	if n.child != nil {
		visitor(n.child)
	}
}

func (n *borderNode) MeasureContent(c geometry.Constraints) geometry.Size {
	inner := geometry.Size{}
	if n.child != nil {
		inner = n.child.Measure(c.Deflate(2, 2))
	}
	if w := surface.TextWidth(n.title); w > 0 && w+2 > inner.Width {
		inner.Width = w + 2
	}
	return geometry.Size{Width: inner.Width + 2, Height: inner.Height + 2}
}

func (n *borderNode) ArrangeChildren(bounds geometry.Rect) {
	if n.child == nil {
		return
	}
	inner := bounds.Inset(1)
	n.child.Measure(geometry.Tight(inner.Size()))
	n.child.Arrange(inner)
}

func (n *borderNode) RenderContent(rc *core.RenderContext) {
	style := rc.Theme.Border
	focused := core.FocusWithin(n)
	if focused {
		style = rc.Theme.BorderFocused
	}
	set := rc.Theme.Borders
	if n.hasSet {
		set = n.set
	}
	bounds := n.Bounds()
	rc.Surface.DrawBorder(bounds, set, style)
	if n.title != "" && bounds.Width > 4 {
		title := " " + n.title + " "
		clip := geometry.RectOf(bounds.X+2, bounds.Y, bounds.Width-4, 1).Intersect(rc.Clip)
		rc.Surface.DrawText(bounds.X+2, bounds.Y, title, rc.Theme.Title, clip)
	}
}
