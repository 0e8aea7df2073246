package widgets

import (
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
	"github.com/go-tessel/tessel/pkg/surface"
)

// Button is a focusable, activatable label. The host's input layer calls
// Activate on the focused node when its confirm key fires, or on the node
// under the pointer for clicks.
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// OnActivate is called when the button is activated.
	OnActivate func()
	// Disabled removes the button from focus traversal and ignores
	// activation.
	Disabled bool
}

// ButtonOf creates a button with the given label and activation handler.
func ButtonOf(label string, onActivate func()) Button {
	return Button{Label: label, OnActivate: onActivate}
}

// WithDisabled returns a copy of the button with the disabled state set.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

func (b Button) NodeType() reflect.Type {
	return reflect.TypeOf(&ButtonNode{})
}

func (b Button) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *ButtonNode
	if existing == nil {
		n = &ButtonNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*ButtonNode)
	}
	core.Assign(n, &n.label, b.Label)
	core.Assign(n, &n.disabled, b.Disabled)
	n.onActivate = b.OnActivate
	return n
}

// ButtonNode is the render node behind Button. Hosts that hit-test or
// walk the focus ring can type-assert to it and call Activate.
type ButtonNode struct {
	core.NodeBase
	label      string
	disabled   bool
	onActivate func()
}

func (n *ButtonNode) Focusable() bool {
	return !n.disabled
}

// Activate fires the button's handler. Disabled buttons ignore it.
func (n *ButtonNode) Activate() {
	if n.disabled || n.onActivate == nil {
		return
	}
	n.onActivate()
}

func (n *ButtonNode) MeasureContent(c geometry.Constraints) geometry.Size {
	return geometry.Size{Width: surface.TextWidth(n.label) + 4, Height: 1}
}

func (n *ButtonNode) RenderContent(rc *core.RenderContext) {
	style := rc.Theme.Button
	switch {
	case n.disabled:
		style = rc.Theme.Muted
	case n.IsFocused():
		style = rc.Theme.ButtonFocused
	case n.IsHovered():
		style = rc.Theme.ButtonHovered
	}
	bounds := n.Bounds()
	clip := bounds.Intersect(rc.Clip)
	rc.Surface.Fill(clip, style)
	rc.Surface.DrawText(bounds.X+2, bounds.Y, n.label, style, clip)
}
