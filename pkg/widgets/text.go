package widgets

import (
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
	"github.com/go-tessel/tessel/pkg/surface"
)

// Text displays one or more lines of styled text. Lines wider than the
// arranged bounds are clipped at grapheme boundaries.
type Text struct {
	// Content is the text to display. Newlines split it into rows.
	Content string
	// Style overrides the theme's text style when set.
	Style surface.Style
	// UseStyle selects Style over the theme default.
	UseStyle bool
}

// TextOf creates a text widget with the theme's default style.
func TextOf(content string) Text {
	return Text{Content: content}
}

// WithStyle returns a copy of the text using the given style.
func (t Text) WithStyle(style surface.Style) Text {
	t.Style = style
	t.UseStyle = true
	return t
}

func (t Text) NodeType() reflect.Type {
	return reflect.TypeOf(&textNode{})
}

func (t Text) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *textNode
	if existing == nil {
		n = &textNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*textNode)
	}
	core.Assign(n, &n.content, t.Content)
	core.Assign(n, &n.style, t.Style)
	core.Assign(n, &n.useStyle, t.UseStyle)
	return n
}

type textNode struct {
	core.NodeBase
	content  string
	style    surface.Style
	useStyle bool
}

func (n *textNode) MeasureContent(c geometry.Constraints) geometry.Size {
	return surface.MeasureText(n.content)
}

func (n *textNode) RenderContent(rc *core.RenderContext) {
	style := rc.Theme.Text
	if n.useStyle {
		style = n.style
	}
	bounds := n.Bounds()
	clip := bounds.Intersect(rc.Clip)
	y := bounds.Y
	start := 0
	for i := 0; i <= len(n.content); i++ {
		if i == len(n.content) || n.content[i] == '\n' {
			if y >= clip.Bottom() {
				break
			}
			rc.Surface.DrawText(bounds.X, y, n.content[start:i], style, clip)
			start = i + 1
			y++
		}
	}
}
