package widgets

import (
	"strings"
	"testing"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
	"github.com/go-tessel/tessel/pkg/theme"
)

func TestBorderFramesChild(t *testing.T) {
	s := core.NewSession(nil)
	surf := frame(t, s, BorderOf(TextOf("hi")), 6, 3)
	top := surf.Line(0)
	if !strings.HasPrefix(top, "┌") || !strings.HasSuffix(top, "┐") {
		t.Errorf("top = %q, want corner characters", top)
	}
	if !strings.Contains(surf.Line(1), "hi") {
		t.Errorf("middle = %q, want the child inset by one", surf.Line(1))
	}
}

func TestBorderTitle(t *testing.T) {
	s := core.NewSession(nil)
	surf := frame(t, s, BorderOf(TextOf("x")).WithTitle("Files"), 12, 3)
	if !strings.Contains(surf.Line(0), " Files ") {
		t.Errorf("top = %q, want the title in the frame", surf.Line(0))
	}
}

func TestBorderSeedsFocus(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, BorderOf(Column(
		TextOf("label"),
		ButtonOf("go", nil),
	)), 12, 4)
	if _, ok := s.Focused().(*ButtonNode); !ok {
		t.Fatalf("focused = %T, want the first focusable descendant", s.Focused())
	}
}

func TestBorderStyleTracksFocusWithin(t *testing.T) {
	th := theme.Dark()
	s := core.NewSession(th)
	surf := frame(t, s, BorderOf(ButtonOf("go", nil)), 10, 3)
	if got := surf.Get(0, 0).Style; got != th.BorderFocused {
		t.Errorf("frame style = %+v, want focused style while the subtree holds focus", got)
	}

	s.SetFocus(nil)
	surf = frame(t, s, BorderOf(ButtonOf("go", nil)), 10, 3)
	if got := surf.Get(0, 0).Style; got != th.Border {
		t.Errorf("frame style = %+v, want plain style without focus", got)
	}
}

func TestBorderMeasureAddsFrame(t *testing.T) {
	s := core.NewSession(nil)
	if err := s.Reconcile(BorderOf(TextOf("abc"))); err != nil {
		t.Fatal(err)
	}
	size := s.Root().Measure(geometry.Loose(geometry.Size{Width: 40, Height: 10}))
	if size != (geometry.Size{Width: 5, Height: 3}) {
		t.Errorf("size = %v, want child plus one cell on each side", size)
	}
}

func TestAnchoredPlacesAndClampsChild(t *testing.T) {
	s := core.NewSession(nil)
	anchor := geometry.RectOf(10, 5, 6, 1)
	frame(t, s, AnchoredOf(anchor, TextOf(strings.Repeat("x", 20))), 25, 24)

	node := s.Root().(*anchoredNode)
	child := node.child.Bounds()
	if child.Y != 6 {
		t.Errorf("child y = %d, want 6 (below the anchor)", child.Y)
	}
	if child.X != 5 {
		t.Errorf("child x = %d, want clamp to 5", child.X)
	}
}

func TestAnchoredHitTestUsesChildRect(t *testing.T) {
	s := core.NewSession(nil)
	anchor := geometry.RectOf(2, 0, 4, 1)
	frame(t, s, AnchoredOf(anchor, TextOf("menu")), 20, 6)

	node := s.Root().(*anchoredNode)
	inside := node.child.Bounds().Origin()
	if hit := core.NodeAt(node, inside); hit == nil {
		t.Error("point on the floating content should hit")
	}
	if hit := core.NodeAt(node, geometry.Point{X: 19, Y: 5}); hit != nil {
		t.Errorf("point outside the content hit %T", hit)
	}
}

func TestAnchoredReportsFullSize(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, AnchoredOf(geometry.RectOf(0, 0, 2, 1), TextOf("m")), 20, 6)
	if got := s.Root().Bounds(); got != geometry.RectOf(0, 0, 20, 6) {
		t.Errorf("bounds = %v, want the full viewport", got)
	}
}
