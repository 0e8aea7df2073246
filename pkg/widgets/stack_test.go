package widgets

import (
	"strings"
	"testing"

	"github.com/go-tessel/tessel/pkg/core"
)

func TestColumnStacksChildren(t *testing.T) {
	s := core.NewSession(nil)
	surf := frame(t, s, Column(TextOf("aa"), TextOf("bb")), 10, 4)
	if !strings.HasPrefix(surf.Line(0), "aa") {
		t.Errorf("line 0 = %q", surf.Line(0))
	}
	if !strings.HasPrefix(surf.Line(1), "bb") {
		t.Errorf("line 1 = %q", surf.Line(1))
	}
}

func TestRowPlacesFixedThenFlexible(t *testing.T) {
	s := core.NewSession(nil)
	surf := frame(t, s, Row(
		Fixed(4, TextOf("ab")),
		Flexible(TextOf("cd")),
	), 10, 1)
	if !strings.HasPrefix(surf.Line(0), "ab  cd") {
		t.Errorf("line = %q, want flexible child at column 4", surf.Line(0))
	}
}

func TestWeightedSplit(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, Row(
		Weighted(1, TextOf("a")),
		Weighted(3, TextOf("b")),
	), 8, 1)
	node := s.Root().(*stackNode)
	if got := node.children[0].Bounds().Width; got != 2 {
		t.Errorf("weight-1 width = %d, want 2", got)
	}
	if got := node.children[1].Bounds().Width; got != 6 {
		t.Errorf("weight-3 width = %d, want 6", got)
	}
}

func TestWeightedRemainderGoesToEarlier(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, Row(
		Flexible(TextOf("a")),
		Flexible(TextOf("b")),
		Flexible(TextOf("c")),
	), 10, 1)
	node := s.Root().(*stackNode)
	widths := make([]int, 3)
	total := 0
	for i, child := range node.children {
		widths[i] = child.Bounds().Width
		total += widths[i]
	}
	if total != 10 {
		t.Fatalf("total = %d, want the full 10 cells allocated", total)
	}
	if widths[0] != 4 || widths[1] != 3 || widths[2] != 3 {
		t.Errorf("widths = %v, want leftover cell on the first child", widths)
	}
}

func TestGapSeparatesChildren(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, Column(TextOf("a"), TextOf("b")).WithGap(1), 5, 4)
	node := s.Root().(*stackNode)
	if got := node.children[1].Bounds().Y; got != 2 {
		t.Errorf("second child y = %d, want 2", got)
	}
}

func TestNilChildrenKeepHintsAligned(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, Row(
		TextOf("ab"),
		nil,
		Fixed(4, TextOf("cd")),
	), 10, 1)
	node := s.Root().(*stackNode)
	if got := len(node.children); got != 2 {
		t.Fatalf("children = %d, want nil entry skipped", got)
	}
	if got := node.children[1].Bounds().Width; got != 4 {
		t.Errorf("fixed child width = %d, want 4", got)
	}
}

func TestSizedIsTransparentToReconciliation(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, Column(Fixed(2, Column(TextOf("x")))), 5, 4)
	inner := s.Root().(*stackNode).children[0]

	// Unwrapping the Sized must keep the same node.
	frame(t, s, Column(Column(TextOf("x"))), 5, 4)
	if s.Root().(*stackNode).children[0] != inner {
		t.Error("removing a Sized wrapper should not rebuild the child")
	}
}

func TestSeparatorOrientationFollowsContainer(t *testing.T) {
	s := core.NewSession(nil)
	surf := frame(t, s, Column(TextOf("a"), SeparatorOf(), TextOf("b")), 4, 3)
	if got := surf.Line(1); got != "────" {
		t.Errorf("line 1 = %q, want a horizontal rule", got)
	}

	s = core.NewSession(nil)
	surf = frame(t, s, Row(TextOf("a"), SeparatorOf(), TextOf("b")), 4, 2)
	for y := 0; y < 2; y++ {
		if !strings.Contains(surf.Line(y), "│") {
			t.Errorf("line %d = %q, want a vertical rule", y, surf.Line(y))
		}
	}
}

func TestStackHandlesOverflow(t *testing.T) {
	// More fixed cells than space: children are truncated, never negative.
	s := core.NewSession(nil)
	frame(t, s, Column(
		Fixed(3, TextOf("a")),
		Fixed(3, TextOf("b")),
	), 5, 4)
	node := s.Root().(*stackNode)
	for i, child := range node.children {
		b := child.Bounds()
		if b.Height < 0 || b.Width < 0 {
			t.Errorf("child %d bounds %v has negative extent", i, b)
		}
	}
}
