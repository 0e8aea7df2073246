package widgets

import (
	"strings"
	"testing"

	"github.com/go-tessel/tessel/pkg/core"
)

func tabs(active int) Switcher {
	return SwitcherOf(
		Column(ButtonOf("first", nil), ListOf(rows("a", "b", "c", "d")...)),
		Column(ButtonOf("second", nil)),
	).WithActive(active)
}

func TestSwitcherRendersOnlyActiveBranch(t *testing.T) {
	s := core.NewSession(nil)
	surf := frame(t, s, tabs(0), 20, 5)
	if !strings.Contains(surf.Line(0), "first") {
		t.Errorf("row 0 = %q, want the active branch", surf.Line(0))
	}

	surf = frame(t, s, tabs(1), 20, 5)
	if !strings.Contains(surf.Line(0), "second") {
		t.Errorf("row 0 = %q, want the new active branch", surf.Line(0))
	}
	if strings.Contains(surf.Line(0), "first") {
		t.Error("inactive branch leaked into the frame")
	}
}

func TestSwitcherKeepsHiddenBranchState(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, tabs(0), 20, 5)
	list := s.Root().(*switcherNode).children[0].(*stackNode).children[1].(*ListNode)
	list.Select(3)

	frame(t, s, tabs(1), 20, 5)
	frame(t, s, tabs(0), 20, 5)
	again := s.Root().(*switcherNode).children[0].(*stackNode).children[1].(*ListNode)
	if again != list {
		t.Fatal("switching away rebuilt the hidden branch")
	}
	if list.Selected() != 3 {
		t.Errorf("selected = %d, want preserved 3", list.Selected())
	}
}

func TestSwitcherMovesFocusToActiveBranch(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, tabs(0), 20, 5)
	if s.Focused() == nil {
		t.Fatal("switcher should seed focus in its active branch")
	}

	frame(t, s, tabs(1), 20, 5)
	focused, ok := s.Focused().(*ButtonNode)
	if !ok {
		t.Fatalf("focused = %T, want the new branch's button", s.Focused())
	}
	if focused.label != "second" {
		t.Errorf("focused label = %q, want second", focused.label)
	}
}

func TestSwitcherFocusTraversalSkipsHiddenBranch(t *testing.T) {
	s := core.NewSession(nil)
	frame(t, s, tabs(1), 20, 5)
	focusables := core.AppendFocusables(s.Root(), nil)
	for _, n := range focusables {
		if b, ok := n.(*ButtonNode); ok && b.label == "first" {
			t.Error("hidden branch is reachable by focus traversal")
		}
	}
}

func TestSwitcherClampsActive(t *testing.T) {
	s := core.NewSession(nil)
	surf := frame(t, s, tabs(9), 20, 5)
	if !strings.Contains(surf.Line(0), "second") {
		t.Errorf("row 0 = %q, want clamp to last branch", surf.Line(0))
	}
}
