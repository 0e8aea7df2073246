package surface

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-tessel/tessel/pkg/geometry"
)

func TestSetGetRoundTrip(t *testing.T) {
	s := New(10, 4)
	style := Style{FG: RGB(255, 0, 0), Attrs: AttrBold}
	s.Set(3, 2, Cell{Content: "x", Style: style})

	got := s.Get(3, 2)
	if got.Content != "x" || got.Style != style {
		t.Errorf("Get(3,2) = %+v", got)
	}
}

func TestOutOfBoundsDropped(t *testing.T) {
	s := New(4, 4)
	s.Set(-1, 0, Cell{Content: "x"})
	s.Set(4, 0, Cell{Content: "x"})
	s.Set(0, 4, Cell{Content: "x"})
	for y := 0; y < 4; y++ {
		if s.Line(y) != "    " {
			t.Errorf("row %d = %q, want blanks", y, s.Line(y))
		}
	}
	if got := s.Get(99, 99); got != EmptyCell() {
		t.Errorf("out-of-bounds Get = %+v", got)
	}
}

func TestDrawTextClipsWholeClusters(t *testing.T) {
	s := New(10, 1)
	clip := geometry.RectOf(0, 0, 5, 1)
	advanced := s.DrawText(0, 0, "hello world", Style{}, clip)
	if advanced != 5 {
		t.Errorf("advanced = %d, want 5", advanced)
	}
	if got := s.Line(0); got != "hello     " {
		t.Errorf("line = %q", got)
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	s := New(6, 1)
	advanced := s.DrawText(0, 0, "日本", Style{}, s.Bounds())
	if advanced != 4 {
		t.Errorf("advanced = %d, want 4 (two double-width glyphs)", advanced)
	}
	if got := s.Get(0, 0).Content; got != "日" {
		t.Errorf("cell 0 = %q", got)
	}
	// Continuation cell of a wide glyph is empty.
	if got := s.Get(1, 0).Content; got != "" {
		t.Errorf("continuation cell = %q, want empty", got)
	}

	// A wide glyph that would straddle the clip edge is dropped whole.
	s2 := New(6, 1)
	clip := geometry.RectOf(0, 0, 3, 1)
	if advanced := s2.DrawText(0, 0, "日本", Style{}, clip); advanced != 2 {
		t.Errorf("clipped advance = %d, want 2", advanced)
	}
}

func TestMeasureText(t *testing.T) {
	cases := []struct {
		text string
		want geometry.Size
	}{
		{"", geometry.Size{Width: 0, Height: 1}},
		{"abc", geometry.Size{Width: 3, Height: 1}},
		{"ab\ncdef\ng", geometry.Size{Width: 4, Height: 3}},
		{"日本語", geometry.Size{Width: 6, Height: 1}},
	}
	for _, tc := range cases {
		if got := MeasureText(tc.text); got != tc.want {
			t.Errorf("MeasureText(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestFillRespectsClip(t *testing.T) {
	s := New(4, 4)
	s.Fill(geometry.RectOf(2, 2, 10, 10), Style{BG: ANSI(4)})
	if s.Get(1, 1).Style.BG != (Color{}) {
		t.Error("fill leaked outside the rectangle")
	}
	if s.Get(3, 3).Style.BG != ANSI(4) {
		t.Error("fill missed a cell inside the rectangle")
	}
}

func TestDiffRows(t *testing.T) {
	a := New(4, 3)
	b := a.Clone()
	if rows := DiffRows(a, b); len(rows) != 0 {
		t.Errorf("identical surfaces diff = %v", rows)
	}

	b.Set(1, 1, Cell{Content: "x"})
	if diff := cmp.Diff([]int{1}, DiffRows(a, b)); diff != "" {
		t.Errorf("diff rows mismatch (-want +got):\n%s", diff)
	}

	if rows := DiffRows(nil, a); len(rows) != 3 {
		t.Errorf("nil prev should report all rows, got %v", rows)
	}
}

func TestDrawBorder(t *testing.T) {
	s := New(5, 3)
	s.DrawBorder(geometry.RectOf(0, 0, 5, 3), SingleBorder(), Style{})
	want := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, line := range want {
		if got := s.Line(y); got != line {
			t.Errorf("row %d = %q, want %q", y, got, line)
		}
	}
}
