package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-tessel/tessel/pkg/surface"
)

func TestFlushWritesAllRowsFirstTime(t *testing.T) {
	var out bytes.Buffer
	screen := NewScreen(&out)

	surf := surface.New(10, 2)
	surf.DrawText(0, 0, "hello", surface.Style{}, surf.Bounds())
	surf.DrawText(0, 1, "world", surface.Style{}, surf.Bounds())
	if err := screen.Flush(surf); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{"hello", "world", "\x1b[1;1H", "\x1b[2;1H"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFlushSkipsUnchangedRows(t *testing.T) {
	var out bytes.Buffer
	screen := NewScreen(&out)

	surf := surface.New(10, 2)
	surf.DrawText(0, 0, "hello", surface.Style{}, surf.Bounds())
	surf.DrawText(0, 1, "world", surface.Style{}, surf.Bounds())
	if err := screen.Flush(surf); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	next := surf.Clone()
	next.DrawText(0, 1, "again", surface.Style{}, next.Bounds())
	if err := screen.Flush(next); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if strings.Contains(got, "\x1b[1;1H") {
		t.Error("unchanged row 0 should not be rewritten")
	}
	if !strings.Contains(got, "again") {
		t.Error("changed row 1 should be rewritten")
	}
}

func TestFlushRepaintsAfterResize(t *testing.T) {
	var out bytes.Buffer
	screen := NewScreen(&out)

	small := surface.New(5, 1)
	small.DrawText(0, 0, "a", surface.Style{}, small.Bounds())
	if err := screen.Flush(small); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	large := surface.New(8, 2)
	large.DrawText(0, 0, "a", surface.Style{}, large.Bounds())
	if err := screen.Flush(large); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\x1b[2J") {
		t.Error("size change should clear the screen")
	}
}

func TestStyleCacheReused(t *testing.T) {
	screen := NewScreen(&bytes.Buffer{})
	style := surface.Style{FG: surface.RGB(200, 10, 10), Attrs: surface.AttrBold}
	first := screen.styleFor(style)
	second := screen.styleFor(style)
	if len(screen.styles) != 1 {
		t.Fatalf("cache size = %d, want 1", len(screen.styles))
	}
	_ = first
	_ = second
}
