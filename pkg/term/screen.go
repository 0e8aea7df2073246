// Package term flushes composed surfaces to an ANSI terminal.
//
// Screen keeps the previously flushed surface and rewrites only the rows
// that changed, emitting styled runs through lipgloss so color degradation
// across terminal profiles is handled for us.
package term

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-tessel/tessel/pkg/surface"
)

// Screen writes surfaces to a terminal with row-level diffing.
type Screen struct {
	w    io.Writer
	prev *surface.Surface

	buf    bytes.Buffer
	styles map[surface.Style]lipgloss.Style
}

// NewScreen returns a screen writing to w.
func NewScreen(w io.Writer) *Screen {
	return &Screen{
		w:      w,
		styles: make(map[surface.Style]lipgloss.Style),
	}
}

// Flush writes the rows of next that differ from the last flushed surface.
// A size change forces a full clear and repaint.
func (s *Screen) Flush(next *surface.Surface) error {
	if next == nil {
		return nil
	}
	prev := s.prev
	if prev != nil && prev.Size() != next.Size() {
		prev = nil
		s.buf.Reset()
		s.buf.WriteString("\x1b[2J")
		if _, err := s.w.Write(s.buf.Bytes()); err != nil {
			return err
		}
	}

	s.buf.Reset()
	for _, y := range surface.DiffRows(prev, next) {
		// Cursor rows and columns are 1-based.
		fmt.Fprintf(&s.buf, "\x1b[%d;1H", y+1)
		s.writeRow(next, y)
	}
	if s.buf.Len() > 0 {
		if _, err := s.w.Write(s.buf.Bytes()); err != nil {
			return err
		}
	}
	s.prev = next.Clone()
	return nil
}

// writeRow emits one row as runs of identically styled cells.
func (s *Screen) writeRow(surf *surface.Surface, y int) {
	var run strings.Builder
	var runStyle surface.Style
	flush := func() {
		if run.Len() == 0 {
			return
		}
		s.buf.WriteString(s.styleFor(runStyle).Render(run.String()))
		run.Reset()
	}
	for x := 0; x < surf.Width(); x++ {
		cell := surf.Get(x, y)
		if run.Len() > 0 && cell.Style != runStyle {
			flush()
		}
		runStyle = cell.Style
		if cell.Content == "" {
			// Continuation of a wide glyph; the glyph itself covers it.
			continue
		}
		run.WriteString(cell.Content)
	}
	flush()
	s.buf.WriteString("\x1b[0m")
}

// Reset forgets the previous surface so the next Flush repaints fully.
func (s *Screen) Reset() {
	s.prev = nil
}

// EnterAltScreen switches to the alternate buffer and hides the cursor.
func (s *Screen) EnterAltScreen() error {
	_, err := io.WriteString(s.w, "\x1b[?1049h\x1b[?25l")
	return err
}

// ExitAltScreen restores the main buffer and the cursor.
func (s *Screen) ExitAltScreen() error {
	s.prev = nil
	_, err := io.WriteString(s.w, "\x1b[?25h\x1b[?1049l")
	return err
}

func (s *Screen) styleFor(st surface.Style) lipgloss.Style {
	if cached, ok := s.styles[st]; ok {
		return cached
	}
	ls := lipgloss.NewStyle()
	if c := terminalColor(st.FG); c != nil {
		ls = ls.Foreground(c)
	}
	if c := terminalColor(st.BG); c != nil {
		ls = ls.Background(c)
	}
	if st.Attrs&surface.AttrBold != 0 {
		ls = ls.Bold(true)
	}
	if st.Attrs&surface.AttrDim != 0 {
		ls = ls.Faint(true)
	}
	if st.Attrs&surface.AttrItalic != 0 {
		ls = ls.Italic(true)
	}
	if st.Attrs&surface.AttrUnderline != 0 {
		ls = ls.Underline(true)
	}
	if st.Attrs&surface.AttrReverse != 0 {
		ls = ls.Reverse(true)
	}
	if st.Attrs&surface.AttrStrike != 0 {
		ls = ls.Strikethrough(true)
	}
	s.styles[st] = ls
	return ls
}

func terminalColor(c surface.Color) lipgloss.TerminalColor {
	switch c.Mode {
	case surface.ColorANSI, surface.Color256:
		return lipgloss.Color(fmt.Sprintf("%d", c.Index))
	case surface.ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	return nil
}
