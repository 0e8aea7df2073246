package surface

import "github.com/go-tessel/tessel/pkg/geometry"

// BorderSet holds the runes used to draw a rectangular border.
type BorderSet struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// SingleBorder is the standard single-line box drawing set.
func SingleBorder() BorderSet {
	return BorderSet{
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
	}
}

// DoubleBorder is the double-line box drawing set.
func DoubleBorder() BorderSet {
	return BorderSet{
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
		Horizontal:  '═',
		Vertical:    '║',
	}
}

// RoundedBorder is the single-line set with rounded corners.
func RoundedBorder() BorderSet {
	return BorderSet{
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
		Horizontal:  '─',
		Vertical:    '│',
	}
}

// DrawBorder draws a border along the edge of r, clipped to the surface.
// Rectangles narrower than 2 cells in either dimension are skipped.
func (s *Surface) DrawBorder(r geometry.Rect, set BorderSet, style Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right := r.Right() - 1
	bottom := r.Bottom() - 1
	for x := r.X + 1; x < right; x++ {
		s.SetRune(x, r.Y, set.Horizontal, style)
		s.SetRune(x, bottom, set.Horizontal, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetRune(r.X, y, set.Vertical, style)
		s.SetRune(right, y, set.Vertical, style)
	}
	s.SetRune(r.X, r.Y, set.TopLeft, style)
	s.SetRune(right, r.Y, set.TopRight, style)
	s.SetRune(r.X, bottom, set.BottomLeft, style)
	s.SetRune(right, bottom, set.BottomRight, style)
}

// DrawLine draws a straight run of cells along the given axis.
func (s *Surface) DrawLine(start geometry.Point, length int, axis geometry.Axis, r rune, style Style) {
	for i := 0; i < length; i++ {
		if axis == geometry.AxisHorizontal {
			s.SetRune(start.X+i, start.Y, r, style)
		} else {
			s.SetRune(start.X, start.Y+i, r, style)
		}
	}
}
