package surface

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/go-tessel/tessel/pkg/geometry"
)

// Cell is one character cell: a single grapheme cluster plus its style.
// The trailing cell of a double-width glyph holds empty content.
type Cell struct {
	Content string
	Style   Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Content: " "}
}

// Surface is a 2D grid of cells representing one frame of output.
type Surface struct {
	cells  []Cell
	width  int
	height int
}

// New creates a surface with the given dimensions, filled with blanks.
func New(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Surface{cells: cells, width: width, height: height}
}

// Width returns the surface width in cells.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in cells.
func (s *Surface) Height() int {
	return s.height
}

// Size returns the surface dimensions.
func (s *Surface) Size() geometry.Size {
	return geometry.Size{Width: s.width, Height: s.height}
}

// Bounds returns the full surface rectangle.
func (s *Surface) Bounds() geometry.Rect {
	return geometry.Rect{Width: s.width, Height: s.height}
}

// InBounds reports whether the coordinates lie on the surface.
func (s *Surface) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Surface) index(x, y int) int {
	return y*s.width + x
}

// Get returns the cell at the given coordinates, or a blank cell when out
// of bounds.
func (s *Surface) Get(x, y int) Cell {
	if !s.InBounds(x, y) {
		return EmptyCell()
	}
	return s.cells[s.index(x, y)]
}

// Set writes the cell at the given coordinates. Out-of-bounds writes are
// dropped.
func (s *Surface) Set(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[s.index(x, y)] = c
}

// SetRune writes a single rune in the given style.
func (s *Surface) SetRune(x, y int, r rune, style Style) {
	s.Set(x, y, Cell{Content: string(r), Style: style})
}

// Fill paints every cell of the clipped rectangle with a blank in the
// given style.
func (s *Surface) Fill(r geometry.Rect, style Style) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.cells[s.index(x, y)] = Cell{Content: " ", Style: style}
		}
	}
}

// DrawText writes a single line of text starting at x,y, clipped to the
// given rectangle. Grapheme clusters that would straddle the clip edge are
// dropped whole. Returns the number of cells advanced.
func (s *Surface) DrawText(x, y int, text string, style Style, clip geometry.Rect) int {
	clip = clip.Intersect(s.Bounds())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	advanced := 0
	state := -1
	for len(text) > 0 {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if width <= 0 {
			continue
		}
		cx := x + advanced
		if cx+width > clip.Right() {
			break
		}
		if cx >= clip.X {
			s.Set(cx, y, Cell{Content: cluster, Style: style})
			// The continuation cell of a wide glyph carries no content.
			for i := 1; i < width; i++ {
				s.Set(cx+i, y, Cell{Style: style})
			}
		}
		advanced += width
	}
	return advanced
}

// Line returns row y rendered as plain text, without styling.
func (s *Surface) Line(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < s.width; x++ {
		sb.WriteString(s.cells[s.index(x, y)].Content)
	}
	return sb.String()
}

// TextWidth returns the number of cells the string occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// MeasureText returns the cell size of a possibly multi-line string.
func MeasureText(text string) geometry.Size {
	width := 0
	height := 0
	for _, line := range strings.Split(text, "\n") {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
		height++
	}
	return geometry.Size{Width: width, Height: height}
}

// DiffRows compares two equally-sized surfaces and returns the indices of
// rows that changed. A nil prev reports every row.
func DiffRows(prev, next *Surface) []int {
	var rows []int
	if prev == nil || prev.width != next.width || prev.height != next.height {
		for y := 0; y < next.height; y++ {
			rows = append(rows, y)
		}
		return rows
	}
	for y := 0; y < next.height; y++ {
		start := y * next.width
		for x := 0; x < next.width; x++ {
			if prev.cells[start+x] != next.cells[start+x] {
				rows = append(rows, y)
				break
			}
		}
	}
	return rows
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	c := &Surface{
		cells:  make([]Cell, len(s.cells)),
		width:  s.width,
		height: s.height,
	}
	copy(c.cells, s.cells)
	return c
}
