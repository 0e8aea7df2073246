// Package geometry provides the value types used throughout layout:
// points, sizes, rectangles, axes and layout constraints, all measured
// in whole character cells.
package geometry

// Point represents a cell coordinate on the screen.
type Point struct {
	X int
	Y int
}

// Size represents width and height in character cells.
type Size struct {
	Width  int
	Height int
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using origin and size in character cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectOf constructs a Rect from origin and size values.
func RectOf(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge of the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge of the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside the rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	return other.X >= r.X && other.Y >= r.Y && other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if x >= right || y >= bottom {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Translate returns the rectangle shifted by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset returns the rectangle shrunk by n cells on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	w := max(r.Width-2*n, 0)
	h := max(r.Height-2*n, 0)
	return Rect{X: r.X + n, Y: r.Y + n, Width: w, Height: h}
}

// Axis represents the layout direction.
// AxisVertical is the zero value, making it the default for containers.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "axis(?)"
	}
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == AxisVertical {
		return AxisHorizontal
	}
	return AxisVertical
}
