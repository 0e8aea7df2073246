package geometry

// Placement positions a floating element relative to an anchor rectangle.
type Placement int

const (
	// PlaceBelow aligns the element's top-left with the anchor's bottom-left.
	PlaceBelow Placement = iota
	// PlaceAbove aligns the element's bottom-left with the anchor's top-left.
	PlaceAbove
	// PlaceLeft aligns the element's top-right with the anchor's top-left.
	PlaceLeft
	// PlaceRight aligns the element's top-left with the anchor's top-right.
	PlaceRight
)

// String returns a human-readable representation of the placement.
func (p Placement) String() string {
	switch p {
	case PlaceBelow:
		return "below"
	case PlaceAbove:
		return "above"
	case PlaceLeft:
		return "left"
	case PlaceRight:
		return "right"
	default:
		return "placement(?)"
	}
}

// Anchor computes where to place a floating element of the given size next
// to an anchor rectangle, clamped so the element never leaves bounds.
//
// The unclamped origin is edge-aligned: PlaceBelow uses the anchor's left
// edge and bottom edge, PlaceAbove its left and top edges, and so on.
// Unrecognized placements fall back to PlaceBelow. The origin is then
// clamped into [bounds origin, bounds extent - element size] per axis, so
// an element larger than bounds pins to the bounds origin.
func Anchor(anchor Rect, size Size, bounds Rect, placement Placement) Rect {
	var x, y int
	switch placement {
	case PlaceAbove:
		x = anchor.X
		y = anchor.Y - size.Height
	case PlaceLeft:
		x = anchor.X - size.Width
		y = anchor.Y
	case PlaceRight:
		x = anchor.Right()
		y = anchor.Y
	default:
		x = anchor.X
		y = anchor.Bottom()
	}
	x = clamp(x, bounds.X, max(bounds.Right()-size.Width, bounds.X))
	y = clamp(y, bounds.Y, max(bounds.Bottom()-size.Height, bounds.Y))
	return Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
}
