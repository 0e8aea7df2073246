package geometry

// Unbounded is the sentinel for an unconstrained maximum dimension.
// It is large enough to make any cell count fit and small enough that
// sums of a few maxima cannot overflow int.
const Unbounded = 1 << 30

// Constraints bound a size during the measure pass. A measured size must
// satisfy MinWidth <= Width <= MaxWidth and MinHeight <= Height <= MaxHeight;
// the engine clamps sizes that don't.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Tight returns constraints that admit exactly the given size.
func Tight(size Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unconstrained returns constraints with no effective maximum.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// MaxSize returns the largest size the constraints admit.
func (c Constraints) MaxSize() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// Constrain clamps the size into the constraint bounds.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// ConstrainWidth clamps a width into the horizontal bounds.
func (c Constraints) ConstrainWidth(width int) int {
	return clamp(width, c.MinWidth, c.MaxWidth)
}

// ConstrainHeight clamps a height into the vertical bounds.
func (c Constraints) ConstrainHeight(height int) int {
	return clamp(height, c.MinHeight, c.MaxHeight)
}

// Loosen returns the constraints with the minimums removed.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Deflate shrinks the constraints by the given cell counts on each axis,
// for containers that reserve space (borders, padding) before measuring
// a child. Minimums never drop below zero.
func (c Constraints) Deflate(width, height int) Constraints {
	return Constraints{
		MinWidth:  max(c.MinWidth-width, 0),
		MaxWidth:  max(c.MaxWidth-width, 0),
		MinHeight: max(c.MinHeight-height, 0),
		MaxHeight: max(c.MaxHeight-height, 0),
	}
}

// Main returns the maximum extent along the given axis.
func (c Constraints) Main(axis Axis) int {
	if axis == AxisHorizontal {
		return c.MaxWidth
	}
	return c.MaxHeight
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SizeHintKind identifies a declarative sizing policy.
type SizeHintKind int

const (
	// HintContent sizes the child to its natural measured size.
	HintContent SizeHintKind = iota
	// HintFixed gives the child an exact cell count on the container's main axis.
	HintFixed
	// HintWeighted gives the child a weighted share of the space left over
	// after content and fixed children are measured. Fill is weight one.
	HintWeighted
)

// SizeHint is a declarative sizing policy resolved during layout.
type SizeHint struct {
	Kind   SizeHintKind
	Cells  int
	Weight int
}

// Content sizes a child to its natural size.
func Content() SizeHint {
	return SizeHint{Kind: HintContent}
}

// Fixed sizes a child to exactly n cells along the container's main axis.
func Fixed(n int) SizeHint {
	return SizeHint{Kind: HintFixed, Cells: n}
}

// Fill gives a child all remaining space, sharing equally with other
// fill children.
func Fill() SizeHint {
	return SizeHint{Kind: HintWeighted, Weight: 1}
}

// Weighted gives a child a share of remaining space proportional to w.
func Weighted(w int) SizeHint {
	return SizeHint{Kind: HintWeighted, Weight: w}
}
