// Package surface provides the character-cell drawing surface the render
// tree paints into: a 2D grid of styled cells with clipped drawing
// primitives and frame-to-frame diffing.
package surface

// Attr represents text styling attributes that can be combined.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrStrike
)

// Has reports whether the attribute set contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attr) With(attr Attr) Attr {
	return a | attr
}

// ColorMode identifies how a color value is encoded.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // terminal default
	ColorANSI                     // basic 16 colors (0-15)
	Color256                      // 256-color palette
	ColorRGB                      // 24-bit true color
)

// Color represents a terminal color. The zero value is the terminal default.
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // RGB mode
	Index   uint8 // ANSI/256 mode
}

// ANSI returns one of the 16 basic terminal colors.
func ANSI(index uint8) Color {
	return Color{Mode: ColorANSI, Index: index}
}

// Palette returns one of the 256 palette colors.
func Palette(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit true color from a packed hex value (e.g. 0xFF5500).
func Hex(hex uint32) Color {
	return Color{
		Mode: ColorRGB,
		R:    uint8((hex >> 16) & 0xFF),
		G:    uint8((hex >> 8) & 0xFF),
		B:    uint8(hex & 0xFF),
	}
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c.Mode == ColorDefault
}

// Style combines foreground and background colors with attributes.
// Styles are plain comparable values so cell diffing stays cheap.
type Style struct {
	FG    Color
	BG    Color
	Attrs Attr
}

// WithAttrs returns the style with the given attributes added.
func (s Style) WithAttrs(attrs Attr) Style {
	s.Attrs = s.Attrs.With(attrs)
	return s
}

// WithFG returns the style with the foreground replaced.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBG returns the style with the background replaced.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}
