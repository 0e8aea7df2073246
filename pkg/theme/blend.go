package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-tessel/tessel/pkg/surface"
)

// Blend mixes two RGB colors in Lab space, which keeps perceived lightness
// stable across the blend. t=0 returns a, t=1 returns b. Non-RGB colors
// (palette or terminal-default) cannot be blended and return a unchanged.
func Blend(a, b surface.Color, t float64) surface.Color {
	if a.Mode != surface.ColorRGB || b.Mode != surface.ColorRGB {
		return a
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	mixed := ca.BlendLab(cb, t).Clamped()
	r, g, bl := mixed.RGB255()
	return surface.RGB(r, g, bl)
}

// ParseColor parses a hex color string such as "#88c0d0".
func ParseColor(value string) (surface.Color, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return surface.Color{}, fmt.Errorf("theme: bad color %q: %w", value, err)
	}
	r, g, b := c.RGB255()
	return surface.RGB(r, g, b), nil
}

// HexString formats an RGB color back to "#rrggbb" form.
func HexString(c surface.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
