package theme

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/go-tessel/tessel/pkg/surface"
)

// themeFile is the YAML schema for theme configuration.
//
//	name: nord
//	base: dark
//	border: rounded
//	colors:
//	  foreground: "#d8dee9"
//	  background: "#2e3440"
//	  accent: "#88c0d0"
//	  muted: "#6c7a96"
//	  error: "#bf616a"
type themeFile struct {
	Name   string            `yaml:"name"`
	Base   string            `yaml:"base"`
	Border string            `yaml:"border"`
	Colors map[string]string `yaml:"colors"`
}

// Load reads a theme definition from YAML. Unspecified values fall back to
// the base theme ("dark" unless the file says otherwise).
func Load(r io.Reader) (*Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("theme: read config: %w", err)
	}
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("theme: parse config: %w", err)
	}

	var t *Theme
	switch file.Base {
	case "", "dark":
		t = Dark()
	case "light":
		t = Light()
	default:
		return nil, fmt.Errorf("theme: unknown base theme %q", file.Base)
	}
	if file.Name != "" {
		t.Name = file.Name
	}

	switch file.Border {
	case "":
	case "single":
		t.Borders = surface.SingleBorder()
	case "double":
		t.Borders = surface.DoubleBorder()
	case "rounded":
		t.Borders = surface.RoundedBorder()
	default:
		return nil, fmt.Errorf("theme: unknown border set %q", file.Border)
	}

	parsed := map[string]surface.Color{}
	for name, value := range file.Colors {
		c, err := ParseColor(value)
		if err != nil {
			return nil, err
		}
		parsed[name] = c
	}
	applyColors(t, parsed)
	return t, nil
}

// applyColors rebuilds the derived styles from the named base colors.
func applyColors(t *Theme, colors map[string]surface.Color) {
	fg, hasFG := colors["foreground"]
	bg, hasBG := colors["background"]
	accent, hasAccent := colors["accent"]
	muted, hasMuted := colors["muted"]
	errColor, hasErr := colors["error"]

	if !hasFG {
		fg = t.Text.FG
	}
	if !hasBG {
		bg = t.Text.BG
	}
	if !hasAccent {
		accent = t.BorderFocused.FG
	}
	if !hasMuted {
		muted = t.Muted.FG
	}
	if !hasErr {
		errColor = t.Error.FG
	}

	t.Text = surface.Style{FG: fg, BG: bg}
	t.Muted = surface.Style{FG: muted, BG: bg}
	t.Title = surface.Style{FG: accent, BG: bg, Attrs: surface.AttrBold}
	t.Error = surface.Style{FG: errColor, BG: bg, Attrs: surface.AttrBold}
	t.Border = surface.Style{FG: muted, BG: bg}
	t.BorderFocused = surface.Style{FG: accent, BG: bg}
	t.Separator = surface.Style{FG: muted, BG: bg}
	t.Overlay = surface.Style{FG: fg, BG: Blend(bg, fg, 0.08)}
	t.Button = surface.Style{FG: fg, BG: Blend(bg, fg, 0.15)}
	t.ButtonFocused = surface.Style{FG: bg, BG: accent, Attrs: surface.AttrBold}
	t.ButtonHovered = surface.Style{FG: fg, BG: Blend(Blend(bg, fg, 0.15), accent, 0.25)}
	t.ListItem = surface.Style{FG: fg, BG: bg}
	t.ListSelected = surface.Style{FG: bg, BG: accent}
	t.Placeholder = surface.Style{FG: muted, BG: bg, Attrs: surface.AttrItalic}
}
