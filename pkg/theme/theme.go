// Package theme provides style configuration for the widget set. Themes
// are immutable value bundles threaded down the tree through the reconcile
// context; nothing in this package is ambient state.
package theme

import "github.com/go-tessel/tessel/pkg/surface"

// Theme contains all style configuration for a UI tree.
type Theme struct {
	// Name identifies the theme (used by configuration files).
	Name string

	// Text styles.
	Text  surface.Style
	Muted surface.Style
	Title surface.Style
	Error surface.Style

	// Container styles.
	Border        surface.Style
	BorderFocused surface.Style
	Separator     surface.Style
	Overlay       surface.Style

	// Interactive styles.
	Button        surface.Style
	ButtonFocused surface.Style
	ButtonHovered surface.Style
	ListItem      surface.Style
	ListSelected  surface.Style
	Placeholder   surface.Style

	// Borders is the box drawing set used by bordered containers.
	Borders surface.BorderSet
}

// Dark returns the default dark theme.
func Dark() *Theme {
	fg := surface.Hex(0xD8DEE9)
	bg := surface.Hex(0x2E3440)
	accent := surface.Hex(0x88C0D0)
	muted := surface.Hex(0x6C7A96)

	return &Theme{
		Name:          "dark",
		Text:          surface.Style{FG: fg, BG: bg},
		Muted:         surface.Style{FG: muted, BG: bg},
		Title:         surface.Style{FG: accent, BG: bg, Attrs: surface.AttrBold},
		Error:         surface.Style{FG: surface.Hex(0xBF616A), BG: bg, Attrs: surface.AttrBold},
		Border:        surface.Style{FG: muted, BG: bg},
		BorderFocused: surface.Style{FG: accent, BG: bg},
		Separator:     surface.Style{FG: muted, BG: bg},
		Overlay:       surface.Style{FG: fg, BG: surface.Hex(0x3B4252)},
		Button:        surface.Style{FG: fg, BG: surface.Hex(0x434C5E)},
		ButtonFocused: surface.Style{FG: bg, BG: accent, Attrs: surface.AttrBold},
		ButtonHovered: surface.Style{FG: fg, BG: Blend(surface.Hex(0x434C5E), accent, 0.25)},
		ListItem:      surface.Style{FG: fg, BG: bg},
		ListSelected:  surface.Style{FG: bg, BG: accent},
		Placeholder:   surface.Style{FG: muted, BG: bg, Attrs: surface.AttrItalic},
		Borders:       surface.SingleBorder(),
	}
}

// Light returns the default light theme.
func Light() *Theme {
	fg := surface.Hex(0x2E3440)
	bg := surface.Hex(0xECEFF4)
	accent := surface.Hex(0x5E81AC)
	muted := surface.Hex(0x9AA5B8)

	return &Theme{
		Name:          "light",
		Text:          surface.Style{FG: fg, BG: bg},
		Muted:         surface.Style{FG: muted, BG: bg},
		Title:         surface.Style{FG: accent, BG: bg, Attrs: surface.AttrBold},
		Error:         surface.Style{FG: surface.Hex(0xB4303C), BG: bg, Attrs: surface.AttrBold},
		Border:        surface.Style{FG: muted, BG: bg},
		BorderFocused: surface.Style{FG: accent, BG: bg},
		Separator:     surface.Style{FG: muted, BG: bg},
		Overlay:       surface.Style{FG: fg, BG: surface.Hex(0xE5E9F0)},
		Button:        surface.Style{FG: fg, BG: surface.Hex(0xD8DEE9)},
		ButtonFocused: surface.Style{FG: bg, BG: accent, Attrs: surface.AttrBold},
		ButtonHovered: surface.Style{FG: fg, BG: Blend(surface.Hex(0xD8DEE9), accent, 0.25)},
		ListItem:      surface.Style{FG: fg, BG: bg},
		ListSelected:  surface.Style{FG: bg, BG: accent},
		Placeholder:   surface.Style{FG: muted, BG: bg, Attrs: surface.AttrItalic},
		Borders:       surface.SingleBorder(),
	}
}

// CopyWith returns a copy of the theme with the non-nil overrides applied.
func (t *Theme) CopyWith(overrides func(*Theme)) *Theme {
	copied := *t
	if overrides != nil {
		overrides(&copied)
	}
	return &copied
}
