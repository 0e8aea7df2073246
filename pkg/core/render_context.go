package core

import (
	"github.com/go-tessel/tessel/pkg/geometry"
	"github.com/go-tessel/tessel/pkg/surface"
	"github.com/go-tessel/tessel/pkg/theme"
)

// RenderContext carries the drawing surface, the active clip rectangle
// and the theme through the render recursion.
type RenderContext struct {
	Surface *surface.Surface
	Clip    geometry.Rect
	Theme   *theme.Theme
}

// WithClip returns a render context narrowed to the given clip rectangle.
func (rc *RenderContext) WithClip(clip geometry.Rect) *RenderContext {
	return &RenderContext{Surface: rc.Surface, Clip: clip, Theme: rc.Theme}
}

// WithTheme returns a render context with a theme override.
func (rc *RenderContext) WithTheme(t *theme.Theme) *RenderContext {
	if t == nil {
		return rc
	}
	return &RenderContext{Surface: rc.Surface, Clip: rc.Clip, Theme: t}
}
