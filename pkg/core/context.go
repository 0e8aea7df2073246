package core

import (
	"github.com/go-tessel/tessel/pkg/geometry"
	"github.com/go-tessel/tessel/pkg/theme"
)

// Context is the immutable scope value threaded down the reconcile
// recursion. Parents construct narrowed copies for their children; a
// context never survives across frames and is never mutated in place.
type Context struct {
	session *Session
	theme   *theme.Theme

	axis  geometry.Axis
	index int
	count int

	isNew              bool
	parentManagesFocus bool
}

// NewContext returns the root context for one reconciliation pass.
func NewContext(s *Session) Context {
	ctx := Context{session: s, count: 1}
	if s != nil {
		ctx.theme = s.theme
	}
	return ctx
}

// Session returns the session driving this pass.
func (c Context) Session() *Session {
	return c.session
}

// Theme returns the theme in scope, possibly overridden by an ancestor.
func (c Context) Theme() *theme.Theme {
	return c.theme
}

// Axis returns the layout axis established by the nearest container.
// Axis-agnostic children (separators) consume it.
func (c Context) Axis() geometry.Axis {
	return c.axis
}

// ChildIndex returns this child's position in its parent's child list.
func (c Context) ChildIndex() int {
	return c.index
}

// ChildCount returns the length of the parent's child list.
func (c Context) ChildCount() int {
	return c.count
}

// IsNew reports whether this reconcile call is creating the node for the
// first time.
func (c Context) IsNew() bool {
	return c.isNew
}

// ParentManagesFocus reports whether an ancestor already claimed the
// initial-focus decision for this subtree.
func (c Context) ParentManagesFocus() bool {
	return c.parentManagesFocus
}

// WithAxis returns a context narrowed to the given layout axis.
func (c Context) WithAxis(axis geometry.Axis) Context {
	c.axis = axis
	return c
}

// WithChild returns a context for child index of count siblings.
func (c Context) WithChild(index, count int) Context {
	c.index = index
	c.count = count
	return c
}

// WithTheme returns a context with a theme override for the subtree.
func (c Context) WithTheme(t *theme.Theme) Context {
	if t != nil {
		c.theme = t
	}
	return c
}

// WithParentManagesFocus marks descendants as focus-managed, preventing
// nested containers from re-seeding initial focus.
func (c Context) WithParentManagesFocus() Context {
	c.parentManagesFocus = true
	return c
}

func (c Context) asNew() Context {
	c.isNew = true
	return c
}

func (c Context) asReused() Context {
	c.isNew = false
	return c
}
