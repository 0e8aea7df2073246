package core

import (
	"sync"

	"github.com/go-tessel/tessel/pkg/errors"
	"github.com/go-tessel/tessel/pkg/geometry"
	"github.com/go-tessel/tessel/pkg/surface"
	"github.com/go-tessel/tessel/pkg/theme"
)

// Session owns one render tree and the cross-cutting state that must
// survive structural change: the single focus holder, the hover holder,
// and the structure generation the focus ring keys its cache on. All
// focus changes route through the session, which is what preserves the
// at-most-one-focused-node invariant without package-level global state.
//
// A session drives sequential frame phases — reconcile, measure, arrange,
// render — over a tree it exclusively owns. Nothing mutates node fields
// concurrently with a frame pass; the only concurrency the session admits
// is Post, which queues work from async content builds for the start of
// the next frame.
type Session struct {
	theme *theme.Theme

	root     Node
	focus    Node
	hover    Node
	viewport geometry.Rect

	frame        uint64
	structureGen uint64

	mu      sync.Mutex
	pending []func()
}

// NewSession creates a session with the given theme (dark if nil).
func NewSession(t *theme.Theme) *Session {
	if t == nil {
		t = theme.Dark()
	}
	return &Session{theme: t}
}

// Root returns the current root node, nil before the first frame.
func (s *Session) Root() Node {
	return s.root
}

// Theme returns the session's base theme.
func (s *Session) Theme() *theme.Theme {
	return s.theme
}

// Focused returns the node holding focus, or nil.
func (s *Session) Focused() Node {
	return s.focus
}

// SetFocus moves focus to the given node, clearing it from whatever node
// previously held it. Nodes that are unmounted or not focusable are
// refused; SetFocus(nil) clears focus entirely.
func (s *Session) SetFocus(n Node) {
	if n != nil && (!n.Mounted() || !n.Focusable()) {
		return
	}
	if s.focus == n {
		return
	}
	if s.focus != nil {
		s.focus.base().setFocused(false)
	}
	s.focus = n
	if n != nil {
		n.base().setFocused(true)
	}
}

// Hovered returns the node under the pointer, or nil.
func (s *Session) Hovered() Node {
	return s.hover
}

// SetHover moves the hover flag to the given node, clearing the previous
// holder. SetHover(nil) clears hover entirely.
func (s *Session) SetHover(n Node) {
	if n != nil && !n.Mounted() {
		return
	}
	if s.hover == n {
		return
	}
	if s.hover != nil {
		s.hover.base().setHovered(false)
	}
	s.hover = n
	if n != nil {
		n.base().setHovered(true)
	}
}

// StructureGen returns a counter bumped on every node creation or
// disposal. Focus-order caches compare it to detect staleness.
func (s *Session) StructureGen() uint64 {
	return s.structureGen
}

func (s *Session) noteStructureChange() {
	s.structureGen++
}

// noteDisposed releases session references to a node leaving the tree.
// A stale focus reference here would point focus at a disposed node, so
// it is dropped the moment disposal happens, not detected at read time.
func (s *Session) noteDisposed(n Node) {
	if n == nil {
		return
	}
	if s.focus == n {
		n.base().setFocused(false)
		s.focus = nil
	}
	if s.hover == n {
		n.base().setHovered(false)
		s.hover = nil
	}
	s.structureGen++
}

// Post queues fn to run at the start of the next frame. It is the one
// session entry point safe to call from other goroutines; async content
// builds use it to deliver results into the single-threaded frame cycle.
func (s *Session) Post(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// drainPending runs queued async deliveries. Deliveries targeting nodes
// disposed since they were queued are expected to check Mounted and
// discard themselves.
func (s *Session) drainPending() {
	s.mu.Lock()
	queued := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, fn := range queued {
		fn()
	}
}

// Reconcile diffs the descriptor tree against the current node tree,
// producing the updated tree. Panics from widget logic are reported
// phase-tagged and leave the previous tree in place.
func (s *Session) Reconcile(w Widget) error {
	// Posted deliveries are content builds; a panic in one must come back
	// phase-tagged rather than escape the session.
	if err := errors.Guard("core.Session.Reconcile", errors.PhaseBuild, s.drainPending); err != nil {
		return err
	}
	if err := errors.Guard("core.Session.Reconcile", errors.PhaseReconcile, func() {
		s.root = ReconcileChild(s.root, w, NewContext(s))
	}); err != nil {
		return err
	}
	return nil
}

// Layout measures the tree against the viewport and arranges it. The two
// passes are guarded separately so a failure reports which phase broke.
func (s *Session) Layout(viewport geometry.Rect) error {
	if s.root == nil {
		return nil
	}
	s.frame++
	s.viewport = viewport
	if err := errors.Guard("core.Session.Layout", errors.PhaseMeasure, func() {
		s.root.Measure(geometry.Tight(viewport.Size()))
	}); err != nil {
		return err
	}
	if err := errors.Guard("core.Session.Layout", errors.PhaseArrange, func() {
		s.root.Arrange(viewport)
	}); err != nil {
		return err
	}
	return nil
}

// Render emits the arranged tree into the surface.
func (s *Session) Render(surf *surface.Surface) error {
	if s.root == nil {
		return nil
	}
	rc := &RenderContext{Surface: surf, Clip: surf.Bounds(), Theme: s.theme}
	if err := errors.Guard("core.Session.Render", errors.PhaseRender, func() {
		s.root.Render(rc)
	}); err != nil {
		return err
	}
	return nil
}

// Frame runs one complete frame: reconcile, layout against the surface,
// render.
func (s *Session) Frame(w Widget, surf *surface.Surface) error {
	if err := s.Reconcile(w); err != nil {
		return err
	}
	if err := s.Layout(surf.Bounds()); err != nil {
		return err
	}
	return s.Render(surf)
}
