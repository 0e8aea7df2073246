// Package focus provides focus traversal over a session's node tree.
//
// A Ring linearizes the focusable nodes in pre-order and moves focus
// between them, either linearly (Next/Prev with wraparound) or spatially
// (MoveDirection, which scores candidates by arranged geometry). The ring
// never owns focus state itself; all changes go through the session, so
// the at-most-one-focused invariant holds no matter how many rings or
// input sources exist.
package focus

import (
	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
)

// Direction indicates a spatial focus movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Ring navigates the focusable nodes of a session. The traversal order is
// cached and rebuilt lazily whenever the session's structure generation
// changes, so reconciliation passes that only update node fields reuse
// the cached order.
type Ring struct {
	session *core.Session

	order []core.Node
	gen   uint64
	fresh bool
}

// New returns a ring over the session's tree.
func New(s *core.Session) *Ring {
	return &Ring{session: s}
}

// Invalidate drops the cached traversal order. The ring also invalidates
// itself automatically when the session records a structure change.
func (r *Ring) Invalidate() {
	r.fresh = false
	r.order = r.order[:0]
}

// Order returns the focusable nodes in traversal (pre-order) sequence.
// The returned slice is the ring's cache; callers must not retain it
// across frames.
func (r *Ring) Order() []core.Node {
	r.refresh()
	return r.order
}

func (r *Ring) refresh() {
	gen := r.session.StructureGen()
	if r.fresh && gen == r.gen {
		return
	}
	r.order = core.AppendFocusables(r.session.Root(), r.order[:0])
	r.gen = gen
	r.fresh = true
}

// FocusFirst focuses the first focusable node, if any.
func (r *Ring) FocusFirst() bool {
	r.refresh()
	if len(r.order) == 0 {
		return false
	}
	r.session.SetFocus(r.order[0])
	return true
}

// Next moves focus to the next focusable node, wrapping at the end. With
// no current focus it starts at the first node.
func (r *Ring) Next() bool {
	return r.MoveBy(1)
}

// Prev moves focus to the previous focusable node, wrapping at the start.
func (r *Ring) Prev() bool {
	return r.MoveBy(-1)
}

// MoveBy moves focus by delta positions in traversal order.
func (r *Ring) MoveBy(delta int) bool {
	r.refresh()
	count := len(r.order)
	if count == 0 {
		return false
	}
	current := r.indexOf(r.session.Focused())
	if current < 0 && delta < 0 {
		// No current focus: Prev lands on the last node, Next on the first.
		current = 0
	}
	next := wrapIndex(current+delta, count)
	r.session.SetFocus(r.order[next])
	return true
}

func (r *Ring) indexOf(n core.Node) int {
	if n == nil {
		return -1
	}
	for i, candidate := range r.order {
		if candidate == n {
			return i
		}
	}
	return -1
}

// MoveDirection moves focus to the nearest focusable node in the given
// direction, judged by arranged bounds. Candidates are scored by distance
// along the movement axis plus a doubled cross-axis penalty, so aligned
// neighbors win over nearer but offset ones. When the current node has no
// usable geometry, or nothing lies in the requested direction, traversal
// falls back to the linear order.
func (r *Ring) MoveDirection(d Direction) bool {
	r.refresh()
	if len(r.order) == 0 {
		return false
	}
	current := r.session.Focused()
	if current == nil {
		return r.FocusFirst()
	}

	source := current.Bounds()
	if source.IsEmpty() {
		return r.MoveBy(linearDelta(d))
	}

	var best core.Node
	bestScore := int(^uint(0) >> 1)
	for _, candidate := range r.order {
		if candidate == current {
			continue
		}
		rect := candidate.Bounds()
		if rect.IsEmpty() || !isInDirection(source, rect, d) {
			continue
		}
		score := directionalScore(source, rect, d)
		if score < bestScore {
			bestScore = score
			best = candidate
		}
	}
	if best == nil {
		return r.MoveBy(linearDelta(d))
	}
	r.session.SetFocus(best)
	return true
}

func linearDelta(d Direction) int {
	if d == DirUp || d == DirLeft {
		return -1
	}
	return 1
}

// center2 returns the rect center doubled, keeping the math integral for
// odd-sized cells.
func center2(r geometry.Rect) (x, y int) {
	return 2*r.X + r.Width, 2*r.Y + r.Height
}

func isInDirection(source, target geometry.Rect, d Direction) bool {
	sx, sy := center2(source)
	tx, ty := center2(target)
	switch d {
	case DirUp:
		return ty < sy
	case DirDown:
		return ty > sy
	case DirLeft:
		return tx < sx
	case DirRight:
		return tx > sx
	}
	return false
}

func directionalScore(source, target geometry.Rect, d Direction) int {
	sx, sy := center2(source)
	tx, ty := center2(target)
	var primary, cross int
	switch d {
	case DirUp, DirDown:
		primary = abs(ty - sy)
		cross = abs(tx - sx)
	case DirLeft, DirRight:
		primary = abs(tx - sx)
		cross = abs(ty - sy)
	}
	return primary + cross*2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
