package core

import "github.com/go-tessel/tessel/pkg/geometry"

// NodeAt returns the deepest rendered node whose ContentBounds contains
// the point, or nil. Children are tested in reverse render order so the
// topmost painted node wins, mirroring paint order.
//
// ContentBounds — not Bounds — decides containment, so an anchored
// overlay whose node covers the whole screen only claims hits on its
// floating content; clicks beside the popup fall through to whatever is
// underneath, which is what backdrop-dismiss logic keys on.
func NodeAt(root Node, p geometry.Point) Node {
	if root == nil || !root.Mounted() {
		return nil
	}
	if !root.ContentBounds().Contains(p) {
		return nil
	}
	var children []Node
	visitRenderChildren(root, func(child Node) bool {
		children = append(children, child)
		return true
	})
	for i := len(children) - 1; i >= 0; i-- {
		if hit := NodeAt(children[i], p); hit != nil {
			return hit
		}
	}
	return root
}
