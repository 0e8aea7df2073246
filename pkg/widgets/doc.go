// Package widgets provides the built-in widget set: immutable descriptors
// that reconcile into render nodes.
//
// Widgets are plain value types. Build a new tree of them every frame and
// hand the root to core.Session.Reconcile; persistent node state (scroll
// offsets, focus, async results) survives across frames as long as the
// descriptor at a position keeps the same type.
package widgets
