package core

import "reflect"

// Widget is an immutable descriptor of desired UI for one frame. Widgets
// carry only configuration; they have no identity beyond their structural
// position (or key, for keyed collections) and are discarded after
// reconciliation.
//
// Reconcile must be pure with respect to everything except the returned
// node's fields: when existing is nil it builds a fresh node, otherwise it
// updates existing in place and returns it. The reconciler — not the
// widget — decides which case applies, by comparing the existing node's
// runtime type against NodeType.
type Widget interface {
	Reconcile(existing Node, ctx Context) Node
	NodeType() reflect.Type
}

// Keyed is an optional extension for widgets backed by identity-bearing
// collections. ReconcileKeyed matches keyed widgets to old nodes by key
// before falling back to positional creation, so reordering items does
// not lose node state.
type Keyed interface {
	Widget
	Key() any
}

// KeyCarrier is implemented by nodes created from keyed widgets.
type KeyCarrier interface {
	NodeKey() any
}
