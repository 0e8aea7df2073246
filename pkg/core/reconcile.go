package core

import "reflect"

// ReconcileChild matches one descriptor against one existing node.
//
// If existing is absent or its runtime type disagrees with the widget's
// declared node type, the old node (if any) is disposed and the widget
// builds a fresh node with IsNew set on the context — replace, never
// throw. Otherwise the existing node is kept and the widget updates its
// descriptor-driven fields in place; transient node state (scroll offset,
// cursor, focus) survives untouched.
//
// Containers call this once per declared child, in descriptor order.
func ReconcileChild(existing Node, w Widget, ctx Context) Node {
	if w == nil {
		if existing != nil && existing.Mounted() {
			existing.Dispose()
		}
		return nil
	}
	if existing != nil && existing.Mounted() && reflect.TypeOf(existing) == w.NodeType() {
		return w.Reconcile(existing, ctx.asReused())
	}
	if existing != nil && existing.Mounted() {
		existing.Dispose()
	}
	node := w.Reconcile(nil, ctx.asNew())
	if node != nil && ctx.session != nil {
		ctx.session.noteStructureChange()
	}
	return node
}

// ReconcileSlice reconciles a variable-length child list positionally:
// child i of the new descriptor list reconciles against child i of the
// old node list, and surplus old children are disposed. The result
// mirrors descriptor order exactly.
func ReconcileSlice(existing []Node, widgets []Widget, ctx Context) []Node {
	out := make([]Node, 0, len(widgets))
	for i, w := range widgets {
		var old Node
		if i < len(existing) {
			old = existing[i]
		}
		if n := ReconcileChild(old, w, ctx.WithChild(i, len(widgets))); n != nil {
			out = append(out, n)
		}
	}
	for i := len(widgets); i < len(existing); i++ {
		if existing[i] != nil && existing[i].Mounted() {
			existing[i].Dispose()
		}
	}
	return out
}

// ReconcileKeyed is the keyed-diff extension over the positional base
// algorithm, for identity-bearing collections. Old nodes implementing
// KeyCarrier are indexed by key; new widgets implementing Keyed match
// their old node by key first, falling back to positional creation. Old
// nodes left unmatched are disposed. Sibling order in the output mirrors
// descriptor order regardless of where matches came from.
func ReconcileKeyed(existing []Node, widgets []Widget, ctx Context) []Node {
	byKey := make(map[any]Node, len(existing))
	for _, n := range existing {
		if n == nil || !n.Mounted() {
			continue
		}
		if kc, ok := n.(KeyCarrier); ok {
			byKey[kc.NodeKey()] = n
		}
	}

	used := make(map[Node]bool, len(existing))
	out := make([]Node, 0, len(widgets))
	for i, w := range widgets {
		childCtx := ctx.WithChild(i, len(widgets))
		var match Node
		if kw, ok := w.(Keyed); ok {
			if m, found := byKey[kw.Key()]; found && !used[m] {
				match = m
			}
		} else if i < len(existing) {
			// Unkeyed widgets fall back to positional matching against
			// unkeyed nodes.
			if cand := existing[i]; cand != nil && cand.Mounted() && !used[cand] {
				if _, keyed := cand.(KeyCarrier); !keyed {
					match = cand
				}
			}
		}
		n := ReconcileChild(match, w, childCtx)
		if n != nil {
			used[n] = true
			out = append(out, n)
		}
	}

	for _, n := range existing {
		if n != nil && n.Mounted() && !used[n] {
			n.Dispose()
		}
	}
	return out
}
