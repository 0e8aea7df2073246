package core

// FirstFocusable returns the first focusable node in the subtree in
// pre-order, depth-first order, or nil.
func FirstFocusable(n Node) Node {
	if n == nil || !n.Mounted() {
		return nil
	}
	if n.Focusable() {
		return n
	}
	var found Node
	visitFocusChildren(n, func(child Node) bool {
		if f := FirstFocusable(child); f != nil {
			found = f
			return false
		}
		return true
	})
	return found
}

// AppendFocusables appends every focusable node in the subtree to out in
// pre-order, depth-first order. The input layer and the focus ring
// consume this to linearize the tree.
func AppendFocusables(n Node, out []Node) []Node {
	if n == nil || !n.Mounted() {
		return out
	}
	if n.Focusable() {
		out = append(out, n)
	}
	visitFocusChildren(n, func(child Node) bool {
		out = AppendFocusables(child, out)
		return true
	})
	return out
}

// FocusWithin reports whether n or any descendant holds focus. Border and
// panel widgets use it to pick their focused styling.
func FocusWithin(n Node) bool {
	if n == nil {
		return false
	}
	if n.IsFocused() {
		return true
	}
	found := false
	visitFocusChildren(n, func(child Node) bool {
		if FocusWithin(child) {
			found = true
			return false
		}
		return true
	})
	return found
}

// SeedFocus implements the initial-focus policy for focus-boundary
// containers (border, panel, window). It fires only when the container's
// node was just created and no ancestor has claimed focus management for
// this subtree, giving a freshly built standalone UI an initial focus
// target while nested containers don't fight over who sets it.
//
// Returns true if focus was placed.
func SeedFocus(ctx Context, root Node) bool {
	if !ctx.IsNew() || ctx.ParentManagesFocus() || ctx.session == nil {
		return false
	}
	first := FirstFocusable(root)
	if first == nil {
		return false
	}
	ctx.session.SetFocus(first)
	return true
}
