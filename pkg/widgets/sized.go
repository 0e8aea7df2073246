package widgets

import (
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/geometry"
)

// Sized attaches a sizing hint to a child for use inside a Stack. It is
// transparent to reconciliation: the node tree contains only the child,
// so wrapping or unwrapping a widget never resets its state.
type Sized struct {
	Hint  geometry.SizeHint
	Child core.Widget
}

// Fixed gives the child exactly cells on the stack's main axis.
func Fixed(cells int, child core.Widget) Sized {
	return Sized{Hint: geometry.Fixed(cells), Child: child}
}

// Flexible gives the child an equal share of the stack's leftover space.
func Flexible(child core.Widget) Sized {
	return Sized{Hint: geometry.Fill(), Child: child}
}

// Weighted gives the child a share of leftover space proportional to w.
func Weighted(w int, child core.Widget) Sized {
	return Sized{Hint: geometry.Weighted(w), Child: child}
}

func (s Sized) SizeHint() geometry.SizeHint {
	return s.Hint
}

func (s Sized) NodeType() reflect.Type {
	return s.Child.NodeType()
}

func (s Sized) Reconcile(existing core.Node, ctx core.Context) core.Node {
	return s.Child.Reconcile(existing, ctx)
}
