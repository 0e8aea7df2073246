package widgets

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/errors"
	"github.com/go-tessel/tessel/pkg/geometry"
)

type lazyState int

const (
	lazyNotStarted lazyState = iota
	lazyPending
	lazyResolved
	lazyFailed
)

// Lazy builds a subtree asynchronously. Load runs on its own goroutine;
// until it returns the placeholder is shown. The result is delivered
// through the session's frame queue, so node mutation stays on the frame
// cycle no matter which goroutine the loader finishes on. A load that
// completes after its node was disposed is discarded.
type Lazy struct {
	// Load produces the subtree. The context is canceled when the node is
	// disposed or Key changes.
	Load func(ctx context.Context) (core.Widget, error)
	// Placeholder is shown while loading. Defaults to a muted "loading".
	Placeholder core.Widget
	// Key identifies the load; changing it cancels the running load and
	// starts over.
	Key any
}

// LazyOf creates a lazy subtree with the given loader.
func LazyOf(load func(ctx context.Context) (core.Widget, error)) Lazy {
	return Lazy{Load: load}
}

// WithPlaceholder returns a copy with the given placeholder.
func (l Lazy) WithPlaceholder(placeholder core.Widget) Lazy {
	l.Placeholder = placeholder
	return l
}

// WithKey returns a copy keyed by key.
func (l Lazy) WithKey(key any) Lazy {
	l.Key = key
	return l
}

func (l Lazy) NodeType() reflect.Type {
	return reflect.TypeOf(&lazyNode{})
}

func (l Lazy) Reconcile(existing core.Node, ctx core.Context) core.Node {
	var n *lazyNode
	if existing == nil {
		n = &lazyNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*lazyNode)
	}
	n.load = l.Load

	if n.state != lazyNotStarted && n.key != l.Key {
		n.restart()
	}
	n.key = l.Key

	if n.state == lazyNotStarted && n.load != nil {
		n.start(ctx.Session())
	}

	switch n.state {
	case lazyResolved:
		n.child = core.ReconcileChild(n.child, n.resolved, ctx)
	case lazyFailed:
		msg := TextOf(fmt.Sprintf("load failed: %v", n.err)).WithStyle(ctx.Theme().Error)
		n.child = core.ReconcileChild(n.child, msg, ctx)
	default:
		placeholder := l.Placeholder
		if placeholder == nil {
			placeholder = TextOf("loading...").WithStyle(ctx.Theme().Placeholder)
		}
		n.child = core.ReconcileChild(n.child, placeholder, ctx)
	}
	return n
}

type lazyNode struct {
	core.NodeBase
	load func(ctx context.Context) (core.Widget, error)
	key  any

	state    lazyState
	gen      int
	cancel   context.CancelFunc
	resolved core.Widget
	err      error

	child core.Node
}

func (n *lazyNode) VisitChildren(visitor func(core.Node) bool) {
	if n.child != nil {
		visitor(n.child)
	}
}

func (n *lazyNode) MeasureContent(c geometry.Constraints) geometry.Size {
	if n.child == nil {
		return geometry.Size{}
	}
	return n.child.Measure(c)
}

func (n *lazyNode) ArrangeChildren(bounds geometry.Rect) {
	if n.child != nil {
		n.child.Arrange(bounds)
	}
}

// restart cancels the running load and returns to the unstarted state.
func (n *lazyNode) restart() {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.gen++
	n.state = lazyNotStarted
	n.resolved = nil
	n.err = nil
	n.MarkDirty()
}

func (n *lazyNode) start(session *core.Session) {
	loadCtx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.state = lazyPending
	gen := n.gen
	load := n.load

	go func() {
		w, err := load(loadCtx)
		session.Post(func() {
			// The node may have been disposed or restarted while the
			// loader ran; its result no longer has a home.
			if !n.Mounted() || n.gen != gen {
				return
			}
			if err != nil {
				n.state = lazyFailed
				n.err = err
				errors.Report(&errors.PhaseError{
					Op:    "widgets.Lazy",
					Phase: errors.PhaseBuild,
					Err:   err,
				})
			} else {
				n.state = lazyResolved
				n.resolved = w
			}
			n.MarkDirty()
		})
	}()
}

func (n *lazyNode) DisposeContent() {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}
