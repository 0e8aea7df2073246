package widgets

import (
	"reflect"
	"strings"
	"testing"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/errors"
	"github.com/go-tessel/tessel/pkg/geometry"
)

// faultyWidget panics during the requested phase.
type faultyWidget struct {
	phase errors.Phase
}

func (w faultyWidget) NodeType() reflect.Type {
	return reflect.TypeOf(&faultyNode{})
}

func (w faultyWidget) Reconcile(existing core.Node, ctx core.Context) core.Node {
	if w.phase == errors.PhaseReconcile {
		panic("reconcile exploded")
	}
	var n *faultyNode
	if existing == nil {
		n = &faultyNode{}
		n.Init(n, ctx)
	} else {
		n = existing.(*faultyNode)
	}
	n.phase = w.phase
	return n
}

type faultyNode struct {
	core.NodeBase
	phase errors.Phase
}

func (n *faultyNode) MeasureContent(c geometry.Constraints) geometry.Size {
	if n.phase == errors.PhaseMeasure {
		panic("measure exploded")
	}
	return geometry.Size{Width: 1, Height: 1}
}

func (n *faultyNode) RenderContent(rc *core.RenderContext) {
	if n.phase == errors.PhaseRender {
		panic("render exploded")
	}
}

func TestRescueCapturesReconcilePanic(t *testing.T) {
	capture := &captureHandler{}
	errors.SetHandler(capture)
	defer errors.SetHandler(nil)

	s := core.NewSession(nil)
	surf := frame(t, s, RescueOf(faultyWidget{phase: errors.PhaseReconcile}), 80, 2)
	if !strings.Contains(surf.Line(0), "panic: reconcile exploded") {
		t.Errorf("row 0 = %q, want the panic message in the default fallback", surf.Line(0))
	}
	if !strings.Contains(surf.Line(0), "[reconcile]") {
		t.Errorf("row 0 = %q, want the phase in the default fallback", surf.Line(0))
	}

	node := s.Root().(*RescueNode)
	if node.Err() == nil || node.Err().Phase != errors.PhaseReconcile {
		t.Errorf("captured = %+v, want a reconcile-phase error", node.Err())
	}
	if capture.last() == nil {
		t.Error("the failure should also reach the global handler")
	}
}

func TestRescueCapturesLayoutPanic(t *testing.T) {
	errors.SetHandler(&captureHandler{})
	defer errors.SetHandler(nil)

	s := core.NewSession(nil)
	frame(t, s, RescueOf(faultyWidget{phase: errors.PhaseMeasure}), 80, 2)
	node := s.Root().(*RescueNode)
	if node.Err() == nil || node.Err().Phase != errors.PhaseMeasure {
		t.Errorf("captured = %+v, want a measure-phase error", node.Err())
	}

	// The next frame shows the fallback instead of failing again.
	surf := frame(t, s, RescueOf(faultyWidget{phase: errors.PhaseMeasure}), 80, 2)
	if !strings.Contains(surf.Line(0), "panic: measure exploded") {
		t.Errorf("row 0 = %q, want fallback after layout failure", surf.Line(0))
	}
}

func TestRescueCustomFallback(t *testing.T) {
	errors.SetHandler(&captureHandler{})
	defer errors.SetHandler(nil)

	s := core.NewSession(nil)
	rescue := RescueOf(faultyWidget{phase: errors.PhaseReconcile}).
		WithFallback(func(err *errors.PhaseError) core.Widget {
			return TextOf("degraded mode")
		})
	surf := frame(t, s, rescue, 30, 2)
	if !strings.Contains(surf.Line(0), "degraded mode") {
		t.Errorf("row 0 = %q", surf.Line(0))
	}
}

func TestRescueResetRetries(t *testing.T) {
	errors.SetHandler(&captureHandler{})
	defer errors.SetHandler(nil)

	s := core.NewSession(nil)
	frame(t, s, RescueOf(faultyWidget{phase: errors.PhaseReconcile}), 30, 2)
	node := s.Root().(*RescueNode)
	node.Reset()

	// A healthy child after Reset renders normally.
	surf := frame(t, s, RescueOf(TextOf("recovered")), 30, 2)
	if !strings.Contains(surf.Line(0), "recovered") {
		t.Errorf("row 0 = %q", surf.Line(0))
	}
	if node.Err() != nil {
		t.Error("Reset should clear the captured error")
	}
}

func TestUnrescuedPanicFailsTheFrame(t *testing.T) {
	errors.SetHandler(&captureHandler{})
	defer errors.SetHandler(nil)

	s := core.NewSession(nil)
	if err := s.Reconcile(faultyWidget{phase: errors.PhaseReconcile}); err == nil {
		t.Fatal("a panic outside any Rescue must surface from the session")
	}
}
