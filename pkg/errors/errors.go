// Package errors provides structured, phase-tagged error handling for the
// tessel engine.
package errors

import (
	"fmt"
	"time"
)

// Phase identifies the frame phase during which an error occurred.
type Phase int

const (
	// PhaseUnknown indicates the phase could not be determined.
	PhaseUnknown Phase = iota
	// PhaseBuild indicates a widget content-build failure, including
	// asynchronous subtree loads.
	PhaseBuild
	// PhaseReconcile indicates a failure while matching descriptors to nodes.
	PhaseReconcile
	// PhaseMeasure indicates a failure during the bottom-up measure pass.
	PhaseMeasure
	// PhaseArrange indicates a failure during the top-down arrange pass.
	PhaseArrange
	// PhaseRender indicates a failure while emitting cells.
	PhaseRender
)

func (p Phase) String() string {
	switch p {
	case PhaseBuild:
		return "build"
	case PhaseReconcile:
		return "reconcile"
	case PhaseMeasure:
		return "measure"
	case PhaseArrange:
		return "arrange"
	case PhaseRender:
		return "render"
	default:
		return "unknown"
	}
}

// PhaseError represents a failure raised by widget or node logic during one
// of the frame phases. Only the phase identity is meant to be surfaced to
// fallback UI; engine internals stay in the error itself.
type PhaseError struct {
	// Op is the operation that failed (e.g., "widgets.List.Reconcile").
	Op string
	// Phase is the frame phase in which the failure occurred.
	Phase Phase
	// Recovered is the panic value, if the failure was a recovered panic.
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the failure.
	StackTrace string
	// Timestamp is when the failure occurred.
	Timestamp time.Time
}

func (e *PhaseError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("%s [%s]: panic: %v", e.Op, e.Phase, e.Recovered)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Handler receives errors reported by the engine.
type Handler interface {
	// HandlePhaseError is called when a frame-phase failure is reported.
	HandlePhaseError(err *PhaseError)
}
