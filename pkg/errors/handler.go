package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with Verbose=false.
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// getHandler returns the current error handler.
func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends a phase error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *PhaseError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePhaseError(err)
	}
}

// Recovered builds a PhaseError from a recovered panic value.
// Usage:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        errors.Report(errors.Recovered("core.Session.Render", errors.PhaseRender, r))
//	    }
//	}()
func Recovered(op string, phase Phase, value any) *PhaseError {
	return &PhaseError{
		Op:         op,
		Phase:      phase,
		Recovered:  value,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// Guard runs fn, converting a panic into a reported PhaseError.
// Returns nil when fn completes normally.
func Guard(op string, phase Phase, fn func()) (err *PhaseError) {
	defer func() {
		if r := recover(); r != nil {
			err = Recovered(op, phase, r)
			Report(err)
		}
	}()
	fn()
	return nil
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
