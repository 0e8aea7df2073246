package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandlePhaseError logs a PhaseError to stderr.
func (h *LogHandler) HandlePhaseError(err *PhaseError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[tessel error] %s\n", err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
