// Package logger provides verbose logging for the ADGM agent CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr so users can follow the review pipeline stage
// by stage: extraction, retrieval, oracle analysis, annotation.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	stage   int
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Reset restarts pipeline stage numbering. The review service calls it
// at the start of each run.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	stage = 0
}

// Section prints a numbered pipeline stage header if verbose mode is
// enabled. Stage numbers count up from 1 within a run; the counter
// advances even when quiet so numbering stays consistent if verbosity
// is toggled mid-run.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	stage++
	if verbose {
		fmt.Fprintf(output, "\n=== Stage %d: %s ===\n", stage, name)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
}
