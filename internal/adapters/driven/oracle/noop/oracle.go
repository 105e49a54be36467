// Package noop provides an oracle that reports no issues. It is used
// when the AI analysis stage is explicitly disabled but callers still
// want a non-nil oracle.
package noop

import (
	"context"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
)

// Ensure Oracle implements the interface.
var _ driven.Oracle = (*Oracle)(nil)

// Oracle reports zero issues for every request.
type Oracle struct{}

// New creates a no-op oracle.
func New() *Oracle {
	return &Oracle{}
}

// Analyze returns an empty issue list.
func (o *Oracle) Analyze(_ context.Context, _ driven.AnalysisRequest) (string, error) {
	return `{"issues":[]}`, nil
}

// Name returns the provider name.
func (o *Oracle) Name() string {
	return "noop"
}

// Ping always succeeds.
func (o *Oracle) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (o *Oracle) Close() error {
	return nil
}
