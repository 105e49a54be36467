// Package simulated provides an offline, rule-based oracle. It lets the
// full pipeline run without any API key: a handful of keyword checks
// stand in for real compliance analysis, and the reply uses the same
// JSON shape a remote model is asked for.
package simulated

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
)

// Ensure Oracle implements the interface.
var _ driven.Oracle = (*Oracle)(nil)

// rule is one keyword check applied per paragraph-sized line.
type rule struct {
	trigger    string
	issue      string
	severity   domain.Severity
	suggestion string
}

var defaultRules = []rule{
	{
		trigger:    "uae federal courts",
		issue:      "Jurisdiction clause references UAE Federal Courts instead of ADGM",
		severity:   domain.SeverityHigh,
		suggestion: "Replace jurisdiction clause with ADGM Courts",
	},
	{
		trigger:    "federal court",
		issue:      "Forum selection references a federal court rather than ADGM Courts",
		severity:   domain.SeverityHigh,
		suggestion: "Use ADGM Courts as the forum",
	},
	{
		trigger:    "to be determined",
		issue:      "Clause left incomplete (placeholder text present)",
		severity:   domain.SeverityMedium,
		suggestion: "Complete the clause before filing",
	},
}

// Oracle runs rule-based checks over the request documents.
type Oracle struct {
	rules []rule
}

// New creates a simulated oracle with the built-in rules.
func New() *Oracle {
	return &Oracle{rules: defaultRules}
}

// Analyze scans each document line by line and reports one issue per
// matched rule per line, serialised exactly like a remote oracle reply.
func (o *Oracle) Analyze(_ context.Context, req driven.AnalysisRequest) (string, error) {
	var issues []domain.Issue
	for _, name := range req.DocumentOrder {
		text, ok := req.Documents[name]
		if !ok {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lower := strings.ToLower(line)
			for _, r := range o.rules {
				if strings.Contains(lower, r.trigger) {
					issues = append(issues, domain.Issue{
						Document:   name,
						Snippet:    line,
						Issue:      r.issue,
						Severity:   r.severity,
						Suggestion: r.suggestion,
					})
				}
			}
		}
	}

	reply, err := json.Marshal(map[string][]domain.Issue{"issues": issues})
	if err != nil {
		return "", err
	}
	return string(reply), nil
}

// Name returns the provider name.
func (o *Oracle) Name() string {
	return "simulated"
}

// Ping always succeeds; there is nothing to reach.
func (o *Oracle) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (o *Oracle) Close() error {
	return nil
}
