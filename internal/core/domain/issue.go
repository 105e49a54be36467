package domain

import "strings"

// Severity classifies how serious a compliance issue is.
type Severity string

// Severity levels, as reported by the oracle.
const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
	SeverityReview Severity = "Review"
)

// NormalizeSeverity maps a free-form severity string onto a known level.
// Unknown or empty values default to Review.
func NormalizeSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	case "low":
		return SeverityLow
	default:
		return SeverityReview
	}
}

// Issue is a single compliance finding. It comes from the oracle and is
// loosely typed: every field is optional, and an issue is only usable for
// annotation if at least one locatable text field is non-empty.
type Issue struct {
	// Document is the file name the issue was found in.
	Document string `json:"document,omitempty"`

	// Snippet is a short excerpt of the problematic text.
	Snippet string `json:"snippet,omitempty"`

	// Section is an optional human-readable heading.
	Section string `json:"section,omitempty"`

	// Text is an alternative excerpt field some oracle responses use.
	Text string `json:"text,omitempty"`

	// Issue describes the compliance problem.
	Issue string `json:"issue,omitempty"`

	// Severity is one of High/Medium/Low/Review.
	Severity Severity `json:"severity,omitempty"`

	// Suggestion is the recommended remediation.
	Suggestion string `json:"suggestion,omitempty"`
}

// SearchKey returns the text used to locate this issue in a document.
// The first non-empty of snippet, section, text wins; the issue
// description itself is the last-resort keyword source.
func (i Issue) SearchKey() string {
	for _, s := range []string{i.Snippet, i.Section, i.Text, i.Issue} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// Locatable reports whether the issue carries any text usable as a
// search key. Issues without one are skipped during annotation.
func (i Issue) Locatable() bool {
	return i.SearchKey() != ""
}

// EffectiveSeverity returns the issue severity, defaulting to Review.
func (i Issue) EffectiveSeverity() Severity {
	if i.Severity == "" {
		return SeverityReview
	}
	return NormalizeSeverity(string(i.Severity))
}

// OracleResponse is the parsed form of an oracle reply. It is a tagged
// variant: either the reply contained a structured issue list, or it is
// carried through as opaque text for display and audit.
type OracleResponse struct {
	// Issues is the structured issue list (empty for unstructured replies).
	Issues []Issue

	// Raw is the original oracle output, always preserved.
	Raw string

	// Structured is true when Issues was parsed from valid JSON.
	Structured bool
}
