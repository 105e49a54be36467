package services

import (
	"encoding/json"
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// issueEnvelope is the expected top-level shape of a structured oracle
// reply. Issues stays raw so a non-list value degrades to zero issues
// instead of discarding the whole object.
type issueEnvelope struct {
	Issues json.RawMessage `json:"issues"`
}

// ParseOracleResponse applies the response parsing policy: try the whole
// reply as JSON, then the first balanced JSON object substring, then give
// up and carry the reply through as opaque text.
//
// The raw text is always preserved for display and audit. A reply that
// parses but has a missing or non-list "issues" key yields a structured
// response with zero issues.
func ParseOracleResponse(raw string) domain.OracleResponse {
	trimmed := strings.TrimSpace(raw)

	if issues, ok := decodeIssues(trimmed); ok {
		return domain.OracleResponse{Issues: issues, Raw: raw, Structured: true}
	}

	if obj := extractJSONObject(trimmed); obj != "" {
		if issues, ok := decodeIssues(obj); ok {
			return domain.OracleResponse{Issues: issues, Raw: raw, Structured: true}
		}
	}

	return domain.OracleResponse{Raw: raw}
}

// decodeIssues decodes a JSON object and extracts its issue list.
func decodeIssues(s string) ([]domain.Issue, bool) {
	var env issueEnvelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return nil, false
	}
	if len(env.Issues) == 0 {
		return nil, true
	}

	var issues []domain.Issue
	if err := json.Unmarshal(env.Issues, &issues); err != nil {
		// Valid JSON object, but "issues" is not a list.
		return nil, true
	}
	for i := range issues {
		issues[i].Severity = domain.NormalizeSeverity(string(issues[i].Severity))
	}
	return issues, true
}

// extractJSONObject returns the first balanced {...} substring, honouring
// JSON string and escape rules. Returns "" when none exists.
func extractJSONObject(s string) string {
	for start := strings.IndexByte(s, '{'); start >= 0; {
		if end := balancedObjectEnd(s, start); end > start {
			return s[start : end+1]
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			return ""
		}
		start += 1 + next
	}
	return ""
}

// balancedObjectEnd scans from an opening brace and returns the index of
// its matching close brace, or -1.
func balancedObjectEnd(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
