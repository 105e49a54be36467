// Package locate maps free-text snippets back onto document paragraphs.
//
// Oracle-produced snippets are rarely verbatim quotes of the source
// document (paraphrasing, truncation, formatting differences), so an
// exact containment match is attempted first for precision, with a
// permissive keyword fallback that trades precision for recall.
package locate

import (
	"regexp"
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// maxFallbackWords caps the significant words taken from a snippet.
const maxFallbackWords = 6

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	wordRE       = regexp.MustCompile(`\w{4,}`)
)

// Normalize collapses whitespace runs to single spaces and lower-cases,
// so containment checks ignore case and formatting differences.
func Normalize(s string) string {
	return strings.ToLower(whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " "))
}

// SignificantWords extracts up to maxFallbackWords word-character tokens of
// length >= 4 from the snippet, lower-cased, in original order.
func SignificantWords(snippet string) []string {
	words := wordRE.FindAllString(snippet, -1)
	if len(words) > maxFallbackWords {
		words = words[:maxFallbackWords]
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// Resolve finds the paragraphs a snippet refers to and returns their
// indices in ascending order.
//
// Phase 1 returns every paragraph whose normalized text contains the
// normalized snippet as a substring. Only when phase 1 yields nothing,
// phase 2 scans for the first paragraph containing any significant word
// of the snippet and returns at most that one match.
//
// An empty result is not an error: the issue is simply un-locatable and
// no annotation is produced for it.
func Resolve(snippet string, paragraphs []domain.Paragraph) []int {
	norm := Normalize(snippet)
	if norm == "" {
		return nil
	}

	var matches []int
	for _, p := range paragraphs {
		paraNorm := Normalize(p.Text)
		if paraNorm == "" {
			continue
		}
		if strings.Contains(paraNorm, norm) {
			matches = append(matches, p.Index)
		}
	}
	if len(matches) > 0 {
		return matches
	}

	// Fallback: first paragraph sharing any distinctive vocabulary.
	words := SignificantWords(snippet)
	if len(words) == 0 {
		return nil
	}
	for _, p := range paragraphs {
		paraNorm := Normalize(p.Text)
		if paraNorm == "" {
			continue
		}
		for _, w := range words {
			if strings.Contains(paraNorm, w) {
				return []int{p.Index}
			}
		}
	}
	return nil
}
