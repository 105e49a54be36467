package services

import (
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// processKeywords maps filename substrings to the process they indicate.
// Detection is a deliberately simple heuristic; any classifier returning a
// registry-known process name can replace it.
var processKeywords = []string{"articles", "memorandum", "incorporation", "aoa", "moa"}

// DetectProcess guesses the business process from the batch's file names.
// Returns domain.ProcessUnknown when nothing matches.
func DetectProcess(filenames []string) string {
	joined := strings.ToLower(strings.Join(filenames, " "))
	for _, kw := range processKeywords {
		if strings.Contains(joined, kw) {
			return domain.ProcessCompanyIncorporation
		}
	}
	return domain.ProcessUnknown
}

// missingDocuments returns the required documents absent from the batch,
// in registry order. Matching is case-insensitive containment of the
// display name in the joined file name list.
func missingDocuments(required []string, filenames []string) []string {
	joined := strings.ToLower(strings.Join(filenames, " "))
	missing := make([]string, 0, len(required))
	for _, name := range required {
		if !strings.Contains(joined, strings.ToLower(name)) {
			missing = append(missing, name)
		}
	}
	return missing
}
