package domain

// Well-known process names.
const (
	// ProcessCompanyIncorporation is the incorporation filing process.
	ProcessCompanyIncorporation = "Company Incorporation"

	// ProcessUnknown is returned when no process could be detected.
	ProcessUnknown = "Unknown"
)

// RequiredDocuments maps a process name to the ordered list of required
// document display names. The registry is consumed by process detection
// and checklist verification; the core never mutates it.
type RequiredDocuments map[string][]string

// DefaultRequiredDocuments returns the built-in registry.
// Callers may extend or replace it from configuration.
func DefaultRequiredDocuments() RequiredDocuments {
	return RequiredDocuments{
		ProcessCompanyIncorporation: {
			"Articles of Association",
			"Memorandum of Association",
			"Incorporation Application Form",
			"UBO Declaration Form",
			"Register of Members and Directors",
		},
	}
}
