// Package prompt builds the compliance-analysis prompt shared by the
// remote oracle adapters.
package prompt

import (
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
)

// instructions is the fixed task framing. The oracle is asked to return
// only a JSON object; the core still applies its own extraction policy in
// case the model wraps the object in prose.
var instructions = []string{
	"You are an ADGM Corporate Agent compliance assistant.",
	"You will be provided with: (A) Relevant ADGM reference passages, and (B) the user's uploaded documents.",
	"Your task: analyze the documents and return a JSON object with a key 'issues' mapping to a list where each element has the fields:",
	" - document: filename where the issue was found",
	" - snippet: a short excerpt of the text that is the problem (or the exact clause if possible)",
	" - section: optional (human-readable heading) if available",
	" - issue: description of the compliance problem",
	" - severity: one of [High, Medium, Low, Review]",
	" - suggestion: recommended corrected clause or remediation",
	"Return ONLY valid JSON. Example:",
	`{"issues":[{"document":"Articles.docx","snippet":"Clause X ...","section":"Jurisdiction","issue":"Does not reference ADGM","severity":"High","suggestion":"Replace jurisdiction clause with: ..."}]}`,
	"",
}

// Build assembles the full prompt: instructions, optional reference
// context, then every document under a file name heading in request order.
func Build(req driven.AnalysisRequest) string {
	parts := make([]string, 0, len(instructions)+len(req.DocumentOrder)*3+4)
	parts = append(parts, instructions...)

	if req.Context != "" {
		parts = append(parts,
			"=== Relevant ADGM reference passages ===",
			req.Context,
			"=== End of references ===")
	}

	parts = append(parts, "=== Documents to analyze ===")
	for _, name := range req.DocumentOrder {
		text, ok := req.Documents[name]
		if !ok {
			continue
		}
		parts = append(parts, "--- FILENAME: "+name+" ---\n", text, "\n")
	}
	return strings.Join(parts, "\n")
}
