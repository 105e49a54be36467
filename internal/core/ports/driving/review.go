package driving

import (
	"context"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// InputFile is an uploaded document: raw DOCX bytes plus the file name
// that identifies it in checklists, issues, and the report.
type InputFile struct {
	// Name is the file name (e.g. "Articles of Association.docx").
	Name string

	// Content is the raw DOCX bytes.
	Content []byte
}

// ReviewOptions configures a review run.
type ReviewOptions struct {
	// Process overrides process detection when non-empty.
	Process string

	// TopK is the number of reference passages to retrieve (default 3).
	TopK int
}

// ReviewResult is the complete output of a review run.
type ReviewResult struct {
	// Report is the structured compliance report.
	Report domain.ComplianceReport

	// Annotated maps file name to the annotated DOCX bytes. Files that
	// failed extraction are absent.
	Annotated map[string][]byte

	// Context is the retrieval context used in the oracle prompt,
	// empty when the corpus was unavailable.
	Context string

	// RawOracleOutput is the unparsed oracle reply, preserved for audit.
	RawOracleOutput string

	// Notices are non-blocking degradation messages (skipped files,
	// unparseable oracle output, disabled AI stage).
	Notices []string
}

// ChecklistResult is the output of checklist verification alone.
type ChecklistResult struct {
	// Process is the detected (or overridden) process name.
	Process string

	// Required is the number of required documents, nil when the
	// process is unknown.
	Required *int

	// Missing lists required document names absent from the batch.
	Missing []string
}

// ReviewService runs the document compliance pipeline.
type ReviewService interface {
	// Review runs the full pipeline over a batch of files: extraction,
	// checklist verification, retrieval, oracle analysis, annotation.
	// Per-file failures are contained and surfaced as notices.
	Review(ctx context.Context, files []InputFile, opts ReviewOptions) (*ReviewResult, error)

	// Checklist runs process detection and checklist verification only.
	Checklist(filenames []string, processOverride string) ChecklistResult

	// RetrievePreview returns the top-matching reference passages for a
	// single document without calling the oracle.
	RetrievePreview(ctx context.Context, file InputFile, topK int) ([]domain.RetrievalResult, error)
}
