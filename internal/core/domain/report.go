package domain

// ComplianceReport is the structured output of a review run.
// Field names match the published JSON report format exactly.
type ComplianceReport struct {
	// Process is the detected business process name.
	Process string `json:"process"`

	// DocumentsUploaded is the number of documents in the batch.
	DocumentsUploaded int `json:"documents_uploaded"`

	// RequiredDocuments is the number of documents the detected process
	// requires. Nil when the process is unknown.
	RequiredDocuments *int `json:"required_documents"`

	// MissingDocuments lists required document names absent from the batch,
	// in registry order.
	MissingDocuments []string `json:"missing_documents"`

	// IssuesFound lists every issue the oracle reported, including issues
	// that could not be located for annotation.
	IssuesFound []Issue `json:"issues_found"`
}

// ReportRun is a persisted review run for audit history.
type ReportRun struct {
	// ID is the unique run identifier.
	ID string

	// Report is the compliance report produced by the run.
	Report ComplianceReport

	// RawOracleOutput is the unparsed oracle reply, kept for audit.
	RawOracleOutput string

	// CreatedAt is the run timestamp in RFC 3339 form.
	CreatedAt string
}
