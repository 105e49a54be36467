package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDocumentFormat indicates the input bytes are not a readable DOCX
	// document. Fatal to that document's pipeline run only; a bad document
	// never aborts a multi-document batch.
	ErrDocumentFormat = errors.New("invalid document format")

	// ErrCorpusUnavailable indicates the reference directory is missing or
	// empty. Retrieval degrades to an empty context, never fatal.
	ErrCorpusUnavailable = errors.New("reference corpus unavailable")

	// ErrOracleParse indicates the oracle reply is neither valid JSON nor
	// contains an extractable JSON object. The pipeline degrades to zero
	// issues with raw-text passthrough for audit.
	ErrOracleParse = errors.New("oracle response not parseable")

	// ErrOracleUnavailable indicates the oracle is not configured (missing
	// API key or unknown provider). The AI analysis stage is disabled while
	// checklist verification and retrieval preview still run.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
