package domain

import "fmt"

// ReferenceText is a single named entry in the reference corpus.
type ReferenceText struct {
	// Name is the source file name (e.g. "adgm_companies_regulations.txt").
	Name string

	// Content is the full plain text.
	Content string
}

// ReferenceCorpus is the ordered set of reference texts, loaded once at
// startup and immutable for the lifetime of a session. Order is the
// load order (sorted by name) so chunking is reproducible.
type ReferenceCorpus []ReferenceText

// Chunk is a fixed-size overlapping word-window slice of a reference text.
// Regenerating chunks from the same corpus with the same parameters yields
// an identical sequence.
type Chunk struct {
	// Source is the name of the reference text this chunk came from.
	Source string

	// Seq is the 1-based chunk number within its source.
	Seq int

	// Content is the chunk text.
	Content string
}

// Label returns the combined source identity used in retrieval results
// and prompt context, e.g. "regulations.txt::chunk3".
func (c Chunk) Label() string {
	return fmt.Sprintf("%s::chunk%d", c.Source, c.Seq)
}

// RetrievalResult is a scored chunk returned by the relevance retriever.
type RetrievalResult struct {
	// Source is the chunk label (file name plus chunk number).
	Source string

	// Content is the chunk text.
	Content string

	// Score is the cosine similarity against the query, in (0, 1].
	Score float64
}
