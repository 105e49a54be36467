package domain

// Paragraph is a single text unit within a document.
// Index is the position in the extracted sequence, zero-based and stable:
// annotation only ever appends runs, it never renumbers or reorders.
type Paragraph struct {
	// Index is the ordinal position within the extracted sequence.
	Index int

	// Text is the raw paragraph text.
	Text string
}

// Document is an ordered sequence of paragraphs extracted from a DOCX file.
// Identity is the source file name. Empty/whitespace-only paragraphs are
// dropped during extraction, so Index values here are post-filtering
// positions, not raw document positions.
type Document struct {
	// Name is the source file name, used to match issues to documents.
	Name string

	// Title is the human-readable title from document properties,
	// falling back to a cleaned-up file name.
	Title string

	// Paragraphs is the ordered, filtered paragraph sequence.
	Paragraphs []Paragraph
}

// Text joins all paragraphs into a single newline-separated string.
func (d Document) Text() string {
	if len(d.Paragraphs) == 0 {
		return ""
	}
	n := 0
	for _, p := range d.Paragraphs {
		n += len(p.Text) + 1
	}
	buf := make([]byte, 0, n)
	for i, p := range d.Paragraphs {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, p.Text...)
	}
	return string(buf)
}
