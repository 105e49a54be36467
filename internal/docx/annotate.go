package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
	"github.com/LishigaT/adgm-corporate-agent/internal/locate"
)

// annotationFormat is the fixed inline annotation format appended to
// matched paragraphs. The leading space separates it from original text.
const annotationFormat = " [ADGM_ANNOTATION | Severity: %s | Suggestion: %s]"

// AnnotationText renders the annotation string for an issue.
func AnnotationText(issue domain.Issue) string {
	return fmt.Sprintf(annotationFormat, issue.EffectiveSeverity(), issue.Suggestion)
}

// Annotate produces an annotated copy of a DOCX document. For every issue,
// the issue's search key is resolved against the live paragraph sequence,
// and each matched paragraph gets one new italic run appended per issue.
// Annotations accumulate; original runs, text, and paragraph order are
// never touched, and all other archive entries are copied byte-for-byte.
//
// Issues without a locatable text field, and issues whose key matches no
// paragraph, are skipped silently; that is a missed annotation, not an
// error. The input slice is not modified and the input bytes are not
// mutated.
func Annotate(content []byte, issues []domain.Issue) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a DOCX archive", domain.ErrDocumentFormat)
	}

	raw, err := readEntry(reader, documentEntry)
	if err != nil {
		return nil, fmt.Errorf("%w: no readable %s", domain.ErrDocumentFormat, documentEntry)
	}

	segments := splitParagraphs(raw)
	live := make([]domain.Paragraph, len(segments))
	for i, seg := range segments {
		live[i] = domain.Paragraph{Index: i, Text: segmentText(raw[seg.start:seg.end])}
	}

	// Collect insertions first so multiple issues resolving to the same
	// paragraph each append their own run, in issue order.
	insertions := make(map[int][]string)
	for _, issue := range issues {
		if !issue.Locatable() {
			continue
		}
		for _, idx := range locate.Resolve(issue.SearchKey(), live) {
			insertions[idx] = append(insertions[idx], annotationRun(AnnotationText(issue)))
		}
	}

	annotated := applyInsertions(raw, segments, insertions)
	return rewriteArchive(reader, annotated)
}

// segment is the byte range of one <w:p> element within document.xml.
type segment struct {
	start, end  int
	selfClosing bool
}

// splitParagraphs locates every top-level <w:p> element in document
// order. Body paragraphs mostly follow each other flat, but a text box
// (<w:txbxContent>) nests whole paragraphs inside a run, so the scan
// tracks nesting depth and a nested paragraph stays part of its outer
// segment.
func splitParagraphs(raw []byte) []segment {
	const closeTag = "</w:p>"

	var segments []segment
	depth := 0
	start := 0
	pos := 0
	for {
		open := indexParagraphOpen(raw, pos)
		cls := bytes.Index(raw[pos:], []byte(closeTag))
		if cls >= 0 {
			cls += pos
		}

		if depth == 0 {
			if open < 0 {
				break
			}
			tagEnd := bytes.IndexByte(raw[open:], '>')
			if tagEnd < 0 {
				break
			}
			tagEnd += open
			if raw[tagEnd-1] == '/' {
				segments = append(segments, segment{start: open, end: tagEnd + 1, selfClosing: true})
				pos = tagEnd + 1
				continue
			}
			start = open
			depth = 1
			pos = tagEnd + 1
			continue
		}

		if cls < 0 {
			// Unclosed paragraph; drop the partial segment.
			break
		}
		if open >= 0 && open < cls {
			tagEnd := bytes.IndexByte(raw[open:], '>')
			if tagEnd < 0 {
				break
			}
			tagEnd += open
			if raw[tagEnd-1] != '/' {
				depth++
			}
			pos = tagEnd + 1
			continue
		}

		depth--
		pos = cls + len(closeTag)
		if depth == 0 {
			segments = append(segments, segment{start: start, end: pos})
		}
	}
	return segments
}

// indexParagraphOpen returns the index of the next <w:p open tag at or
// after pos, skipping <w:pPr>, <w:pict> and other elements sharing the
// prefix. Returns -1 when none remain.
func indexParagraphOpen(raw []byte, pos int) int {
	const openPrefix = "<w:p"
	for {
		i := bytes.Index(raw[pos:], []byte(openPrefix))
		if i < 0 {
			return -1
		}
		i += pos
		after := i + len(openPrefix)
		if after >= len(raw) {
			return -1
		}
		switch raw[after] {
		case '>', ' ', '/', '\t', '\n', '\r':
			return i
		}
		pos = after
	}
}

var textRunRE = regexp.MustCompile(`(?s)<w:t(?:\s[^>]*)?>(.*?)</w:t>`)

var entityDecoder = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// segmentText concatenates the text runs of one paragraph element.
func segmentText(seg []byte) string {
	matches := textRunRE.FindAllSubmatch(seg, -1)
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range matches {
		b.WriteString(entityDecoder.Replace(string(m[1])))
	}
	return b.String()
}

var runEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// annotationRun builds an italic text run so machine-added text is
// visually distinct from the original.
func annotationRun(text string) string {
	return `<w:r><w:rPr><w:i/></w:rPr><w:t xml:space="preserve">` +
		runEscaper.Replace(text) + `</w:t></w:r>`
}

// applyInsertions rebuilds document.xml with annotation runs inserted
// before the close tag of each matched paragraph. Everything outside
// the insertion points is preserved verbatim.
func applyInsertions(raw []byte, segments []segment, insertions map[int][]string) []byte {
	if len(insertions) == 0 {
		return raw
	}

	const closeTag = "</w:p>"
	var out bytes.Buffer
	out.Grow(len(raw) + 256*len(insertions))

	prev := 0
	for i, seg := range segments {
		runs, ok := insertions[i]
		// A self-closing <w:p/> holds no text, so it never resolves.
		if !ok || seg.selfClosing {
			continue
		}
		insertAt := seg.end - len(closeTag)
		out.Write(raw[prev:insertAt])
		for _, run := range runs {
			out.WriteString(run)
		}
		prev = insertAt
	}
	out.Write(raw[prev:])
	return out.Bytes()
}

// rewriteArchive copies every archive entry, substituting the rebuilt
// document.xml.
func rewriteArchive(reader *zip.Reader, documentXML []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, file := range reader.File {
		header := file.FileHeader
		fw, err := w.CreateHeader(&header)
		if err != nil {
			return nil, fmt.Errorf("rewrite %s: %w", file.Name, err)
		}

		if file.Name == documentEntry {
			if _, err := fw.Write(documentXML); err != nil {
				return nil, fmt.Errorf("write %s: %w", file.Name, err)
			}
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", file.Name, err)
		}
		_, err = io.Copy(fw, rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("copy %s: %w", file.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
