// Package docx reads and annotates DOCX documents.
//
// A DOCX file is a ZIP archive whose main text lives in word/document.xml
// as a sequence of paragraphs (<w:p>) holding runs (<w:r>) of text (<w:t>).
// Extraction parses that XML into an ordered paragraph sequence; annotation
// rewrites document.xml in place, appending runs to matched paragraphs and
// copying every other archive entry byte-for-byte.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

const documentEntry = "word/document.xml"

// Extract parses a DOCX byte stream into an ordered paragraph sequence.
// Paragraphs whose trimmed text is empty are dropped, and the returned
// indices are positions in the filtered sequence. Unreadable input fails
// with domain.ErrDocumentFormat.
func Extract(name string, content []byte) (*domain.Document, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a DOCX archive", domain.ErrDocumentFormat, name)
	}

	raw, err := readEntry(reader, documentEntry)
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no readable %s", domain.ErrDocumentFormat, name, documentEntry)
	}

	texts, err := paragraphTexts(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDocumentFormat, name, err)
	}

	doc := &domain.Document{
		Name:  name,
		Title: extractTitle(reader, name),
	}
	for _, text := range texts {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		doc.Paragraphs = append(doc.Paragraphs, domain.Paragraph{
			Index: len(doc.Paragraphs),
			Text:  trimmed,
		})
	}
	return doc, nil
}

// readEntry reads a single archive entry in full.
func readEntry(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("entry %s not found", name)
}

// documentXML mirrors the parts of word/document.xml we read.
type documentXML struct {
	Body struct {
		Paragraphs []paragraphXML `xml:"p"`
	} `xml:"body"`
}

type paragraphXML struct {
	Runs []runXML `xml:"r"`
}

type runXML struct {
	Text []textXML `xml:"t"`
}

type textXML struct {
	Content string `xml:",chardata"`
}

// paragraphTexts returns the raw text of every paragraph, empty ones
// included, in document order.
func paragraphTexts(raw []byte) ([]string, error) {
	var doc documentXML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	texts := make([]string, len(doc.Body.Paragraphs))
	for i, para := range doc.Body.Paragraphs {
		var b strings.Builder
		for _, run := range para.Runs {
			for _, t := range run.Text {
				b.WriteString(t.Content)
			}
		}
		texts[i] = b.String()
	}
	return texts, nil
}

// coreXML mirrors docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

// extractTitle reads the title from docProps/core.xml, falling back to a
// cleaned-up file name.
func extractTitle(reader *zip.Reader, name string) string {
	if raw, err := readEntry(reader, "docProps/core.xml"); err == nil {
		var core coreXML
		if err := xml.Unmarshal(raw, &core); err == nil && core.Title != "" {
			return strings.TrimSpace(core.Title)
		}
	}

	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}
