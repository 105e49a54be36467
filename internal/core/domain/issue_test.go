package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSeverity(t *testing.T) {
	assert.Equal(t, SeverityHigh, NormalizeSeverity("High"))
	assert.Equal(t, SeverityHigh, NormalizeSeverity("  HIGH "))
	assert.Equal(t, SeverityMedium, NormalizeSeverity("medium"))
	assert.Equal(t, SeverityLow, NormalizeSeverity("low"))
	assert.Equal(t, SeverityReview, NormalizeSeverity(""))
	assert.Equal(t, SeverityReview, NormalizeSeverity("critical"))
}

func TestIssue_SearchKeyPrecedence(t *testing.T) {
	issue := Issue{
		Snippet: "snippet text",
		Section: "section heading",
		Text:    "alt text",
		Issue:   "description",
	}
	assert.Equal(t, "snippet text", issue.SearchKey())

	issue.Snippet = ""
	assert.Equal(t, "section heading", issue.SearchKey())

	issue.Section = "   "
	assert.Equal(t, "alt text", issue.SearchKey())

	issue.Text = ""
	assert.Equal(t, "description", issue.SearchKey())
}

func TestIssue_Locatable(t *testing.T) {
	assert.False(t, Issue{Document: "a.docx", Severity: SeverityHigh}.Locatable())
	assert.True(t, Issue{Issue: "missing clause"}.Locatable())
}

func TestIssue_EffectiveSeverity(t *testing.T) {
	assert.Equal(t, SeverityReview, Issue{}.EffectiveSeverity())
	assert.Equal(t, SeverityHigh, Issue{Severity: "high"}.EffectiveSeverity())
	assert.Equal(t, SeverityReview, Issue{Severity: "??"}.EffectiveSeverity())
}

func TestComplianceReport_JSONShape(t *testing.T) {
	required := 5
	report := ComplianceReport{
		Process:           ProcessCompanyIncorporation,
		DocumentsUploaded: 2,
		RequiredDocuments: &required,
		MissingDocuments:  []string{"UBO Declaration Form"},
		IssuesFound:       []Issue{},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "process")
	assert.Contains(t, decoded, "documents_uploaded")
	assert.Contains(t, decoded, "required_documents")
	assert.Contains(t, decoded, "missing_documents")
	assert.Contains(t, decoded, "issues_found")
	assert.Equal(t, float64(5), decoded["required_documents"])
}

func TestComplianceReport_UnknownProcessRequiredIsNull(t *testing.T) {
	report := ComplianceReport{Process: ProcessUnknown, DocumentsUploaded: 1}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"required_documents":null`)
}

func TestChunk_Label(t *testing.T) {
	c := Chunk{Source: "regulations.txt", Seq: 3}
	assert.Equal(t, "regulations.txt::chunk3", c.Label())
}

func TestDefaultRequiredDocuments_Incorporation(t *testing.T) {
	registry := DefaultRequiredDocuments()

	docs, ok := registry[ProcessCompanyIncorporation]
	require.True(t, ok)
	assert.Len(t, docs, 5)
	assert.Equal(t, "Articles of Association", docs[0])
}
