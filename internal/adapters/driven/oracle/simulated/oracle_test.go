package simulated

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
)

func TestAnalyze_FlagsJurisdictionClause(t *testing.T) {
	o := New()

	raw, err := o.Analyze(context.Background(), driven.AnalysisRequest{
		Documents: map[string]string{
			"aoa.docx": "Preamble\nJurisdiction shall be UAE Federal Courts\nEnd",
		},
		DocumentOrder: []string{"aoa.docx"},
	})
	require.NoError(t, err)

	var parsed struct {
		Issues []domain.Issue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	require.NotEmpty(t, parsed.Issues)

	issue := parsed.Issues[0]
	assert.Equal(t, "aoa.docx", issue.Document)
	assert.Equal(t, "Jurisdiction shall be UAE Federal Courts", issue.Snippet)
	assert.Equal(t, domain.SeverityHigh, issue.Severity)
}

func TestAnalyze_CleanDocumentYieldsNoIssues(t *testing.T) {
	o := New()

	raw, err := o.Analyze(context.Background(), driven.AnalysisRequest{
		Documents:     map[string]string{"clean.docx": "Disputes resolved by ADGM Courts"},
		DocumentOrder: []string{"clean.docx"},
	})
	require.NoError(t, err)

	var parsed struct {
		Issues []domain.Issue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	assert.Empty(t, parsed.Issues)
}

func TestAnalyze_PlaceholderText(t *testing.T) {
	o := New()

	raw, err := o.Analyze(context.Background(), driven.AnalysisRequest{
		Documents:     map[string]string{"moa.docx": "Share capital: to be determined"},
		DocumentOrder: []string{"moa.docx"},
	})
	require.NoError(t, err)

	var parsed struct {
		Issues []domain.Issue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	require.Len(t, parsed.Issues, 1)
	assert.Equal(t, domain.SeverityMedium, parsed.Issues[0].Severity)
}

func TestPingAndName(t *testing.T) {
	o := New()
	assert.NoError(t, o.Ping(context.Background()))
	assert.Equal(t, "simulated", o.Name())
	assert.NoError(t, o.Close())
}
