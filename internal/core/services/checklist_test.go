package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

func TestDetectProcess_ArticlesFilename(t *testing.T) {
	process := DetectProcess([]string{"Articles of Association.docx"})
	assert.Equal(t, domain.ProcessCompanyIncorporation, process)
}

func TestDetectProcess_Abbreviations(t *testing.T) {
	assert.Equal(t, domain.ProcessCompanyIncorporation, DetectProcess([]string{"company-aoa-final.docx"}))
	assert.Equal(t, domain.ProcessCompanyIncorporation, DetectProcess([]string{"MoA v2.docx"}))
}

func TestDetectProcess_CaseInsensitive(t *testing.T) {
	process := DetectProcess([]string{"MEMORANDUM.DOCX"})
	assert.Equal(t, domain.ProcessCompanyIncorporation, process)
}

func TestDetectProcess_AnyFileInBatch(t *testing.T) {
	process := DetectProcess([]string{"notes.docx", "incorporation_form.docx"})
	assert.Equal(t, domain.ProcessCompanyIncorporation, process)
}

func TestDetectProcess_NoMatch(t *testing.T) {
	process := DetectProcess([]string{"employment_contract.docx", "invoice.docx"})
	assert.Equal(t, domain.ProcessUnknown, process)
}

func TestDetectProcess_EmptyBatch(t *testing.T) {
	assert.Equal(t, domain.ProcessUnknown, DetectProcess(nil))
}

func TestChecklist_KnownProcess(t *testing.T) {
	svc := NewReviewService(nil, nil)

	result := svc.Checklist([]string{"Articles of Association.docx"}, "")

	assert.Equal(t, domain.ProcessCompanyIncorporation, result.Process)
	if assert.NotNil(t, result.Required) {
		assert.Equal(t, 5, *result.Required)
	}
	assert.Equal(t, []string{
		"Memorandum of Association",
		"Incorporation Application Form",
		"UBO Declaration Form",
		"Register of Members and Directors",
	}, result.Missing)
}

func TestChecklist_AllPresent(t *testing.T) {
	svc := NewReviewService(nil, nil)

	result := svc.Checklist([]string{
		"Articles of Association.docx",
		"Memorandum of Association.docx",
		"Incorporation Application Form.docx",
		"UBO Declaration Form.docx",
		"Register of Members and Directors.docx",
	}, "")

	assert.Empty(t, result.Missing)
}

func TestChecklist_UnknownProcess(t *testing.T) {
	svc := NewReviewService(nil, nil)

	result := svc.Checklist([]string{"random.docx"}, "")

	assert.Equal(t, domain.ProcessUnknown, result.Process)
	assert.Nil(t, result.Required)
	assert.Nil(t, result.Missing)
}

func TestChecklist_ProcessOverride(t *testing.T) {
	svc := NewReviewService(nil, nil)

	result := svc.Checklist([]string{"random.docx"}, domain.ProcessCompanyIncorporation)

	assert.Equal(t, domain.ProcessCompanyIncorporation, result.Process)
	if assert.NotNil(t, result.Required) {
		assert.Equal(t, 5, *result.Required)
	}
	assert.Len(t, result.Missing, 5)
}

func TestChecklist_CaseInsensitiveMatching(t *testing.T) {
	svc := NewReviewService(nil, nil)

	result := svc.Checklist([]string{"articles of association (signed).docx"}, "")

	assert.NotContains(t, result.Missing, "Articles of Association")
}

func TestChecklist_CustomRegistry(t *testing.T) {
	registry := domain.RequiredDocuments{
		"Branch Registration": {"Parent Company Certificate", "Board Resolution"},
	}
	svc := NewReviewService(nil, nil, WithRegistry(registry))

	result := svc.Checklist([]string{"Board Resolution.docx"}, "Branch Registration")

	if assert.NotNil(t, result.Required) {
		assert.Equal(t, 2, *result.Required)
	}
	assert.Equal(t, []string{"Parent Company Certificate"}, result.Missing)
}

func TestMissingDocuments_PreservesRegistryOrder(t *testing.T) {
	required := []string{"Alpha", "Beta", "Gamma"}

	missing := missingDocuments(required, []string{"beta.docx"})

	assert.Equal(t, []string{"Alpha", "Gamma"}, missing)
}
