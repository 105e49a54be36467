package cli

import (
	"context"
	"errors"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driving"
)

// stubReviewService returns canned results for CLI tests.
type stubReviewService struct {
	reviewResult *driving.ReviewResult
	reviewErr    error
}

func (s *stubReviewService) Review(_ context.Context, files []driving.InputFile, _ driving.ReviewOptions) (*driving.ReviewResult, error) {
	if s.reviewErr != nil {
		return nil, s.reviewErr
	}
	if s.reviewResult != nil {
		return s.reviewResult, nil
	}
	required := 5
	return &driving.ReviewResult{
		Report: domain.ComplianceReport{
			Process:           domain.ProcessCompanyIncorporation,
			DocumentsUploaded: len(files),
			RequiredDocuments: &required,
			MissingDocuments:  []string{"Memorandum of Association"},
		},
		Annotated: map[string][]byte{},
	}, nil
}

func (s *stubReviewService) Checklist(filenames []string, processOverride string) driving.ChecklistResult {
	process := processOverride
	if process == "" {
		process = domain.ProcessCompanyIncorporation
	}
	required := 5
	return driving.ChecklistResult{
		Process:  process,
		Required: &required,
		Missing:  []string{"UBO Declaration Form"},
	}
}

func (s *stubReviewService) RetrievePreview(_ context.Context, _ driving.InputFile, _ int) ([]domain.RetrievalResult, error) {
	return []domain.RetrievalResult{
		{Source: "adgm-companies-regulations.txt::chunk1", Content: "Registered office requirements.", Score: 0.42},
	}, nil
}

// stubReviewServiceError fails every operation.
type stubReviewServiceError struct {
	stubReviewService
}

func (s *stubReviewServiceError) Review(context.Context, []driving.InputFile, driving.ReviewOptions) (*driving.ReviewResult, error) {
	return nil, errors.New("stub failure")
}

// setupTestServices installs stub services and returns a cleanup func.
func setupTestServices() func() {
	oldReview := reviewService
	reviewService = &stubReviewService{}
	return func() {
		reviewService = oldReview
	}
}
