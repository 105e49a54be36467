package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// stubReportStore holds runs in memory for CLI tests.
type stubReportStore struct {
	runs []domain.ReportRun
}

func (s *stubReportStore) SaveRun(_ context.Context, run *domain.ReportRun) error {
	s.runs = append(s.runs, *run)
	return nil
}

func (s *stubReportStore) GetRun(_ context.Context, id string) (*domain.ReportRun, error) {
	for i := range s.runs {
		if s.runs[i].ID == id {
			return &s.runs[i], nil
		}
	}
	return nil, fmt.Errorf("run %s: %w", id, domain.ErrNotFound)
}

func (s *stubReportStore) ListRuns(_ context.Context, limit int) ([]domain.ReportRun, error) {
	if limit > 0 && limit < len(s.runs) {
		return s.runs[:limit], nil
	}
	return s.runs, nil
}

func (s *stubReportStore) Close() error { return nil }

func setupTestReportStore(runs ...domain.ReportRun) func() {
	oldStore := reportStore
	reportStore = &stubReportStore{runs: runs}
	return func() {
		reportStore = oldStore
	}
}

func TestRunsCmd_Use(t *testing.T) {
	assert.Equal(t, "runs", runsCmd.Use)
}

func TestRunsCmd_ListEmpty(t *testing.T) {
	cleanup := setupTestReportStore()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"runs", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No review runs recorded.")
}

func TestRunsCmd_ListShowsRuns(t *testing.T) {
	required := 5
	cleanup := setupTestReportStore(domain.ReportRun{
		ID:        "run-1",
		CreatedAt: "2026-08-29T10:00:00Z",
		Report: domain.ComplianceReport{
			Process:           domain.ProcessCompanyIncorporation,
			DocumentsUploaded: 2,
			RequiredDocuments: &required,
			IssuesFound: []domain.Issue{
				{Document: "a.docx", Issue: "Jurisdiction clause references UAE Federal Courts"},
			},
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"runs", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "run-1")
	assert.Contains(t, buf.String(), "Company Incorporation")
	assert.Contains(t, buf.String(), "1 issue(s)")
}

func TestRunsCmd_ShowRun(t *testing.T) {
	cleanup := setupTestReportStore(domain.ReportRun{
		ID:        "run-2",
		CreatedAt: "2026-08-29T11:00:00Z",
		Report: domain.ComplianceReport{
			Process:           domain.ProcessCompanyIncorporation,
			DocumentsUploaded: 1,
			MissingDocuments:  []string{"UBO Declaration Form"},
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"runs", "show", "run-2"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Run: run-2")
	assert.Contains(t, buf.String(), "UBO Declaration Form")
}

func TestRunsCmd_ShowUnknownRun(t *testing.T) {
	cleanup := setupTestReportStore()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"runs", "show", "missing"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load run")
}

func TestRunsCmd_StoreNotConfigured(t *testing.T) {
	oldStore := reportStore
	reportStore = nil
	defer func() {
		reportStore = oldStore
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"runs", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "report store not configured")
}
