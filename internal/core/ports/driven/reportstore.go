package driven

import (
	"context"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// ReportStore persists review runs for audit history.
type ReportStore interface {
	// SaveRun stores a completed review run.
	SaveRun(ctx context.Context, run *domain.ReportRun) error

	// GetRun retrieves a run by ID. Returns domain.ErrNotFound when absent.
	GetRun(ctx context.Context, id string) (*domain.ReportRun, error)

	// ListRuns returns stored runs, most recent first.
	ListRuns(ctx context.Context, limit int) ([]domain.ReportRun, error)

	// Close releases resources.
	Close() error
}
