package driven

import (
	"context"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// CorpusStore loads the reference corpus from storage.
// The corpus is loaded once at startup and treated as immutable.
type CorpusStore interface {
	// Load returns every reference text, ordered by name.
	// A missing or empty reference location returns an empty corpus
	// wrapped with domain.ErrCorpusUnavailable; callers degrade retrieval
	// to an empty context rather than failing.
	Load(ctx context.Context) (domain.ReferenceCorpus, error)
}
