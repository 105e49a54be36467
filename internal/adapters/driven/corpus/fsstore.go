// Package corpus provides a filesystem-backed reference corpus store.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
	"github.com/LishigaT/adgm-corporate-agent/internal/logger"
)

// Ensure FSStore implements the interface.
var _ driven.CorpusStore = (*FSStore)(nil)

// FSStore loads plain-text reference files (*.txt) from a directory.
// Entries are sorted by file name so chunking is reproducible run to run.
type FSStore struct {
	dir string
}

// NewFSStore creates a corpus store reading from the given directory.
func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

// Load reads every *.txt file in the directory. A missing directory or a
// directory with no readable text files returns an empty corpus wrapped
// with domain.ErrCorpusUnavailable; individual unreadable files are
// skipped rather than failing the load.
func (s *FSStore) Load(_ context.Context) (domain.ReferenceCorpus, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCorpusUnavailable, s.dir)
	}

	var corpus domain.ReferenceCorpus
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			logger.Warn("skipping unreadable reference %s: %v", entry.Name(), err)
			continue
		}
		corpus = append(corpus, domain.ReferenceText{
			Name:    entry.Name(),
			Content: string(content),
		})
	}

	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: no reference texts in %s", domain.ErrCorpusUnavailable, s.dir)
	}

	sort.Slice(corpus, func(i, j int) bool { return corpus[i].Name < corpus[j].Name })
	logger.Info("loaded %d reference file(s) from %s", len(corpus), s.dir)
	return corpus, nil
}
