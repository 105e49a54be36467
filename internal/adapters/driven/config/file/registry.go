package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// registryFile mirrors the on-disk registry layout:
//
//	[processes]
//	"Company Incorporation" = ["Articles of Association", ...]
type registryFile struct {
	Processes map[string][]string `toml:"processes"`
}

// LoadRequiredDocuments reads a required-documents registry from a TOML
// file. Processes present in the file replace the built-in defaults for
// that process; processes absent from the file keep their defaults.
func LoadRequiredDocuments(path string) (domain.RequiredDocuments, error) {
	registry := domain.DefaultRequiredDocuments()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var parsed registryFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}

	for process, docs := range parsed.Processes {
		if len(docs) == 0 {
			continue
		}
		registry[process] = docs
	}

	return registry, nil
}
