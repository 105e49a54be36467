// Command adgm-agent reviews corporate filing documents against ADGM
// reference regulations.
package main

import (
	"errors"
	"fmt"
	"os"

	configfile "github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/config/file"
	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/corpus"
	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/oracle"
	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/storage/sqlite"
	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driving/cli"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/services"
	"github.com/LishigaT/adgm-corporate-agent/internal/logger"
	"github.com/LishigaT/adgm-corporate-agent/internal/retrieval"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to initialize config store: %w", err)
	}

	// Oracle. A missing key or unreachable provider degrades to a
	// keyless run instead of blocking the CLI.
	var oracleAdapter driven.Oracle
	o, err := buildOracle(configStore)
	switch {
	case err == nil:
		oracleAdapter = o
	case errors.Is(err, domain.ErrOracleUnavailable):
		logger.Warn("oracle unavailable: %v", err)
	default:
		return fmt.Errorf("failed to initialize oracle: %w", err)
	}

	corpusStore := corpus.NewFSStore(referencesDir(configStore))

	reportStore, err := sqlite.NewReportStore("")
	if err != nil {
		return fmt.Errorf("failed to initialize report store: %w", err)
	}
	defer reportStore.Close()

	opts := append(serviceOptions(configStore), services.WithReportStore(reportStore))
	reviewService := services.NewReviewService(corpusStore, oracleAdapter, opts...)

	cli.SetVersion(version)
	cli.SetServices(reviewService, reportStore, configStore)

	defer func() {
		if oracleAdapter != nil {
			oracleAdapter.Close()
		}
	}()

	return cli.Execute()
}

// buildOracle creates the configured oracle provider. The API key may
// come from config or from the environment.
func buildOracle(config driven.ConfigStore) (driven.Oracle, error) {
	apiKey := config.GetString(configfile.KeyOracleAPIKey)
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return oracle.Create(oracle.Settings{
		Provider: config.GetString(configfile.KeyOracleProvider),
		APIKey:   apiKey,
		Model:    config.GetString(configfile.KeyOracleModel),
	})
}

// serviceOptions translates retrieval and registry configuration into
// review service options. Unset keys keep the built-in defaults; a
// registry file that fails to load is reported and skipped.
func serviceOptions(config driven.ConfigStore) []services.Option {
	var opts []services.Option

	if k := config.GetInt(configfile.KeyTopK); k > 0 {
		opts = append(opts, services.WithTopK(k))
	}

	size := config.GetInt(configfile.KeyChunkSize)
	overlap := config.GetInt(configfile.KeyChunkOverlap)
	if size > 0 || overlap > 0 {
		var chunkOpts []retrieval.ChunkerOption
		if size > 0 {
			chunkOpts = append(chunkOpts, retrieval.WithChunkSize(size))
		}
		if overlap > 0 {
			chunkOpts = append(chunkOpts, retrieval.WithOverlap(overlap))
		}
		opts = append(opts, services.WithChunker(retrieval.NewChunker(chunkOpts...)))
	}

	if path := config.GetString(configfile.KeyRegistryFile); path != "" {
		registry, err := configfile.LoadRequiredDocuments(path)
		if err != nil {
			logger.Warn("required-documents registry not loaded: %v", err)
		} else {
			opts = append(opts, services.WithRegistry(registry))
		}
	}

	return opts
}

// referencesDir resolves the reference corpus directory: config first,
// then the local "references" directory.
func referencesDir(config driven.ConfigStore) string {
	if dir := config.GetString(configfile.KeyReferencesDir); dir != "" {
		return dir
	}
	return "references"
}
