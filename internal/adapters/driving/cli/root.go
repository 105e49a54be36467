// Package cli implements the command-line interface for the ADGM
// corporate agent. Commands are thin adapters: they parse flags, read
// input files, and delegate to the core review service.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driving"
	"github.com/LishigaT/adgm-corporate-agent/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	reviewService driving.ReviewService
	reportStore   driven.ReportStore
	configStore   driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "adgm-agent",
	Short: "ADGM document compliance assistant",
	Long: `adgm-agent reviews corporate filing documents against Abu Dhabi Global
Market (ADGM) reference regulations.

It verifies required-document checklists, retrieves relevant reference
passages, flags compliance issues with an AI oracle, and writes annotated
copies of the reviewed documents.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose pipeline logging")
}

// SetServices injects the service dependencies. Called by main after
// wiring the adapters; nil services disable the commands that need them.
func SetServices(review driving.ReviewService, reports driven.ReportStore, config driven.ConfigStore) {
	reviewService = review
	reportStore = reports
	configStore = config
}

// SetVersion sets the version string displayed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
