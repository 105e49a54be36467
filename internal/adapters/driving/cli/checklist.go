package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	checklistProcess string
	checklistJSON    bool
)

var checklistCmd = &cobra.Command{
	Use:   "checklist [files...]",
	Short: "Verify the required-document checklist",
	Long: `Detects the legal process from the supplied file names and reports
which required documents are missing, without reading file contents or
calling the AI oracle.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChecklist,
}

func init() {
	checklistCmd.Flags().StringVar(&checklistProcess, "process", "", "override process detection")
	checklistCmd.Flags().BoolVar(&checklistJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(cmd *cobra.Command, args []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	names := make([]string, 0, len(args))
	for _, path := range args {
		names = append(names, filepath.Base(path))
	}

	result := reviewService.Checklist(names, checklistProcess)

	if checklistJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal checklist: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Process: %s\n", result.Process)
	if result.Required == nil {
		cmd.Println("Required documents: unknown process")
		return nil
	}

	cmd.Printf("Required documents: %d\n", *result.Required)
	if len(result.Missing) == 0 {
		cmd.Println("Missing documents: none")
		return nil
	}

	cmd.Println("Missing documents:")
	for _, doc := range result.Missing {
		cmd.Printf("  - %s\n", doc)
	}
	return nil
}
