package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	runsLimit int
	runsJSON  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect review run history",
	Long:  `View previously completed review runs and their stored reports.`,
	RunE:  runRunsList,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent review runs",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a stored review run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	runsCmd.PersistentFlags().BoolVar(&runsJSON, "json", false, "output as JSON")
	runsListCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "maximum number of runs")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if reportStore == nil {
		return errors.New("report store not configured")
	}

	runs, err := reportStore.ListRuns(context.Background(), runsLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if runsJSON {
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal runs: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(runs) == 0 {
		cmd.Println("No review runs recorded.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  %s  %d issue(s)\n",
			run.ID, run.CreatedAt, run.Report.Process, len(run.Report.IssuesFound))
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	if reportStore == nil {
		return errors.New("report store not configured")
	}

	run, err := reportStore.GetRun(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	if runsJSON {
		data, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal run: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Run: %s\n", run.ID)
	cmd.Printf("Created: %s\n", run.CreatedAt)
	cmd.Printf("Process: %s\n", run.Report.Process)
	cmd.Printf("Documents uploaded: %d\n", run.Report.DocumentsUploaded)
	if len(run.Report.MissingDocuments) > 0 {
		cmd.Println("Missing documents:")
		for _, doc := range run.Report.MissingDocuments {
			cmd.Printf("  - %s\n", doc)
		}
	}
	cmd.Printf("Issues found: %d\n", len(run.Report.IssuesFound))
	for i, issue := range run.Report.IssuesFound {
		cmd.Printf("  [%d] %s (%s): %s\n", i+1, issue.Document, issue.EffectiveSeverity(), issue.Issue)
	}
	return nil
}
