package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driving"
)

var (
	reviewProcess string
	reviewTopK    int
	reviewOutDir  string
	reviewReport  string
	reviewJSON    bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [files...]",
	Short: "Review documents for ADGM compliance",
	Long: `Runs the full compliance pipeline over a batch of DOCX files:
document extraction, checklist verification, reference retrieval,
AI analysis, and inline annotation.

Annotated copies are written next to the inputs (or into --out) with a
"-reviewed" suffix. The structured report is printed or written to
--report as JSON.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&reviewProcess, "process", "", "override process detection (e.g. \"Company Incorporation\")")
	reviewCmd.Flags().IntVarP(&reviewTopK, "top-k", "k", 0, "number of reference passages to retrieve")
	reviewCmd.Flags().StringVarP(&reviewOutDir, "out", "o", "", "directory for annotated output files")
	reviewCmd.Flags().StringVar(&reviewReport, "report", "", "write the JSON report to this path")
	reviewCmd.Flags().BoolVar(&reviewJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	files, err := readInputFiles(args)
	if err != nil {
		return err
	}

	opts := driving.ReviewOptions{
		Process: reviewProcess,
		TopK:    reviewTopK,
	}

	result, err := reviewService.Review(context.Background(), files, opts)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	if err := writeAnnotated(cmd, args, result); err != nil {
		return err
	}

	if reviewReport != "" {
		data, err := json.MarshalIndent(result.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := os.WriteFile(reviewReport, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		cmd.Printf("Report written to %s\n", reviewReport)
	}

	if reviewJSON {
		return outputReportJSON(cmd, result)
	}

	return outputReportSummary(cmd, result)
}

// readInputFiles loads each path into memory. A missing input is a hard
// error; unreadable DOCX content is handled downstream per file.
func readInputFiles(paths []string) ([]driving.InputFile, error) {
	files := make([]driving.InputFile, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		files = append(files, driving.InputFile{
			Name:    filepath.Base(path),
			Content: content,
		})
	}
	return files, nil
}

// writeAnnotated writes each annotated copy with a "-reviewed" suffix,
// into --out when set and next to its input otherwise.
func writeAnnotated(cmd *cobra.Command, paths []string, result *driving.ReviewResult) error {
	if reviewOutDir != "" {
		if err := os.MkdirAll(reviewOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, path := range paths {
		name := filepath.Base(path)
		annotated, ok := result.Annotated[name]
		if !ok {
			continue
		}

		outPath := reviewedPath(path, reviewOutDir)
		if err := os.WriteFile(outPath, annotated, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		cmd.Printf("Annotated: %s\n", outPath)
	}
	return nil
}

// reviewedPath derives the output path for an annotated copy:
// "a/b.docx" becomes "a/b-reviewed.docx" (or "<outDir>/b-reviewed.docx").
func reviewedPath(inputPath, outDir string) string {
	dir := filepath.Dir(inputPath)
	if outDir != "" {
		dir = outDir
	}
	name := filepath.Base(inputPath)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return filepath.Join(dir, stem+"-reviewed"+ext)
}

func outputReportJSON(cmd *cobra.Command, result *driving.ReviewResult) error {
	data, err := json.MarshalIndent(result.Report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputReportSummary(cmd *cobra.Command, result *driving.ReviewResult) error {
	report := result.Report

	cmd.Println()
	cmd.Println("Compliance Report")
	cmd.Println("=================")
	cmd.Printf("Process: %s\n", report.Process)
	cmd.Printf("Documents uploaded: %d\n", report.DocumentsUploaded)
	if report.RequiredDocuments != nil {
		cmd.Printf("Required documents: %d\n", *report.RequiredDocuments)
	} else {
		cmd.Println("Required documents: unknown process")
	}

	if len(report.MissingDocuments) > 0 {
		cmd.Println("Missing documents:")
		for _, doc := range report.MissingDocuments {
			cmd.Printf("  - %s\n", doc)
		}
	} else {
		cmd.Println("Missing documents: none")
	}

	if len(report.IssuesFound) == 0 {
		cmd.Println("Issues found: none")
	} else {
		cmd.Printf("Issues found: %d\n", len(report.IssuesFound))
		cmd.Println()
		for i, issue := range report.IssuesFound {
			cmd.Printf("  [%d] %s (%s)\n", i+1, issue.Document, issue.EffectiveSeverity())
			if desc := issue.Issue; desc != "" {
				cmd.Printf("      %s\n", desc)
			}
			if issue.Suggestion != "" {
				cmd.Printf("      Suggestion: %s\n", issue.Suggestion)
			}
		}
	}

	if len(result.Notices) > 0 {
		cmd.Println()
		cmd.Println("Notices:")
		for _, notice := range result.Notices {
			cmd.Printf("  - %s\n", notice)
		}
	}

	return nil
}
