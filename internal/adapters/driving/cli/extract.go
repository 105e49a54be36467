package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LishigaT/adgm-corporate-agent/internal/docx"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract paragraph text from a DOCX file",
	Long: `Parses a DOCX file and prints its non-empty paragraphs with their
paragraph indexes, exactly as the review pipeline sees them.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output paragraphs as JSON")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	doc, err := docx.Extract(filepath.Base(args[0]), content)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if extractJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Title: %s\n", doc.Title)
	cmd.Printf("Paragraphs: %d\n", len(doc.Paragraphs))
	cmd.Println()
	for _, p := range doc.Paragraphs {
		cmd.Printf("[%d] %s\n", p.Index, p.Text)
	}
	return nil
}
