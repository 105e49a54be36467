package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driving"
)

var (
	retrieveTopK int
	retrieveJSON bool
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [file]",
	Short: "Preview reference passages for a document",
	Long: `Extracts the document's text and prints the reference passages most
similar to it, ranked by TF-IDF cosine similarity. Useful for inspecting
what context the AI oracle would receive, without calling it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().IntVarP(&retrieveTopK, "top-k", "k", 0, "number of passages to retrieve")
	retrieveCmd.Flags().BoolVar(&retrieveJSON, "json", false, "output passages as JSON")
	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	file := driving.InputFile{
		Name:    filepath.Base(args[0]),
		Content: content,
	}

	results, err := reviewService.RetrievePreview(context.Background(), file, retrieveTopK)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	if retrieveJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No reference passages found.")
		return nil
	}

	for i, r := range results {
		cmd.Printf("[%d] %s (%.3f)\n", i+1, r.Source, r.Score)
		cmd.Printf("    %s\n", r.Content)
		cmd.Println()
	}
	return nil
}
