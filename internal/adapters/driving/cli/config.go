package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and configure the oracle provider, reference corpus location,
and retrieval parameters. Settings persist in the agent's config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value by dot-notation key.

Common keys:
  oracle.provider        gemini | openai | simulated | none
  oracle.api_key         API key for the oracle provider
  oracle.model           model name override
  references.dir         directory of reference .txt files
  retrieval.top_k        number of reference passages to retrieve`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset [key]",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Oracle]")
	provider := configStore.GetString(file.KeyOracleProvider)
	if provider == "" {
		provider = "gemini (default)"
	}
	cmd.Printf("  Provider: %s\n", provider)
	if key := configStore.GetString(file.KeyOracleAPIKey); key != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(key))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	if model := configStore.GetString(file.KeyOracleModel); model != "" {
		cmd.Printf("  Model: %s\n", model)
	}
	cmd.Println()

	cmd.Println("[References]")
	refs := configStore.GetString(file.KeyReferencesDir)
	if refs == "" {
		refs = "(not set)"
	}
	cmd.Printf("  Directory: %s\n", refs)
	cmd.Println()

	cmd.Println("[Retrieval]")
	if k := configStore.GetInt(file.KeyTopK); k > 0 {
		cmd.Printf("  Top K: %d\n", k)
	} else {
		cmd.Printf("  Top K: (default)\n")
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Store integers as integers so GetInt round-trips.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if strings.Contains(key, "api_key") {
		cmd.Printf("Set %s = %s\n", key, maskAPIKey(raw))
	} else {
		cmd.Printf("Set %s = %s\n", key, raw)
	}
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Delete(args[0]); err != nil {
		return fmt.Errorf("failed to unset %s: %w", args[0], err)
	}

	cmd.Printf("Unset %s\n", args[0])
	return nil
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
