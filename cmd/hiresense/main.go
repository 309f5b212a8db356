// Package main provides the entry point for the HireSense scoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/24durgaprasad/HireSense-AI/internal/config"
	"github.com/24durgaprasad/HireSense-AI/internal/scoring"
)

var rootCmd = &cobra.Command{
	Use:   "hiresense",
	Short: "HireSense candidate matching and scoring engine",
	Long: "HireSense scores structured candidate profiles against structured job requirements, " +
		"producing explainable weighted fitness scores, tier classifications, and rankings.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	verbose    bool

	// cfg is the merged CLI configuration, populated in setup.
	cfg config.Settings
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print boxed score summaries")
}

// setup validates the weight table and merges configuration sources before
// any command runs. A weight table mismatch is fatal here, once, not per call.
func setup(_ *cobra.Command, _ []string) error {
	if err := scoring.ValidateWeights(); err != nil {
		return err
	}

	defaults := config.Settings{
		Threshold:      scoring.DefaultThreshold,
		BorderlineBand: scoring.DefaultBorderlineBand,
		Workers:        4,
		APIKey:         os.Getenv("GEMINI_API_KEY"),
	}

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded.Resolve(defaults)
	} else {
		cfg = defaults
	}
	if verbose {
		cfg.Verbose = true
	}

	return cfg.Validate()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
