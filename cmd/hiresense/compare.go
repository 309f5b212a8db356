package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/24durgaprasad/HireSense-AI/internal/observability"
	"github.com/24durgaprasad/HireSense-AI/internal/ranking"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare [candidate-id...]",
	Short: "Compare two or more scored candidates",
	Long: "Produces per-dimension winners and an overall winner from a scored-results file. " +
		"With no candidate IDs, all candidates in the file are compared.",
	RunE: runCompare,
}

var compareInput string

func init() {
	compareCmd.Flags().StringVarP(&compareInput, "in", "i", "", "Path to scored-results JSON file (required)")

	if err := compareCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	results, err := loadStoredResults(compareInput)
	if err != nil {
		return err
	}

	byID := make(map[string]types.ScoreRecord, len(results.Candidates))
	var records []types.ScoreRecord
	for _, scored := range results.Candidates {
		byID[scored.Record.CandidateID.String()] = scored.Record
		records = append(records, scored.Record)
	}

	// An explicit ID list narrows the comparison; unknown IDs are skipped
	// and surface as an insufficient-candidates error below.
	if len(args) > 0 {
		records = records[:0]
		for _, id := range args {
			if record, ok := byID[id]; ok {
				records = append(records, record)
			} else {
				fmt.Fprintf(os.Stderr, "Warning: no scored candidate with id %s\n", id)
			}
		}
	}

	comparison, err := ranking.Compare(records)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintComparison(comparison)
		return nil
	}
	return printJSON(comparison)
}
