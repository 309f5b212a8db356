package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/24durgaprasad/HireSense-AI/internal/observability"
	"github.com/24durgaprasad/HireSense-AI/internal/ranking"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank previously scored candidates",
	Long: "Orders the candidates in a scored-results file by total score descending and assigns " +
		"1-based ranks. Ties keep their original scoring order.",
	RunE: runRank,
}

var (
	rankInput  string
	rankOutput string
)

func init() {
	rankCmd.Flags().StringVarP(&rankInput, "in", "i", "", "Path to scored-results JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranking JSON file (optional; stdout if omitted)")

	if err := rankCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	results, err := loadStoredResults(rankInput)
	if err != nil {
		return err
	}

	records := make([]types.ScoreRecord, len(results.Candidates))
	for i, scored := range results.Candidates {
		records[i] = scored.Record
	}
	ranked := ranking.Rank(records)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRanking(ranked)
	}

	if rankOutput != "" {
		return writeJSON(rankOutput, ranked)
	}
	return printJSON(ranked)
}
