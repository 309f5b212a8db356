package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/24durgaprasad/HireSense-AI/internal/observability"
)

var thresholdCmd = &cobra.Command{
	Use:   "threshold",
	Short: "Update a job's threshold and reclassify its candidates",
	Long: "Applies a new classification threshold to every candidate in a scored-results file, " +
		"rewrites the file with the new labels, and prints the aggregate counts. No candidate " +
		"retains a label computed against the old threshold.",
	RunE: runThreshold,
}

var (
	thresholdInput string
	thresholdValue int
)

func init() {
	thresholdCmd.Flags().StringVarP(&thresholdInput, "in", "i", "", "Path to scored-results JSON file (required)")
	thresholdCmd.Flags().IntVarP(&thresholdValue, "threshold", "t", -1, "New threshold in [0,100] (required)")

	for _, flag := range []string{"in", "threshold"} {
		if err := thresholdCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(thresholdCmd)
}

func runThreshold(cmd *cobra.Command, _ []string) error {
	results, err := loadStoredResults(thresholdInput)
	if err != nil {
		return err
	}

	jobID, err := uuid.Parse(results.JobID)
	if err != nil {
		return fmt.Errorf("results file has invalid job_id %q: %w", results.JobID, err)
	}

	eng, cleanup, err := buildEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	eng.Restore(jobID, results.Candidates)
	counts, err := eng.UpdateThreshold(jobID, thresholdValue)
	if err != nil {
		return err
	}

	results.Candidates = eng.Candidates(jobID)
	if err := writeJSON(thresholdInput, results); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintThresholdCounts(counts, thresholdValue)
	} else if err := printJSON(counts); err != nil {
		return err
	}
	return nil
}
