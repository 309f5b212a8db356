package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/24durgaprasad/HireSense-AI/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against a requirement profile",
	Long: "Computes the four dimension scores and the weighted total for a single candidate, " +
		"classifies the result against the configured threshold, and attaches an explanation.",
	RunE: runScore,
}

var (
	scoreJobPath       string
	scoreCandidatePath string
	scoreOutput        string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobPath, "job", "j", "", "Path to RequirementProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreCandidatePath, "candidate", "c", "", "Path to CandidateProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (optional; stdout if omitted)")

	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	req, err := loadRequirementProfile(scoreJobPath)
	if err != nil {
		return err
	}
	cand, err := loadCandidateProfile(scoreCandidatePath)
	if err != nil {
		return err
	}

	eng, cleanup, err := buildEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	scored, err := eng.ScoreCandidate(cmd.Context(), req, cand)
	if err != nil {
		return fmt.Errorf("failed to score candidate: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreRecord(scored)
		printer.PrintExplanation(scored.Explanation)
	}

	results := storedResults{
		JobID:      req.JobID.String(),
		Candidates: eng.Candidates(req.JobID),
	}
	if scoreOutput != "" {
		return writeJSON(scoreOutput, results)
	}
	return printJSON(results)
}
