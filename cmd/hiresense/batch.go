package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/24durgaprasad/HireSense-AI/internal/observability"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of candidates against one requirement profile",
	Long: "Scores every candidate JSON file in a directory against a single requirement profile in parallel. " +
		"A candidate that fails to load or score is reported and skipped; it never aborts the batch.",
	RunE: runBatch,
}

var (
	batchJobPath      string
	batchCandidateDir string
	batchOutput       string
)

func init() {
	batchCmd.Flags().StringVarP(&batchJobPath, "job", "j", "", "Path to RequirementProfile JSON file (required)")
	batchCmd.Flags().StringVarP(&batchCandidateDir, "candidates", "d", "", "Directory of CandidateProfile JSON files (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output results JSON file (required)")

	for _, flag := range []string{"job", "candidates", "out"} {
		if err := batchCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	req, err := loadRequirementProfile(batchJobPath)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(batchCandidateDir)
	if err != nil {
		return fmt.Errorf("failed to read candidates directory %s: %w", batchCandidateDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(batchCandidateDir, entry.Name()))
	}
	sort.Strings(paths) // deterministic insertion order

	if len(paths) == 0 {
		return fmt.Errorf("no candidate JSON files found in %s", batchCandidateDir)
	}

	// Load failures are isolated per candidate, like scoring failures.
	var candidates []*types.CandidateProfile
	loadFailures := 0
	for _, path := range paths {
		cand, err := loadCandidateProfile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
			loadFailures++
			continue
		}
		candidates = append(candidates, cand)
	}

	eng, cleanup, err := buildEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	result := eng.ScoreBatch(cmd.Context(), req, candidates)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRanking(eng.Rank(req.JobID))
	}

	results := storedResults{
		JobID:      req.JobID.String(),
		Candidates: eng.Candidates(req.JobID),
	}
	if err := writeJSON(batchOutput, results); err != nil {
		return err
	}

	fmt.Printf("Scored %d candidates (%d failed, %d skipped at load) -> %s\n",
		len(result.Scored), len(result.Failures), loadFailures, batchOutput)
	return nil
}
