// Package main implements the hiresense CLI for candidate scoring.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/24durgaprasad/HireSense-AI/internal/engine"
	"github.com/24durgaprasad/HireSense-AI/internal/explanation"
	"github.com/24durgaprasad/HireSense-AI/internal/llm"
	"github.com/24durgaprasad/HireSense-AI/internal/schemas"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// loadRequirementProfile reads, schema-validates, and unmarshals a
// requirement profile JSON file.
func loadRequirementProfile(path string) (*types.RequirementProfile, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.RequirementProfileSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("requirement profile failed schema validation: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirement profile %s: %w", path, err)
	}

	var req types.RequirementProfile
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirement profile JSON: %w", err)
	}
	return &req, nil
}

// loadCandidateProfile reads, schema-validates, and unmarshals a candidate
// profile JSON file, deriving the aggregate summary when the upstream parser
// did not supply one.
func loadCandidateProfile(path string) (*types.CandidateProfile, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.CandidateProfileSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("candidate profile failed schema validation: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate profile %s: %w", path, err)
	}

	var cand types.CandidateProfile
	if err := json.Unmarshal(data, &cand); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate profile JSON: %w", err)
	}

	if len(cand.Summary.SkillTokens) == 0 {
		cand.Summary = types.DeriveSummary(&cand)
	}
	return &cand, nil
}

// storedResults is the file format shared by the batch, rank, compare, and
// threshold commands.
type storedResults struct {
	JobID      string                   `json:"job_id"`
	Candidates []engine.ScoredCandidate `json:"candidates"`
}

// loadStoredResults reads a scored-results JSON file.
func loadStoredResults(path string) (*storedResults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file %s: %w", path, err)
	}

	var results storedResults
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results JSON: %w", err)
	}
	return &results, nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// output directory if needed.
func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// printJSON writes v to stdout with indentation.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// newLogger builds the CLI logger: human-readable in verbose mode, silent
// otherwise.
func newLogger() *zap.Logger {
	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	return zap.NewNop()
}

// buildEngine assembles the engine from the merged CLI configuration,
// attaching the Gemini collaborator when an API key is available. The
// returned cleanup func releases the collaborator client.
func buildEngine(ctx context.Context) (*engine.Engine, func(), error) {
	opts := []engine.Option{
		engine.WithLogger(newLogger()),
		engine.WithWorkers(cfg.Workers),
		engine.WithThreshold(cfg.Threshold, cfg.BorderlineBand),
	}

	cleanup := func() {}
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create explanation client: %w", err)
		}
		opts = append(opts, engine.WithGenerator(explanation.NewGeminiGenerator(client)))
		cleanup = func() { _ = client.Close() }
	}

	eng, err := engine.New(opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return eng, cleanup, nil
}
