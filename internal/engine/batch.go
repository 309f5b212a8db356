package engine

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/24durgaprasad/HireSense-AI/internal/explanation"
	"github.com/24durgaprasad/HireSense-AI/internal/scoring"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// BatchFailure records one candidate whose scoring failed. Failures are
// isolated: one bad profile never aborts the batch.
type BatchFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BatchResult holds the outcome of scoring many candidates against one
// requirement profile.
type BatchResult struct {
	Scored   []*ScoredCandidate `json:"scored"`
	Failures []BatchFailure     `json:"failures,omitempty"`
}

// ScoreBatch scores many candidates against one requirement profile. Scoring
// and explanation run in parallel on a bounded worker pool; results are then
// classified and stored sequentially in input order, so insertion order (and
// therefore ranking tie-breaks) stays deterministic and every candidate in
// the batch is classified against a single consistent threshold.
func (e *Engine) ScoreBatch(ctx context.Context, req *types.RequirementProfile, candidates []*types.CandidateProfile) *BatchResult {
	type outcome struct {
		record *types.ScoreRecord
		expl   *types.Explanation
		err    error
	}
	outcomes := make([]outcome, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			record, err := scoring.Score(req, cand)
			if err != nil {
				outcomes[i] = outcome{err: err}
				return nil // isolate the failure, keep the batch going
			}
			ev := explanation.BuildEvidence(req, cand, record)
			outcomes[i] = outcome{record: record, expl: e.explain(gctx, ev)}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in outcomes

	result := &BatchResult{}

	state := e.job(req.JobID)
	state.mu.Lock()
	threshold, band := state.threshold, state.borderlineBand
	for i, out := range outcomes {
		if out.err != nil {
			result.Failures = append(result.Failures, BatchFailure{Index: i, Error: out.err.Error()})
			e.logger.Warn("batch candidate failed",
				zap.String("job_id", req.JobID.String()),
				zap.Int("index", i),
				zap.Error(out.err),
			)
			continue
		}
		scored := &ScoredCandidate{
			Record:         *out.record,
			Classification: scoring.Classify(out.record.Total, threshold, band),
			Explanation:    out.expl,
		}
		state.candidates = append(state.candidates, scored)
		result.Scored = append(result.Scored, scored)
	}
	state.mu.Unlock()

	e.logger.Info("batch scored",
		zap.String("job_id", req.JobID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("scored", len(result.Scored)),
		zap.Int("failed", len(result.Failures)),
	)

	return result
}
