// Package engine orchestrates scoring, classification, explanation, and
// per-job threshold state. The scorers themselves are pure; all mutable state
// in the system lives here.
package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/24durgaprasad/HireSense-AI/internal/explanation"
	"github.com/24durgaprasad/HireSense-AI/internal/ranking"
	"github.com/24durgaprasad/HireSense-AI/internal/scoring"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// ScoredCandidate is the engine's stored result for one candidate under one
// job: the numeric record, the current classification, and the narrative.
type ScoredCandidate struct {
	Record         types.ScoreRecord    `json:"record"`
	Classification types.Classification `json:"classification"`
	Explanation    *types.Explanation   `json:"explanation,omitempty"`
}

// jobState holds the mutable per-job state. Its mutex is the exclusive
// section over the job's threshold: classification reads and reclassification
// sweeps serialize on it, so a candidate is always classified against a
// single consistent threshold value.
type jobState struct {
	mu             sync.Mutex
	threshold      int
	borderlineBand int
	candidates     []*ScoredCandidate // insertion order, preserved for ranking tie-breaks
}

// Engine evaluates candidates against requirement profiles and maintains
// per-job thresholds and scored candidate sets.
type Engine struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*jobState

	generator      explanation.Generator
	logger         *zap.Logger
	workers        int
	threshold      int
	borderlineBand int
}

// Option configures an Engine.
type Option func(*Engine)

// WithGenerator sets the narrative collaborator. Without one, every
// explanation is the deterministic fallback.
func WithGenerator(gen explanation.Generator) Option {
	return func(e *Engine) { e.generator = gen }
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithWorkers bounds batch scoring parallelism.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithThreshold sets the initial classification threshold for new jobs.
func WithThreshold(threshold, borderlineBand int) Option {
	return func(e *Engine) {
		e.threshold = threshold
		e.borderlineBand = borderlineBand
	}
}

// New creates an Engine after validating the weight table. A weight mismatch
// is fatal: the engine refuses to initialize.
func New(opts ...Option) (*Engine, error) {
	if err := scoring.ValidateWeights(); err != nil {
		return nil, err
	}

	e := &Engine{
		jobs:           make(map[uuid.UUID]*jobState),
		logger:         zap.NewNop(),
		workers:        4,
		threshold:      scoring.DefaultThreshold,
		borderlineBand: scoring.DefaultBorderlineBand,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// job returns the state for a job ID, creating it with the engine defaults on
// first use.
func (e *Engine) job(jobID uuid.UUID) *jobState {
	e.mu.Lock()
	defer e.mu.Unlock()
	state, ok := e.jobs[jobID]
	if !ok {
		state = &jobState{threshold: e.threshold, borderlineBand: e.borderlineBand}
		e.jobs[jobID] = state
	}
	return state
}

// ScoreCandidate scores one candidate against one requirement profile,
// classifies the total against the job's current threshold, and stores the
// result. The numeric scores are always available synchronously; the
// narrative may come from the fallback.
func (e *Engine) ScoreCandidate(ctx context.Context, req *types.RequirementProfile, cand *types.CandidateProfile) (*ScoredCandidate, error) {
	record, err := scoring.Score(req, cand)
	if err != nil {
		return nil, err
	}

	ev := explanation.BuildEvidence(req, cand, record)
	expl := e.explain(ctx, ev)

	scored := &ScoredCandidate{Record: *record, Explanation: expl}

	state := e.job(req.JobID)
	state.mu.Lock()
	scored.Classification = scoring.Classify(record.Total, state.threshold, state.borderlineBand)
	state.candidates = append(state.candidates, scored)
	state.mu.Unlock()

	e.logger.Debug("candidate scored",
		zap.String("job_id", req.JobID.String()),
		zap.String("candidate_id", cand.ID.String()),
		zap.Int("total", record.Total),
		zap.String("classification", string(scored.Classification)),
	)

	return scored, nil
}

// explain delegates to the collaborator when one is configured and recovers
// any failure with the deterministic fallback. Collaborator failures are
// logged, never propagated as scoring failures.
func (e *Engine) explain(ctx context.Context, ev *explanation.Evidence) *types.Explanation {
	if e.generator == nil {
		return explanation.Fallback(ev)
	}
	expl, err := e.generator.Generate(ctx, ev)
	if err != nil {
		e.logger.Warn("explanation collaborator failed, using fallback",
			zap.String("candidate_id", ev.Scores.CandidateID.String()),
			zap.Error(err),
		)
		return explanation.Fallback(ev)
	}
	return expl
}

// Restore seeds a job's state with previously scored candidates, preserving
// their order. It is used to rehydrate the engine from persisted results
// before ranking, comparison, or a threshold update.
func (e *Engine) Restore(jobID uuid.UUID, scored []ScoredCandidate) {
	state := e.job(jobID)
	state.mu.Lock()
	defer state.mu.Unlock()
	for i := range scored {
		copied := scored[i]
		state.candidates = append(state.candidates, &copied)
	}
}

// ThresholdCounts aggregates classification counts after a reclassification
// sweep.
type ThresholdCounts struct {
	Total       int `json:"total"`
	Shortlisted int `json:"shortlisted"`
	Borderline  int `json:"borderline"`
	Rejected    int `json:"rejected"`
}

// UpdateThreshold sets a new threshold for the job and reclassifies every
// stored candidate under it in a single exclusive sweep, so no candidate
// retains a label computed against the old threshold. Returns the aggregate
// counts under the new threshold.
func (e *Engine) UpdateThreshold(jobID uuid.UUID, threshold int) (ThresholdCounts, error) {
	if threshold < 0 || threshold > 100 {
		return ThresholdCounts{}, &scoring.ContractViolationError{
			Message: "threshold must be in [0,100]",
		}
	}

	state := e.job(jobID)
	state.mu.Lock()
	defer state.mu.Unlock()

	state.threshold = threshold
	counts := ThresholdCounts{Total: len(state.candidates)}
	for _, scored := range state.candidates {
		scored.Classification = scoring.Classify(scored.Record.Total, state.threshold, state.borderlineBand)
		switch scored.Classification {
		case types.ClassificationShortlisted:
			counts.Shortlisted++
		case types.ClassificationBorderline:
			counts.Borderline++
		case types.ClassificationRejected:
			counts.Rejected++
		}
	}

	e.logger.Info("threshold updated, candidates reclassified",
		zap.String("job_id", jobID.String()),
		zap.Int("threshold", threshold),
		zap.Int("total", counts.Total),
		zap.Int("shortlisted", counts.Shortlisted),
		zap.Int("borderline", counts.Borderline),
		zap.Int("rejected", counts.Rejected),
	)

	return counts, nil
}

// Candidates returns the scored candidates stored for a job, in insertion
// order. The returned slice is a snapshot copy.
func (e *Engine) Candidates(jobID uuid.UUID) []ScoredCandidate {
	state := e.job(jobID)
	state.mu.Lock()
	defer state.mu.Unlock()

	out := make([]ScoredCandidate, len(state.candidates))
	for i, scored := range state.candidates {
		out[i] = *scored
	}
	return out
}

// Rank orders the job's stored candidates by total score with stable
// insertion-order tie-breaks.
func (e *Engine) Rank(jobID uuid.UUID) []ranking.RankedCandidate {
	candidates := e.Candidates(jobID)
	records := make([]types.ScoreRecord, len(candidates))
	for i, scored := range candidates {
		records[i] = scored.Record
	}
	return ranking.Rank(records)
}

// Compare produces per-dimension and overall winners for the given candidate
// IDs under a job. IDs that resolve to no stored record are skipped; fewer
// than two resolvable candidates yield an InsufficientCandidatesError.
func (e *Engine) Compare(jobID uuid.UUID, candidateIDs ...uuid.UUID) (*ranking.Comparison, error) {
	candidates := e.Candidates(jobID)
	byID := make(map[uuid.UUID]types.ScoreRecord, len(candidates))
	for _, scored := range candidates {
		byID[scored.Record.CandidateID] = scored.Record
	}

	records := make([]types.ScoreRecord, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if record, ok := byID[id]; ok {
			records = append(records, record)
		}
	}
	return ranking.Compare(records)
}
