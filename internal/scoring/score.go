package scoring

import (
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// Score computes the four dimension scores and the weighted total for one
// candidate against one requirement profile. It is pure and side-effect-free:
// both profiles are consumed read-only and a new ScoreRecord is returned.
//
// Missing required top-level fields surface as a ContractViolationError;
// missing optional sub-fields are handled by per-scorer defaults and never
// raise.
func Score(req *types.RequirementProfile, cand *types.CandidateProfile) (*types.ScoreRecord, error) {
	if req == nil {
		return nil, &ContractViolationError{Message: "requirement profile is nil"}
	}
	if cand == nil {
		return nil, &ContractViolationError{Message: "candidate profile is nil"}
	}
	if err := req.Validate(); err != nil {
		return nil, &ContractViolationError{Message: "invalid requirement profile", Cause: err}
	}
	if err := cand.Validate(); err != nil {
		return nil, &ContractViolationError{Message: "invalid candidate profile", Cause: err}
	}

	record := &types.ScoreRecord{
		CandidateID: cand.ID,
		JobID:       req.JobID,
		Skills:      ScoreSkills(req, cand),
		Experience:  ScoreExperience(req, cand),
		Projects:    ScoreProjects(req, cand),
		Education:   ScoreEducation(req, cand),
	}
	record.Total = Combine(record)

	return record, nil
}
