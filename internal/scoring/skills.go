package scoring

import (
	"math"

	"github.com/24durgaprasad/HireSense-AI/internal/skills"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// Default importance applied when the upstream parser did not extract one.
const (
	defaultRequiredImportance  = 3
	defaultPreferredImportance = 2
)

// Relative contribution of the required and preferred match rates.
const (
	requiredRateWeight  = 0.7
	preferredRateWeight = 0.3
)

// ScoreSkills scores the candidate's skill coverage of the role. Each list
// accumulates importance-weighted hits over the importance-weighted total; an
// empty list contributes a full rate of 1.0 so absent requirements carry no
// penalty.
func ScoreSkills(req *types.RequirementProfile, cand *types.CandidateProfile) int {
	candidateTokens := candidateTokenSet(cand)

	requiredRate := matchRate(req.RequiredSkills, candidateTokens, defaultRequiredImportance)
	preferredRate := matchRate(req.PreferredSkills, candidateTokens, defaultPreferredImportance)

	score := (requiredRateWeight*requiredRate + preferredRateWeight*preferredRate) * 100
	return clampScore(int(math.Round(score)))
}

// matchRate computes the importance-weighted fraction of requirements the
// candidate satisfies, in [0,1]. An empty requirement list rates 1.0.
func matchRate(reqs []types.SkillRequirement, candidateTokens map[string]bool, defaultImportance int) float64 {
	if len(reqs) == 0 {
		return 1.0
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	for _, r := range reqs {
		importance := r.Importance
		if importance < 1 || importance > 5 {
			importance = defaultImportance
		}
		totalWeight += float64(importance)
		if skills.HasSkill(candidateTokens, r.Name) {
			matchedWeight += float64(importance)
		}
	}

	if totalWeight == 0 {
		return 1.0
	}
	return matchedWeight / totalWeight
}

// candidateTokenSet returns the candidate's aggregated skill token set,
// preferring the derived summary and falling back to normalizing the raw
// skills list when the summary is absent.
func candidateTokenSet(cand *types.CandidateProfile) map[string]bool {
	if len(cand.Summary.SkillTokens) > 0 {
		set := make(map[string]bool, len(cand.Summary.SkillTokens))
		for _, token := range cand.Summary.SkillTokens {
			if token != "" {
				set[token] = true
			}
		}
		return set
	}

	names := make([]string, 0, len(cand.Skills))
	for _, s := range cand.Skills {
		names = append(names, s.Name)
	}
	return skills.TokenSet(names)
}
