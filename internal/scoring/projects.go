package scoring

import (
	"math"

	"github.com/24durgaprasad/HireSense-AI/internal/skills"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// Project scoring constants: a candidate with no projects gets a neutral
// score, relevant projects score from a base plus average relevance, and a
// portfolio with no relevant projects scores a flat floor.
const (
	noProjectsScore      = 50
	relevantProjectsBase = 60.0
	maxRelevanceBonus    = 40.0
	irrelevantFloor      = 40
)

// ScoreProjects scores the candidate's project portfolio against the role's
// required skills. Absence of projects is not penalized as failure. A project
// is relevant when any of its technology tokens satisfies bidirectional
// substring containment against a required-skill token.
func ScoreProjects(req *types.RequirementProfile, cand *types.CandidateProfile) int {
	if len(cand.Projects) == 0 {
		return noProjectsScore
	}

	requiredTokens := make([]string, 0, len(req.RequiredSkills))
	for _, r := range req.RequiredSkills {
		if token := skills.Normalize(r.Name); token != "" {
			requiredTokens = append(requiredTokens, token)
		}
	}

	relevantCount := 0
	relevanceSum := 0.0
	for _, proj := range cand.Projects {
		relevance := projectRelevance(proj, requiredTokens)
		if relevance > 0 {
			relevantCount++
			relevanceSum += relevance
		}
	}

	if relevantCount == 0 {
		return irrelevantFloor
	}

	avgRelevance := relevanceSum / float64(relevantCount)
	score := relevantProjectsBase + math.Min(maxRelevanceBonus, avgRelevance*100)
	return clampScore(int(math.Round(score)))
}

// projectRelevance returns the fraction of the project's technology tokens
// that match any required-skill token.
func projectRelevance(proj types.Project, requiredTokens []string) float64 {
	techTokens := make([]string, 0, len(proj.Technologies))
	for _, tech := range proj.Technologies {
		if token := skills.Normalize(tech); token != "" {
			techTokens = append(techTokens, token)
		}
	}
	if len(techTokens) == 0 || len(requiredTokens) == 0 {
		return 0
	}

	matched := 0
	for _, tech := range techTokens {
		for _, required := range requiredTokens {
			if skills.TokensRelated(tech, required) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(techTokens))
}
