package scoring

import (
	"math"
	"strings"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// degreeRank maps normalized degree levels to numeric ranks for comparison.
// Unrecognized degrees rank as "unknown".
var degreeRank = map[string]int{
	"phd":           5,
	"master":        4,
	"bachelor":      3,
	"associate":     2,
	"certification": 1,
	"high_school":   0,
	"none":          0,
	"unknown":       1,
}

// Education scoring constants.
const (
	meetsPreferredScore = 100
	meetsRequiredScore  = 80
	belowRequiredScale  = 70.0
	fieldMatchBonus     = 10
)

// ScoreEducation scores the candidate's highest degree against the role's
// minimum and preferred degree levels, with a bonus for a field-of-study
// match. The preferred level defaults to the required level when absent.
func ScoreEducation(req *types.RequirementProfile, cand *types.CandidateProfile) int {
	candidateRank := lookupDegreeRank(cand.Summary.HighestDegree)
	requiredRank := lookupDegreeRank(req.MinDegree)

	preferredRank := requiredRank
	if req.PreferredDegree != "" {
		preferredRank = lookupDegreeRank(req.PreferredDegree)
	}

	var score int
	switch {
	case candidateRank >= preferredRank:
		score = meetsPreferredScore
	case candidateRank >= requiredRank:
		score = meetsRequiredScore
	default:
		denom := requiredRank
		if denom < 1 {
			denom = 1
		}
		score = int(math.Round(belowRequiredScale * float64(candidateRank) / float64(denom)))
	}

	if fieldOfStudyMatches(req, cand) {
		score += fieldMatchBonus
	}

	return clampScore(score)
}

// lookupDegreeRank resolves a degree string to its ordinal rank, treating
// missing entries as "unknown".
func lookupDegreeRank(level string) int {
	normalized := types.NormalizeDegreeLevel(level)
	if rank, ok := degreeRank[normalized]; ok {
		return rank
	}
	return degreeRank["unknown"]
}

// fieldOfStudyMatches reports whether any candidate field of study
// substring-matches any of the role's required fields. Preferred fields carry
// no bonus, like preferred domains in the experience scorer.
func fieldOfStudyMatches(req *types.RequirementProfile, cand *types.CandidateProfile) bool {
	if len(req.RequiredFields) == 0 {
		return false
	}

	for _, edu := range cand.Education {
		candField := strings.ToLower(strings.TrimSpace(edu.Field))
		if candField == "" {
			continue
		}
		for _, reqField := range req.RequiredFields {
			reqFieldLower := strings.ToLower(strings.TrimSpace(reqField))
			if reqFieldLower == "" {
				continue
			}
			if strings.Contains(candField, reqFieldLower) || strings.Contains(reqFieldLower, candField) {
				return true
			}
		}
	}
	return false
}
