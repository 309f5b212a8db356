package scoring

import (
	"math"
	"strings"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// Overqualification penalty parameters: the penalty kicks in only when a
// maximum is specified and the candidate exceeds it by more than the grace
// window, at penaltyPerYear points per year, capped at maxOverqualPenalty.
const (
	overqualGraceYears = 3.0
	penaltyPerYear     = 5.0
	maxOverqualPenalty = 20.0
)

// maxDomainBonus is the cap on the domain match bonus.
const maxDomainBonus = 10.0

// ScoreExperience scores the candidate's years of experience against the
// role's minimum and maximum, then adjusts for overqualification and domain
// coverage. A zero required minimum grants the full base score.
func ScoreExperience(req *types.RequirementProfile, cand *types.CandidateProfile) int {
	candidateYears := cand.Summary.TotalExperienceYears

	base := 100.0
	if req.MinYears > 0 && candidateYears < req.MinYears {
		base = math.Round(100 * candidateYears / req.MinYears)
	}

	score := base

	if req.MaxYears != nil && candidateYears > *req.MaxYears+overqualGraceYears {
		penalty := (candidateYears - *req.MaxYears - overqualGraceYears) * penaltyPerYear
		score -= math.Min(maxOverqualPenalty, penalty)
	}

	score += domainBonus(req.RequiredDomains, cand.Summary.Domains)

	return clampScore(int(math.Round(score)))
}

// domainBonus grants up to maxDomainBonus points proportional to the fraction
// of required domains the candidate has touched. Domains match on
// case-insensitive substring containment in either direction.
func domainBonus(required, candidate []string) float64 {
	if len(required) == 0 {
		return 0
	}

	matched := 0
	for _, reqDomain := range required {
		if domainMatches(reqDomain, candidate) {
			matched++
		}
	}
	return maxDomainBonus * float64(matched) / float64(len(required))
}

func domainMatches(required string, candidate []string) bool {
	required = strings.ToLower(strings.TrimSpace(required))
	if required == "" {
		return false
	}
	for _, dom := range candidate {
		dom = strings.ToLower(strings.TrimSpace(dom))
		if dom == "" {
			continue
		}
		if strings.Contains(dom, required) || strings.Contains(required, dom) {
			return true
		}
	}
	return false
}
