package explanation

import (
	"fmt"
	"strings"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// Fallback recommendation thresholds on the total score.
const (
	strongHireFloor = 85
	hireFloor       = 70
	maybeFloor      = 50
)

// Fallback builds a deterministic explanation purely from the numeric scores
// and evidence, so scoring availability never depends on the collaborator's
// uptime. Same evidence in, same explanation out.
func Fallback(ev *Evidence) *types.Explanation {
	expl := &types.Explanation{
		Summary: fmt.Sprintf(
			"%s scored %d/100 based on weighted evaluation across skills (%d), experience (%d), projects (%d), and education (%d).",
			candidateLabel(ev), ev.Scores.Total,
			ev.Scores.Skills, ev.Scores.Experience, ev.Scores.Projects, ev.Scores.Education,
		),
		Recommendation:      fallbackRecommendation(ev.Scores.Total),
		Strengths:           fallbackStrengths(ev),
		Gaps:                fallbackGaps(ev),
		InterviewFocusAreas: fallbackFocusAreas(ev),
	}
	return expl
}

func candidateLabel(ev *Evidence) string {
	if ev.CandidateName != "" {
		return ev.CandidateName
	}
	return "Candidate"
}

// fallbackRecommendation derives the recommendation by thresholding the total
// score.
func fallbackRecommendation(total int) types.Recommendation {
	switch {
	case total >= strongHireFloor:
		return types.RecommendationStrongHire
	case total >= hireFloor:
		return types.RecommendationHire
	case total >= maybeFloor:
		return types.RecommendationMaybe
	default:
		return types.RecommendationNoHire
	}
}

func fallbackStrengths(ev *Evidence) []string {
	var strengths []string
	if len(ev.MatchedSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Matches required skills: %s", strings.Join(ev.MatchedSkills, ", ")))
	}
	if ev.Scores.Experience >= 80 {
		strengths = append(strengths, fmt.Sprintf("%.1f years of experience meets the role's requirement", ev.TotalYears))
	}
	if ev.Scores.Projects >= 80 {
		strengths = append(strengths, "Project portfolio is strongly aligned with the required stack")
	}
	if ev.Scores.Education >= 100 {
		strengths = append(strengths, "Education meets or exceeds the preferred level")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "No dimension stood out as a clear strength")
	}
	return strengths
}

func fallbackGaps(ev *Evidence) []string {
	var gaps []string
	if len(ev.MissingSkills) > 0 {
		gaps = append(gaps, fmt.Sprintf("Missing required skills: %s", strings.Join(ev.MissingSkills, ", ")))
	}
	if ev.Scores.Experience < 60 {
		gaps = append(gaps, fmt.Sprintf("Experience (%.1f years) falls short of the role's minimum", ev.TotalYears))
	}
	if ev.Scores.Projects < 50 {
		gaps = append(gaps, "No clearly relevant project work")
	}
	if ev.Scores.Education < 80 {
		gaps = append(gaps, "Education is below the required level")
	}
	if len(gaps) == 0 {
		gaps = append(gaps, "No significant gaps identified")
	}
	return gaps
}

func fallbackFocusAreas(ev *Evidence) []string {
	var areas []string
	for i, skill := range ev.MissingSkills {
		if i >= 3 {
			break
		}
		areas = append(areas, fmt.Sprintf("Probe depth in %s", skill))
	}
	if ev.Scores.Experience < 80 {
		areas = append(areas, "Verify hands-on scope of prior roles")
	}
	if len(areas) == 0 {
		areas = append(areas, "Standard role-fit interview")
	}
	return areas
}
