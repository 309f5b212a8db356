package types

import (
	"strings"

	"github.com/google/uuid"
)

// Classification labels a scored candidate relative to the job's threshold.
type Classification string

// Classification values.
const (
	ClassificationShortlisted Classification = "shortlisted"
	ClassificationBorderline  Classification = "borderline"
	ClassificationRejected    Classification = "rejected"
)

// Recommendation is the hiring recommendation attached to an explanation.
type Recommendation string

// Recommendation values.
const (
	RecommendationStrongHire Recommendation = "strong_hire"
	RecommendationHire       Recommendation = "hire"
	RecommendationMaybe      Recommendation = "maybe"
	RecommendationNoHire     Recommendation = "no_hire"
)

// ScoreRecord holds the four dimension scores and the weighted total for one
// candidate against one requirement profile. All values are integers in
// [0,100].
type ScoreRecord struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`
	Skills      int       `json:"skills" validate:"min=0,max=100"`
	Experience  int       `json:"experience" validate:"min=0,max=100"`
	Projects    int       `json:"projects" validate:"min=0,max=100"`
	Education   int       `json:"education" validate:"min=0,max=100"`
	Total       int       `json:"total" validate:"min=0,max=100"`
}

// Dimensions returns the four dimension scores keyed by dimension name.
// Iterate via DimensionNames when order matters.
func (r *ScoreRecord) Dimensions() map[string]int {
	return map[string]int{
		"skills":     r.Skills,
		"experience": r.Experience,
		"projects":   r.Projects,
		"education":  r.Education,
	}
}

// DimensionNames lists the four scoring dimensions in weight order.
var DimensionNames = []string{"skills", "experience", "projects", "education"}

// Explanation is the narrative record produced for a scored candidate, either
// by the external collaborator or by the deterministic fallback.
type Explanation struct {
	Summary             string            `json:"summary"`
	Strengths           []string          `json:"strengths"`
	Gaps                []string          `json:"gaps"`
	Recommendation      Recommendation    `json:"recommendation"`
	InterviewFocusAreas []string          `json:"interview_focus_areas"`
	DimensionAnalyses   map[string]string `json:"dimension_analyses,omitempty"`
}

// NormalizeDegreeLevel canonicalizes a degree string for ordinal comparison:
// lower-cased, with spaces and hyphens collapsed to underscores
// ("High School" -> "high_school").
func NormalizeDegreeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	level = strings.ReplaceAll(level, " ", "_")
	level = strings.ReplaceAll(level, "-", "_")
	return level
}
