package types

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/24durgaprasad/HireSense-AI/internal/skills"
)

// Contact holds candidate contact information as extracted from the resume.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Skill represents a single skill listed on the candidate's resume.
type Skill struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category,omitempty"`
	Proficiency string  `json:"proficiency,omitempty"`
	YearsUsed   float64 `json:"years_used,omitempty"`
}

// Position represents one entry in the candidate's work history.
type Position struct {
	Title          string   `json:"title"`
	Company        string   `json:"company,omitempty"`
	DurationMonths int      `json:"duration_months" validate:"min=0"`
	Technologies   []string `json:"technologies,omitempty"`
	Domain         string   `json:"domain,omitempty"`
	Summary        string   `json:"summary,omitempty"`
}

// Project represents a project the candidate describes on their resume.
type Project struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies,omitempty"`
	Impact       string   `json:"impact,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	DegreeLevel string `json:"degree_level"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// CandidateSummary is the derived aggregate view of a candidate used by the
// scorers: total experience, the normalized skill token set, domains touched,
// and the highest degree attained.
type CandidateSummary struct {
	TotalExperienceMonths int      `json:"total_experience_months"`
	TotalExperienceYears  float64  `json:"total_experience_years"`
	SkillTokens           []string `json:"skill_tokens"`
	Domains               []string `json:"domains,omitempty"`
	HighestDegree         string   `json:"highest_degree,omitempty"`
}

// CandidateProfile represents a structured candidate, produced upstream by
// the resume parsing pipeline. The engine consumes it read-only.
type CandidateProfile struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"created_at,omitempty"`
	Contact   Contact          `json:"contact"`
	Skills    []Skill          `json:"skills" validate:"required,dive"`
	Positions []Position       `json:"positions,omitempty" validate:"omitempty,dive"`
	Projects  []Project        `json:"projects,omitempty"`
	Education []Education      `json:"education,omitempty"`
	Summary   CandidateSummary `json:"summary"`
}

// Validate checks the structural invariants of the profile.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// degreeOrder ranks degree strings for picking the highest attained degree.
// It intentionally mirrors the ordinal scale the education scorer uses.
var degreeOrder = map[string]int{
	"phd":           5,
	"master":        4,
	"bachelor":      3,
	"associate":     2,
	"certification": 1,
	"high_school":   0,
	"none":          0,
}

// DeriveSummary computes the aggregate summary from the raw profile sections.
// Total experience years is the month sum divided by 12, rounded to one
// decimal. Skill tokens are the normalized, deduplicated union of the skills
// list and all position/project technologies.
func DeriveSummary(c *CandidateProfile) CandidateSummary {
	summary := CandidateSummary{}

	for _, pos := range c.Positions {
		if pos.DurationMonths > 0 {
			summary.TotalExperienceMonths += pos.DurationMonths
		}
	}
	summary.TotalExperienceYears = math.Round(float64(summary.TotalExperienceMonths)/12.0*10) / 10

	seenTokens := make(map[string]bool)
	addToken := func(name string) {
		token := skills.Normalize(name)
		if token == "" || seenTokens[token] {
			return
		}
		seenTokens[token] = true
		summary.SkillTokens = append(summary.SkillTokens, token)
	}
	for _, skill := range c.Skills {
		addToken(skill.Name)
	}
	for _, pos := range c.Positions {
		for _, tech := range pos.Technologies {
			addToken(tech)
		}
	}
	for _, proj := range c.Projects {
		for _, tech := range proj.Technologies {
			addToken(tech)
		}
	}

	seenDomains := make(map[string]bool)
	for _, pos := range c.Positions {
		if pos.Domain == "" || seenDomains[pos.Domain] {
			continue
		}
		seenDomains[pos.Domain] = true
		summary.Domains = append(summary.Domains, pos.Domain)
	}

	highestRank := -1
	for _, edu := range c.Education {
		level := NormalizeDegreeLevel(edu.DegreeLevel)
		rank, known := degreeOrder[level]
		if !known {
			continue
		}
		if rank > highestRank {
			highestRank = rank
			summary.HighestDegree = level
		}
	}

	return summary
}
