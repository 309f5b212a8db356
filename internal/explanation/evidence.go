// Package explanation assembles the evidence context handed to the narrative
// collaborator and owns the deterministic fallback used when that
// collaborator fails.
package explanation

import (
	"unicode/utf8"

	"github.com/24durgaprasad/HireSense-AI/internal/skills"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// Bounds on the evidence payload handed to the collaborator.
const (
	maxEvidenceSkills    = 8
	maxEvidencePositions = 3
	maxEvidenceProjects  = 3
	maxEvidenceTextLen   = 240
)

// PositionEvidence is a compact view of one work history entry.
type PositionEvidence struct {
	Title          string `json:"title"`
	Company        string `json:"company,omitempty"`
	DurationMonths int    `json:"duration_months"`
	Domain         string `json:"domain,omitempty"`
	Summary        string `json:"summary,omitempty"`
}

// ProjectEvidence is a compact view of one project.
type ProjectEvidence struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies,omitempty"`
	Impact       string   `json:"impact,omitempty"`
}

// Evidence is the size-bounded payload the engine assembles for the
// collaborator: top skills, top positions and projects, the matched and
// missing required skills, and the score record itself.
type Evidence struct {
	RoleTitle      string               `json:"role_title"`
	Seniority      string               `json:"seniority,omitempty"`
	CandidateName  string               `json:"candidate_name,omitempty"`
	TotalYears     float64              `json:"total_experience_years"`
	TopSkills      []string             `json:"top_skills"`
	MatchedSkills  []string             `json:"matched_required_skills"`
	MissingSkills  []string             `json:"missing_required_skills"`
	Positions      []PositionEvidence   `json:"positions"`
	Projects       []ProjectEvidence    `json:"projects"`
	Scores         types.ScoreRecord    `json:"scores"`
	Classification types.Classification `json:"classification,omitempty"`
}

// BuildEvidence assembles the compact evidence context for one scored
// candidate. Inputs are consumed read-only.
func BuildEvidence(req *types.RequirementProfile, cand *types.CandidateProfile, record *types.ScoreRecord) *Evidence {
	ev := &Evidence{
		RoleTitle:     req.Title,
		Seniority:     req.Seniority,
		CandidateName: cand.Contact.Name,
		TotalYears:    cand.Summary.TotalExperienceYears,
		Scores:        *record,
	}

	for i, skill := range cand.Skills {
		if i >= maxEvidenceSkills {
			break
		}
		ev.TopSkills = append(ev.TopSkills, skill.Name)
	}

	candidateTokens := skills.TokenSet(cand.Summary.SkillTokens)
	if len(candidateTokens) == 0 {
		names := make([]string, 0, len(cand.Skills))
		for _, s := range cand.Skills {
			names = append(names, s.Name)
		}
		candidateTokens = skills.TokenSet(names)
	}
	for _, r := range req.RequiredSkills {
		if skills.HasSkill(candidateTokens, r.Name) {
			ev.MatchedSkills = append(ev.MatchedSkills, r.Name)
		} else {
			ev.MissingSkills = append(ev.MissingSkills, r.Name)
		}
	}

	for i, pos := range cand.Positions {
		if i >= maxEvidencePositions {
			break
		}
		ev.Positions = append(ev.Positions, PositionEvidence{
			Title:          pos.Title,
			Company:        pos.Company,
			DurationMonths: pos.DurationMonths,
			Domain:         pos.Domain,
			Summary:        truncateText(pos.Summary, maxEvidenceTextLen),
		})
	}

	for i, proj := range cand.Projects {
		if i >= maxEvidenceProjects {
			break
		}
		ev.Projects = append(ev.Projects, ProjectEvidence{
			Name:         proj.Name,
			Technologies: proj.Technologies,
			Impact:       truncateText(proj.Impact, maxEvidenceTextLen),
		})
	}

	return ev
}

// truncateText truncates text to at most maxLen bytes, backing up to a rune
// boundary so a multibyte character is never split.
func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
