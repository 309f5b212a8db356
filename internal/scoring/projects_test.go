package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

func reqWithSkillNames(names ...string) *types.RequirementProfile {
	req := &types.RequirementProfile{RequiredSkills: []types.SkillRequirement{}}
	for _, name := range names {
		req.RequiredSkills = append(req.RequiredSkills, types.SkillRequirement{Name: name})
	}
	return req
}

func TestScoreProjects_NoProjectsIsNeutral(t *testing.T) {
	req := reqWithSkillNames("Go")
	cand := &types.CandidateProfile{}

	// Absence of projects is not penalized as failure.
	assert.Equal(t, 50, ScoreProjects(req, cand))
}

func TestScoreProjects_FullyRelevantProject(t *testing.T) {
	req := reqWithSkillNames("Go", "PostgreSQL")
	cand := &types.CandidateProfile{
		Projects: []types.Project{
			{Name: "Inventory API", Technologies: []string{"Go", "PostgreSQL"}},
		},
	}

	// avgRelevance = 1.0 => 60 + min(40, 100) = 100
	assert.Equal(t, 100, ScoreProjects(req, cand))
}

func TestScoreProjects_PartialRelevance(t *testing.T) {
	req := reqWithSkillNames("Go")
	cand := &types.CandidateProfile{
		Projects: []types.Project{
			{Name: "Mixed-stack app", Technologies: []string{"Go", "Swift", "Figma", "Sketch"}},
		},
	}

	// relevance = 1/4 => 60 + min(40, 25) = 85
	assert.Equal(t, 85, ScoreProjects(req, cand))
}

func TestScoreProjects_AverageOverRelevantProjectsOnly(t *testing.T) {
	req := reqWithSkillNames("Go")
	cand := &types.CandidateProfile{
		Projects: []types.Project{
			{Name: "Relevant", Technologies: []string{"Go", "Redis"}},       // 1/2
			{Name: "Irrelevant", Technologies: []string{"Swift", "Figma"}}, // 0, excluded from avg
		},
	}

	// avgRelevance = 0.5 => 60 + min(40, 50) = 100
	assert.Equal(t, 100, ScoreProjects(req, cand))
}

func TestScoreProjects_NoRelevantProjects(t *testing.T) {
	req := reqWithSkillNames("Go")
	cand := &types.CandidateProfile{
		Projects: []types.Project{
			{Name: "Design portfolio", Technologies: []string{"Figma", "Sketch"}},
		},
	}

	assert.Equal(t, 40, ScoreProjects(req, cand))
}

func TestScoreProjects_ProjectWithoutTechnologies(t *testing.T) {
	req := reqWithSkillNames("Go")
	cand := &types.CandidateProfile{
		Projects: []types.Project{{Name: "Undocumented project"}},
	}

	// No technology tokens means no measurable relevance.
	assert.Equal(t, 40, ScoreProjects(req, cand))
}

func TestScoreProjects_SubstringRelevance(t *testing.T) {
	req := reqWithSkillNames("React")
	cand := &types.CandidateProfile{
		Projects: []types.Project{
			{Name: "Mobile app", Technologies: []string{"React Native"}},
		},
	}

	// "reactnative" contains "react": relevance 1.0 => 100.
	assert.Equal(t, 100, ScoreProjects(req, cand))
}
