package scoring

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

func validRequirement() *types.RequirementProfile {
	return &types.RequirementProfile{
		JobID: uuid.New(),
		Title: "Backend Engineer",
		RequiredSkills: []types.SkillRequirement{
			{Name: "Go", Importance: 3},
			{Name: "React", Importance: 3},
		},
		MinYears: 10,
	}
}

func validCandidate() *types.CandidateProfile {
	cand := &types.CandidateProfile{
		ID:     uuid.New(),
		Skills: []types.Skill{{Name: "Go"}},
		Positions: []types.Position{
			{Title: "Engineer", DurationMonths: 48},
		},
	}
	cand.Summary = types.DeriveSummary(cand)
	return cand
}

func TestScore_NilProfiles(t *testing.T) {
	var violation *ContractViolationError

	_, err := Score(nil, validCandidate())
	require.ErrorAs(t, err, &violation)

	_, err = Score(validRequirement(), nil)
	require.ErrorAs(t, err, &violation)
}

func TestScore_MissingRequiredFields(t *testing.T) {
	var violation *ContractViolationError

	req := validRequirement()
	req.Title = ""
	_, err := Score(req, validCandidate())
	require.ErrorAs(t, err, &violation)

	req = validRequirement()
	req.RequiredSkills = nil
	_, err = Score(req, validCandidate())
	require.ErrorAs(t, err, &violation)

	cand := validCandidate()
	cand.Skills = nil
	_, err = Score(validRequirement(), cand)
	require.ErrorAs(t, err, &violation)
}

func TestScore_WeightedTotal(t *testing.T) {
	req := validRequirement()
	cand := validCandidate()

	record, err := Score(req, cand)
	require.NoError(t, err)

	// Only Go matches (rate 0.5): round((0.7*0.5+0.3*1.0)*100) = 65.
	assert.Equal(t, 65, record.Skills)
	// 4 of 10 required years.
	assert.Equal(t, 40, record.Experience)
	// No projects listed.
	assert.Equal(t, 50, record.Projects)
	// No degree requirements.
	assert.Equal(t, 100, record.Education)

	// 0.50*65 + 0.25*40 + 0.15*50 + 0.10*100 = 60.
	assert.Equal(t, 60, record.Total)
	assert.Equal(t, Combine(record), record.Total)

	assert.Equal(t, req.JobID, record.JobID)
	assert.Equal(t, cand.ID, record.CandidateID)
}

func TestValidateWeights(t *testing.T) {
	assert.NoError(t, ValidateWeights())
}

func TestWeights_CoversEveryDimension(t *testing.T) {
	weights := Weights()
	require.Len(t, weights, len(types.DimensionNames))

	sum := 0.0
	for _, name := range types.DimensionNames {
		weight, ok := weights[name]
		require.True(t, ok, "missing weight for %s", name)
		sum += weight
	}
	assert.InDelta(t, 1.0, sum, weightSumTolerance)
}

func TestCombine_Rounding(t *testing.T) {
	record := &types.ScoreRecord{Skills: 80, Experience: 60, Projects: 40, Education: 100}
	// 40 + 15 + 6 + 10 = 71.
	assert.Equal(t, 71, Combine(record))
}

func TestCombine_Clamped(t *testing.T) {
	assert.Equal(t, 100, Combine(&types.ScoreRecord{Skills: 100, Experience: 100, Projects: 100, Education: 100}))
	assert.Equal(t, 0, Combine(&types.ScoreRecord{}))
}

// TestScore_RandomizedBounds feeds randomly shaped but contract-valid profiles
// through the full pipeline and checks every score lands in [0,100].
func TestScore_RandomizedBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	pool := []string{"Go", "Python", "React", "Kubernetes", "PostgreSQL", "AWS", "Terraform", "Kafka"}
	degrees := []string{"", "high_school", "certification", "associate", "bachelor", "master", "phd"}
	domains := []string{"fintech", "e-commerce", "healthcare", "logistics"}

	pick := func(n int) []string {
		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, pool[rng.Intn(len(pool))])
		}
		return out
	}

	for i := 0; i < 200; i++ {
		req := &types.RequirementProfile{
			JobID:          uuid.New(),
			Title:          "Engineer",
			RequiredSkills: []types.SkillRequirement{},
			MinYears:       float64(rng.Intn(16)),
		}
		for _, name := range pick(rng.Intn(4)) {
			req.RequiredSkills = append(req.RequiredSkills, types.SkillRequirement{Name: name, Importance: rng.Intn(6)})
		}
		for _, name := range pick(rng.Intn(3)) {
			req.PreferredSkills = append(req.PreferredSkills, types.SkillRequirement{Name: name})
		}
		if rng.Intn(2) == 0 {
			max := req.MinYears + float64(rng.Intn(10))
			req.MaxYears = &max
		}
		if rng.Intn(2) == 0 {
			req.RequiredDomains = []string{domains[rng.Intn(len(domains))]}
		}
		req.MinDegree = degrees[rng.Intn(len(degrees))]
		req.RequiredFields = pick(rng.Intn(2))

		cand := &types.CandidateProfile{ID: uuid.New(), Skills: []types.Skill{}}
		for _, name := range pick(rng.Intn(6)) {
			cand.Skills = append(cand.Skills, types.Skill{Name: name})
		}
		for j := 0; j < rng.Intn(4); j++ {
			cand.Positions = append(cand.Positions, types.Position{
				Title:          "Engineer",
				DurationMonths: rng.Intn(120),
				Technologies:   pick(rng.Intn(3)),
				Domain:         domains[rng.Intn(len(domains))],
			})
		}
		for j := 0; j < rng.Intn(3); j++ {
			cand.Projects = append(cand.Projects, types.Project{
				Name:         "project",
				Technologies: pick(rng.Intn(4)),
			})
		}
		if lvl := degrees[rng.Intn(len(degrees))]; lvl != "" {
			cand.Education = append(cand.Education, types.Education{DegreeLevel: lvl, Field: pool[rng.Intn(len(pool))]})
		}
		cand.Summary = types.DeriveSummary(cand)

		record, err := Score(req, cand)
		require.NoError(t, err, "case %d", i)

		for name, score := range record.Dimensions() {
			assert.GreaterOrEqual(t, score, 0, "case %d dimension %s", i, name)
			assert.LessOrEqual(t, score, 100, "case %d dimension %s", i, name)
		}
		assert.GreaterOrEqual(t, record.Total, 0, "case %d", i)
		assert.LessOrEqual(t, record.Total, 100, "case %d", i)
	}
}
