package ranking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

func TestCompare_PerDimensionWinners(t *testing.T) {
	alice := types.ScoreRecord{
		CandidateID: uuid.New(),
		Skills:      90, Experience: 50, Projects: 70, Education: 80,
		Total: 78,
	}
	bob := types.ScoreRecord{
		CandidateID: uuid.New(),
		Skills:      60, Experience: 85, Projects: 95, Education: 40,
		Total: 70,
	}

	comparison, err := Compare([]types.ScoreRecord{alice, bob})
	require.NoError(t, err)
	require.Len(t, comparison.DimensionWinners, 4)

	want := map[string]uuid.UUID{
		"skills":     alice.CandidateID,
		"experience": bob.CandidateID,
		"projects":   bob.CandidateID,
		"education":  alice.CandidateID,
	}
	for _, winner := range comparison.DimensionWinners {
		assert.Equal(t, want[winner.Dimension], winner.CandidateID, winner.Dimension)
	}

	assert.Equal(t, alice.CandidateID, comparison.OverallWinner)
	assert.Equal(t, 78, comparison.OverallScore)
}

func TestCompare_TiesResolveToFirstInList(t *testing.T) {
	first := types.ScoreRecord{CandidateID: uuid.New(), Skills: 80, Total: 80}
	second := types.ScoreRecord{CandidateID: uuid.New(), Skills: 80, Total: 80}

	comparison, err := Compare([]types.ScoreRecord{first, second})
	require.NoError(t, err)

	assert.Equal(t, first.CandidateID, comparison.OverallWinner)
	for _, winner := range comparison.DimensionWinners {
		assert.Equal(t, first.CandidateID, winner.CandidateID, winner.Dimension)
	}
}

func TestCompare_RequiresTwoCandidates(t *testing.T) {
	var insufficient *InsufficientCandidatesError

	_, err := Compare(nil)
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Got)

	_, err = Compare([]types.ScoreRecord{{CandidateID: uuid.New()}})
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 1, insufficient.Got)
}

func TestCompare_ThreeWay(t *testing.T) {
	records := []types.ScoreRecord{
		{CandidateID: uuid.New(), Skills: 40, Total: 55},
		{CandidateID: uuid.New(), Skills: 70, Total: 82},
		{CandidateID: uuid.New(), Skills: 95, Total: 74},
	}

	comparison, err := Compare(records)
	require.NoError(t, err)

	assert.Equal(t, records[1].CandidateID, comparison.OverallWinner)
	assert.Equal(t, records[2].CandidateID, comparison.DimensionWinners[0].CandidateID)
}
