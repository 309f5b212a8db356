package ranking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

func recordWithTotal(total int) types.ScoreRecord {
	return types.ScoreRecord{CandidateID: uuid.New(), Total: total}
}

func TestRank_DescendingByTotal(t *testing.T) {
	records := []types.ScoreRecord{
		recordWithTotal(62),
		recordWithTotal(91),
		recordWithTotal(78),
	}

	ranked := Rank(records)
	require.Len(t, ranked, 3)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 91, ranked[0].Record.Total)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, 78, ranked[1].Record.Total)
	assert.Equal(t, 3, ranked[2].Rank)
	assert.Equal(t, 62, ranked[2].Record.Total)
}

func TestRank_TiesKeepInsertionOrder(t *testing.T) {
	first := recordWithTotal(75)
	second := recordWithTotal(75)
	records := []types.ScoreRecord{first, recordWithTotal(80), second}

	ranked := Rank(records)
	require.Len(t, ranked, 3)

	// The earlier-inserted 75 outranks the later one.
	assert.Equal(t, first.CandidateID, ranked[1].Record.CandidateID)
	assert.Equal(t, second.CandidateID, ranked[2].Record.CandidateID)
}

func TestRank_Deterministic(t *testing.T) {
	records := []types.ScoreRecord{
		recordWithTotal(70),
		recordWithTotal(70),
		recordWithTotal(70),
		recordWithTotal(85),
	}

	first := Rank(records)
	second := Rank(records)
	assert.Equal(t, first, second)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	records := []types.ScoreRecord{
		recordWithTotal(10),
		recordWithTotal(90),
	}
	original := records[0].CandidateID

	Rank(records)
	assert.Equal(t, original, records[0].CandidateID)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}
