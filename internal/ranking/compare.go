package ranking

import (
	"github.com/google/uuid"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// DimensionWinner names the candidate with the highest score in one
// dimension.
type DimensionWinner struct {
	Dimension   string    `json:"dimension"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Score       int       `json:"score"`
}

// Comparison holds the per-dimension winners and the overall winner for a
// set of two or more candidates.
type Comparison struct {
	DimensionWinners []DimensionWinner `json:"dimension_winners"`
	OverallWinner    uuid.UUID         `json:"overall_winner"`
	OverallScore     int               `json:"overall_score"`
}

// Compare produces per-dimension winners and an overall winner from two or
// more score records. Ties resolve to the first candidate in list order.
// Fewer than two records yield an InsufficientCandidatesError.
func Compare(records []types.ScoreRecord) (*Comparison, error) {
	if len(records) < 2 {
		return nil, &InsufficientCandidatesError{Got: len(records)}
	}

	comparison := &Comparison{
		DimensionWinners: make([]DimensionWinner, 0, len(types.DimensionNames)),
	}

	for _, dim := range types.DimensionNames {
		winner := DimensionWinner{Dimension: dim, CandidateID: records[0].CandidateID, Score: records[0].Dimensions()[dim]}
		for _, record := range records[1:] {
			if score := record.Dimensions()[dim]; score > winner.Score {
				winner.CandidateID = record.CandidateID
				winner.Score = score
			}
		}
		comparison.DimensionWinners = append(comparison.DimensionWinners, winner)
	}

	comparison.OverallWinner = records[0].CandidateID
	comparison.OverallScore = records[0].Total
	for _, record := range records[1:] {
		if record.Total > comparison.OverallScore {
			comparison.OverallWinner = record.CandidateID
			comparison.OverallScore = record.Total
		}
	}

	return comparison, nil
}
