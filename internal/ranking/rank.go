// Package ranking orders scored candidates and produces N-way comparisons.
package ranking

import (
	"sort"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// RankedCandidate pairs a score record with its 1-based rank position.
type RankedCandidate struct {
	Rank   int               `json:"rank"`
	Record types.ScoreRecord `json:"record"`
}

// Rank orders score records by total score descending and assigns 1-based
// rank positions. The sort is stable: candidates with equal totals keep their
// original insertion order, so an earlier-created candidate never loses its
// position to a later one with the same score. Re-ranking an unchanged set
// yields identical assignments.
//
// The input slice is not mutated.
func Rank(records []types.ScoreRecord) []RankedCandidate {
	ranked := make([]RankedCandidate, len(records))
	for i, record := range records {
		ranked[i] = RankedCandidate{Record: record}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Record.Total > ranked[j].Record.Total
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
