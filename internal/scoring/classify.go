package scoring

import (
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// Classification defaults.
const (
	DefaultThreshold      = 70
	DefaultBorderlineBand = 10
)

// Classify maps a total score and a threshold to a three-tier label. A score
// at or above the threshold is shortlisted; within borderlineBand below it,
// borderline; otherwise rejected.
//
// Classify is a pure function. The threshold itself is per-job mutable state
// owned by the engine, which recomputes every candidate's label whenever it
// changes.
func Classify(total, threshold, borderlineBand int) types.Classification {
	switch {
	case total >= threshold:
		return types.ClassificationShortlisted
	case total >= threshold-borderlineBand:
		return types.ClassificationBorderline
	default:
		return types.ClassificationRejected
	}
}
