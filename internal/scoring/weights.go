package scoring

import (
	"fmt"
	"math"

	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// Fixed weights for combining dimension scores into the total.
const (
	skillsWeight     = 0.50
	experienceWeight = 0.25
	projectsWeight   = 0.15
	educationWeight  = 0.10
)

// weightSumTolerance is the allowed deviation of the weight sum from 1.0.
const weightSumTolerance = 0.001

// Weights returns the weight table keyed by dimension name.
func Weights() map[string]float64 {
	return map[string]float64{
		"skills":     skillsWeight,
		"experience": experienceWeight,
		"projects":   projectsWeight,
		"education":  educationWeight,
	}
}

// ValidateWeights checks that the weight table sums to 1.0 within tolerance.
// It is called once at process start; a mismatch is a fatal configuration
// error, not a per-call error.
func ValidateWeights() error {
	sum := 0.0
	for _, weight := range Weights() {
		sum += weight
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return &ConfigurationError{
			Message: fmt.Sprintf("dimension weights sum to %.4f, expected 1.0", sum),
		}
	}
	return nil
}

// Combine applies the fixed weight table to the four dimension scores and
// returns the rounded total.
func Combine(record *types.ScoreRecord) int {
	weights := Weights()
	dimensions := record.Dimensions()

	total := 0.0
	for _, name := range types.DimensionNames {
		total += float64(dimensions[name]) * weights[name]
	}
	return clampScore(int(math.Round(total)))
}

// clampScore bounds an integer score to [0,100]. Scorers clamp defensively
// even when an intermediate computation could leave range due to bonuses.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
