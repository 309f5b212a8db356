// Package llm provides a thin client abstraction over the Gemini API for the
// explanation collaborator. The scoring engine never depends on it directly.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: short narrative generation, summaries.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured JSON output.
	TierStandard ModelTier = "standard"
)

// DefaultTimeout bounds a single collaborator call. Scoring never waits
// longer than this for a narrative.
const DefaultTimeout = 20 * time.Second

// Config holds the model configuration for the collaborator.
type Config struct {
	Models  map[ModelTier]string
	Timeout time.Duration
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Timeout: DefaultTimeout,
	}
}

// GetModel returns the model name for a tier, falling back to the standard
// tier, then lite.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}
