package explanation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/24durgaprasad/HireSense-AI/internal/llm"
	"github.com/24durgaprasad/HireSense-AI/internal/prompts"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

// Generator produces a narrative explanation from an evidence payload. The
// engine treats it as an external collaborator: any error is recovered with
// the deterministic fallback and never propagated as a scoring failure.
type Generator interface {
	Generate(ctx context.Context, ev *Evidence) (*types.Explanation, error)
}

// GeminiGenerator delegates narrative generation to the Gemini client.
type GeminiGenerator struct {
	client llm.Client
}

// NewGeminiGenerator wraps an LLM client as a Generator.
func NewGeminiGenerator(client llm.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

// Generate builds the prompt from the evidence payload, performs a single
// request/response call, and parses the structured explanation. Timeouts,
// malformed output, and transport failures all surface as CollaboratorError.
func (g *GeminiGenerator) Generate(ctx context.Context, ev *Evidence) (*types.Explanation, error) {
	evidenceJSON, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		return nil, &CollaboratorError{Message: "failed to encode evidence", Cause: err}
	}

	template := prompts.MustGet("explanation.json", "generate-explanation")
	prompt := prompts.Format(template, map[string]string{
		"RoleTitle": ev.RoleTitle,
		"Seniority": ev.Seniority,
		"Evidence":  string(evidenceJSON),
	})

	responseText, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &CollaboratorError{Message: "generation request failed", Cause: err}
	}

	var expl types.Explanation
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(responseText)), &expl); err != nil {
		return nil, &CollaboratorError{Message: "malformed collaborator output", Cause: err}
	}
	if err := validateExplanation(&expl); err != nil {
		return nil, &CollaboratorError{Message: "invalid collaborator output", Cause: err}
	}

	return &expl, nil
}

// validateExplanation checks the structural contract of a collaborator
// response before it is accepted.
func validateExplanation(expl *types.Explanation) error {
	if expl.Summary == "" {
		return fmt.Errorf("summary is empty")
	}
	switch expl.Recommendation {
	case types.RecommendationStrongHire, types.RecommendationHire,
		types.RecommendationMaybe, types.RecommendationNoHire:
		return nil
	default:
		return fmt.Errorf("unknown recommendation %q", expl.Recommendation)
	}
}
