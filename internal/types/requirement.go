// Package types provides type definitions for structured data used throughout the HireSense engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SkillRequirement represents a single skill a role asks for, with an
// importance weight on a 1-5 scale. A zero importance means the upstream
// parser did not extract one; scorers apply per-list defaults.
type SkillRequirement struct {
	Name       string `json:"name" validate:"required"`
	Category   string `json:"category,omitempty"`
	Importance int    `json:"importance,omitempty" validate:"omitempty,min=1,max=5"`
}

// RequirementProfile represents the structured requirements of a role,
// produced upstream by the job parsing pipeline. The engine consumes it
// read-only and never mutates it.
type RequirementProfile struct {
	JobID            uuid.UUID          `json:"job_id"`
	Title            string             `json:"title" validate:"required"`
	Seniority        string             `json:"seniority,omitempty"`
	RequiredSkills   []SkillRequirement `json:"required_skills" validate:"required,dive"`
	PreferredSkills  []SkillRequirement `json:"preferred_skills,omitempty" validate:"omitempty,dive"`
	MinYears         float64            `json:"min_years" validate:"min=0"`
	MaxYears         *float64           `json:"max_years,omitempty"`
	RequiredDomains  []string           `json:"required_domains,omitempty"`
	PreferredDomains []string           `json:"preferred_domains,omitempty"`
	MinDegree        string             `json:"min_degree,omitempty"`
	PreferredDegree  string             `json:"preferred_degree,omitempty"`
	RequiredFields   []string           `json:"required_fields,omitempty"`
	PreferredFields  []string           `json:"preferred_fields,omitempty"`
}

// Validate checks the structural invariants of the profile. A failure here is
// a contract violation by the upstream producer, not something the engine
// recovers from.
func (p *RequirementProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.MaxYears != nil && *p.MaxYears < p.MinYears {
		return fmt.Errorf("max_years (%.1f) must be >= min_years (%.1f)", *p.MaxYears, p.MinYears)
	}
	return nil
}
