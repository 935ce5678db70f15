// Package types provides type definitions for the structured JSON artifacts
// exchanged between pipeline stages.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MarketContext represents the market analysis generated from raw requirements
type MarketContext struct {
	TargetMarket     []string          `json:"target_market" validate:"required,min=1"`
	Competitors      []Competitor      `json:"competitors"`
	MarketTrends     []string          `json:"market_trends"`
	UserDemographics map[string]string `json:"user_demographics"`
	PainPoints       []string          `json:"pain_points" validate:"required,min=1"`
	Opportunities    []string          `json:"opportunities"`
}

// Competitor represents a single competing offering
type Competitor struct {
	Name     string `json:"name" validate:"required"`
	Offering string `json:"offering"`
}

// UserPersona represents one user segment. TechnicalProficiency defaults to
// "Medium" when the model omits it; Normalize applies the default.
type UserPersona struct {
	Name                 string            `json:"name" validate:"required"`
	Role                 string            `json:"role" validate:"required"`
	Goals                []string          `json:"goals" validate:"required,min=1"`
	Challenges           []string          `json:"challenges"`
	Preferences          map[string]string `json:"preferences"`
	TechnicalProficiency string            `json:"technical_proficiency"`
}

// DefaultTechnicalProficiency is assumed when a persona response omits the field.
const DefaultTechnicalProficiency = "Medium"

// Normalize fills defaulted optional fields in place.
func (p *UserPersona) Normalize() {
	if p.TechnicalProficiency == "" {
		p.TechnicalProficiency = DefaultTechnicalProficiency
	}
}

// FeatureSpecification represents a single planned product feature
type FeatureSpecification struct {
	Name                  string   `json:"name" validate:"required"`
	Description           string   `json:"description" validate:"required"`
	Priority              string   `json:"priority" validate:"required,oneof=high medium low"`
	UserStories           []string `json:"user_stories"`
	AcceptanceCriteria    []string `json:"acceptance_criteria" validate:"required,min=1"`
	TechnicalRequirements []string `json:"technical_requirements"`
	Dependencies          []string `json:"dependencies"`
	EstimatedEffort       string   `json:"estimated_effort"`
	Risks                 []string `json:"risks"`
}

// Scope separates what the product will and will not do
type Scope struct {
	InScope    []string `json:"in_scope" validate:"required,min=1"`
	OutOfScope []string `json:"out_of_scope"`
}

// ProductSpecification is the product manager's output artifact
type ProductSpecification struct {
	Title                 string                 `json:"title" validate:"required"`
	Description           string                 `json:"description" validate:"required"`
	Version               string                 `json:"version"`
	Scope                 Scope                  `json:"scope"`
	Audience              []UserPersona          `json:"audience" validate:"min=1,dive"`
	MarketContext         MarketContext          `json:"market_context"`
	Features              []FeatureSpecification `json:"features" validate:"min=1,dive"`
	SuccessMetrics        map[string][]string    `json:"success_metrics"`
	TechnicalRequirements []string               `json:"technical_requirements"`
	Constraints           []string               `json:"constraints"`
	Timeline              map[string]string      `json:"timeline"`
	Dependencies          map[string][]string    `json:"dependencies"`
	RisksAndMitigations   map[string][]string    `json:"risks_and_mitigations"`
	Assumptions           []string               `json:"assumptions"`
	SessionID             string                 `json:"session_id,omitempty"`
}
