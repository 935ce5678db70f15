package types

// ComponentPlan describes one component to be developed
type ComponentPlan struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Dependencies    []string `json:"dependencies"`
	Complexity      string   `json:"complexity" validate:"omitempty,oneof=low medium high"`
	EstimatedEffort string   `json:"estimated_effort"`
	Pseudocode      string   `json:"pseudocode,omitempty"`
}

// PlannedFile maps a path in the generated project to its purpose
type PlannedFile struct {
	Path    string `json:"path" validate:"required"`
	Purpose string `json:"purpose"`
}

// TestingStrategy lists the planned test coverage per level
type TestingStrategy struct {
	Unit        []string `json:"unit"`
	Integration []string `json:"integration"`
	EndToEnd    []string `json:"end_to_end"`
}

// ExternalIntegration describes a third party dependency of the planned system
type ExternalIntegration struct {
	Name             string   `json:"name" validate:"required"`
	Purpose          string   `json:"purpose"`
	AuthRequirements string   `json:"auth_requirements"`
	RateLimits       string   `json:"rate_limits"`
	CostImplications string   `json:"cost_implications"`
	Considerations   []string `json:"considerations"`
}

// DevelopmentPlan is the planner's output artifact
type DevelopmentPlan struct {
	Components          []ComponentPlan       `json:"components" validate:"min=1,dive"`
	FileStructure       []PlannedFile         `json:"file_structure"`
	ImplementationOrder []string              `json:"implementation_order" validate:"required,min=1"`
	ParallelGroups      [][]string            `json:"parallel_groups"`
	TestingStrategy     TestingStrategy       `json:"testing_strategy"`
	Documentation       []string              `json:"documentation"`
	Integrations        []ExternalIntegration `json:"external_integrations,omitempty"`
}
