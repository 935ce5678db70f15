package types

// RefactorSuggestion is one identified improvement opportunity
type RefactorSuggestion struct {
	Location   string `json:"location" validate:"required"`
	Smell      string `json:"smell" validate:"required"`
	Impact     string `json:"impact" validate:"required,oneof=low medium high"`
	Effort     string `json:"effort" validate:"required,oneof=low medium high"`
	Suggestion string `json:"suggestion"`
}

// RefactorReport is the refactor analyst's output artifact
type RefactorReport struct {
	Suggestions     []RefactorSuggestion `json:"suggestions"`
	AutomationRules string               `json:"automation_rules,omitempty"`
}
