package types

// TestStep is one scripted action in a UI scenario
type TestStep struct {
	Action   string `json:"action" validate:"required,oneof=click fill check assert_text assert_element"`
	Selector string `json:"selector" validate:"required"`
	Value    string `json:"value,omitempty"`
}

// TestScenario is one planned test case from the QA stage
type TestScenario struct {
	ID       string     `json:"id" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Type     string     `json:"type" validate:"required,oneof=functional edge integration ui"`
	Path     string     `json:"path,omitempty"`
	Steps    []TestStep `json:"steps,omitempty" validate:"omitempty,dive"`
	Expected string     `json:"expected"`
}

// TestVerdict is the outcome of a single scenario
type TestVerdict struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=pass fail skipped"`
	Notes  string `json:"notes"`
}

// TestReport is the QA stage's output artifact
type TestReport struct {
	Scenarios []TestScenario `json:"scenarios" validate:"min=1,dive"`
	Passed    int            `json:"passed"`
	Failed    int            `json:"failed"`
	Verdicts  []TestVerdict  `json:"verdicts"`
	Summary   string         `json:"summary"`
}
