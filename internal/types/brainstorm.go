package types

// SolutionIdea is one candidate approach from the brainstorm stage
type SolutionIdea struct {
	Title        string   `json:"title" validate:"required"`
	Approach     string   `json:"approach" validate:"required"`
	Architecture string   `json:"architecture"`
	Advantages   []string `json:"advantages"`
	Challenges   []string `json:"challenges"`
	Timeline     string   `json:"timeline"`
	Resources    []string `json:"resources"`
}

// IdeaScore holds the per-criterion 1-10 rating of a single idea
type IdeaScore struct {
	Title             string `json:"title" validate:"required"`
	Feasibility       int    `json:"feasibility" validate:"min=1,max=10"`
	Innovation        int    `json:"innovation" validate:"min=1,max=10"`
	Alignment         int    `json:"alignment" validate:"min=1,max=10"`
	CostEffectiveness int    `json:"cost_effectiveness" validate:"min=1,max=10"`
}

// IdeaEvaluation ranks the generated ideas and names the recommended one
type IdeaEvaluation struct {
	Scores              []IdeaScore         `json:"scores" validate:"min=1,dive"`
	Strengths           map[string][]string `json:"strengths"`
	Weaknesses          map[string][]string `json:"weaknesses"`
	RecommendedSolution string              `json:"recommended_solution" validate:"required"`
	Rationale           string              `json:"rationale"`
}

// BrainstormOutcome is the brainstorm stage's output artifact
type BrainstormOutcome struct {
	Ideas               []SolutionIdea `json:"ideas" validate:"min=1,dive"`
	Evaluation          IdeaEvaluation `json:"evaluation"`
	RecommendedApproach string         `json:"recommended_approach"`
}
