package types

// WorkflowStage is the project manager's view of one pipeline stage
type WorkflowStage struct {
	Name     string   `json:"name" validate:"required"`
	Status   string   `json:"status" validate:"required,oneof=pending in_progress done blocked"`
	Blockers []string `json:"blockers"`
}

// RoleConflict records a disagreement between two or more role outputs
type RoleConflict struct {
	Roles       []string `json:"roles" validate:"min=2"`
	Description string   `json:"description" validate:"required"`
}

// RiskAssessment is one project-level risk with its mitigation
type RiskAssessment struct {
	Risk        string `json:"risk" validate:"required"`
	Probability string `json:"probability" validate:"required,oneof=low medium high"`
	Impact      string `json:"impact" validate:"required,oneof=low medium high"`
	Mitigation  string `json:"mitigation"`
	OwnerRole   string `json:"owner_role"`
}

// StatusReport is the project manager's output artifact
type StatusReport struct {
	Stages        Stages           `json:"stages" validate:"min=1,dive"`
	Conflicts     []RoleConflict   `json:"conflicts"`
	OverallStatus string           `json:"overall_status" validate:"required"`
	NextActions   []string         `json:"next_actions"`
	Risks         []RiskAssessment `json:"risks,omitempty"`
}

// Stages is a named slice so report templates can range over it directly.
type Stages []WorkflowStage
