package types

import "time"

// ValidationResult is the approval system's verdict on an artifact
type ValidationResult struct {
	IsApproved  bool     `json:"is_approved"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// RoleFeedback is cross-validation feedback from another role's perspective
type RoleFeedback struct {
	Concerns    []string `json:"concerns"`
	Suggestions []string `json:"suggestions"`
}

// Checkpoint states
const (
	CheckpointPending  = "pending"
	CheckpointApproved = "approved"
	CheckpointRejected = "rejected"
)

// CheckpointStatus tracks the validation state of one approval gate
type CheckpointStatus struct {
	CheckpointID    string                  `json:"checkpoint_id" validate:"required"`
	Stage           string                  `json:"stage" validate:"required"`
	Status          string                  `json:"status" validate:"required,oneof=pending approved rejected"`
	Validation      *ValidationResult       `json:"validation_result,omitempty"`
	CrossValidation map[string]RoleFeedback `json:"cross_validation_results,omitempty"`
	Timestamp       time.Time               `json:"timestamp"`
	ApprovedBy      []string                `json:"approved_by,omitempty"`
	BlockingIssues  []string                `json:"blocking_issues,omitempty"`
}
