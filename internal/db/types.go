package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a pipeline run record
type Run struct {
	ID           uuid.UUID  `json:"id"`
	ProjectName  string     `json:"project_name"`
	Requirements string     `json:"requirements"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Artifact stage constants for known artifact types
const (
	StageProductSpecs   = "product_specs"
	StageBrainstorm     = "brainstorm"
	StageArchitecture   = "architecture"
	StagePlan           = "development_plan"
	StageCode           = "code_bundle"
	StageReview         = "review_report"
	StageTestReport     = "test_report"
	StageMonitoring     = "monitoring_report"
	StageRefactor       = "refactor_report"
	StageStatus         = "status_report"
	StageDocumentation  = "documentation"
	StageSpecMarkdown   = "product_specs_md"
	StageArchMarkdown   = "architecture_md"
	StageDocsMarkdown   = "documentation_md"
	StageStatusMarkdown = "status_report_md"
)

// Stage category constants
const (
	CategoryProduct     = "product"
	CategoryDesign      = "design"
	CategoryEngineering = "engineering"
	CategoryQuality     = "quality"
	CategoryOperations  = "operations"
	CategoryReporting   = "reporting"
)

// Run status constants
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)
