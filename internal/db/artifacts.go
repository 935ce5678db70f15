package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/devteam-agent/internal/types"
)

// GetProductSpecByRunID loads the product specification stored for a run
func (db *DB) GetProductSpecByRunID(ctx context.Context, runID uuid.UUID) (*types.ProductSpecification, error) {
	content, err := db.GetArtifact(ctx, runID, StageProductSpecs)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var spec types.ProductSpecification
	if err := json.Unmarshal(content, &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product specification: %w", err)
	}
	return &spec, nil
}

// GetDevelopmentPlanByRunID loads the development plan stored for a run
func (db *DB) GetDevelopmentPlanByRunID(ctx context.Context, runID uuid.UUID) (*types.DevelopmentPlan, error) {
	content, err := db.GetArtifact(ctx, runID, StagePlan)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var plan types.DevelopmentPlan
	if err := json.Unmarshal(content, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal development plan: %w", err)
	}
	return &plan, nil
}

// GetCodeBundleByRunID loads the generated code bundle stored for a run
func (db *DB) GetCodeBundleByRunID(ctx context.Context, runID uuid.UUID) (*types.CodeBundle, error) {
	content, err := db.GetArtifact(ctx, runID, StageCode)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var bundle types.CodeBundle
	if err := json.Unmarshal(content, &bundle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal code bundle: %w", err)
	}
	return &bundle, nil
}

// GetReviewReportByRunID loads the review report stored for a run
func (db *DB) GetReviewReportByRunID(ctx context.Context, runID uuid.UUID) (*types.ReviewReport, error) {
	content, err := db.GetArtifact(ctx, runID, StageReview)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var report types.ReviewReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal review report: %w", err)
	}
	return &report, nil
}

// GetTestReportByRunID loads the QA test report stored for a run
func (db *DB) GetTestReportByRunID(ctx context.Context, runID uuid.UUID) (*types.TestReport, error) {
	content, err := db.GetArtifact(ctx, runID, StageTestReport)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var report types.TestReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal test report: %w", err)
	}
	return &report, nil
}
