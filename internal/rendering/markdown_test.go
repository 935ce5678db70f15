package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devteam-agent/internal/types"
)

func TestProductSpecMarkdown(t *testing.T) {
	spec := &types.ProductSpecification{
		Title:       "TaskFlow",
		Description: "Lightweight task tracking",
		Version:     "2026.08.30",
		SessionID:   "20260830_120000",
		Scope:       types.Scope{InScope: []string{"boards"}, OutOfScope: []string{"billing"}},
		Audience: []types.UserPersona{
			{Name: "Dana", Role: "Lead", Goals: []string{"ship on time"}, TechnicalProficiency: "High"},
		},
		MarketContext: types.MarketContext{
			TargetMarket: []string{"small teams"},
			Competitors:  []types.Competitor{{Name: "Acme", Offering: "hosted boards"}},
			PainPoints:   []string{"overhead"},
		},
		Features: []types.FeatureSpecification{
			{Name: "Board", Description: "kanban", Priority: "high", AcceptanceCriteria: []string{"drag works"}},
		},
		SuccessMetrics: map[string][]string{"adoption": {"weekly active teams"}},
	}

	md, err := ProductSpecMarkdown(spec)
	require.NoError(t, err)

	assert.Contains(t, md, "# Product Specifications")
	assert.Contains(t, md, "**Title:** TaskFlow")
	assert.Contains(t, md, "### Dana (Lead)")
	assert.Contains(t, md, "**Technical Proficiency:** High")
	assert.Contains(t, md, "### Board")
	assert.Contains(t, md, "- drag works")
	assert.Contains(t, md, "### adoption")
}

func TestProductSpecMarkdownNil(t *testing.T) {
	_, err := ProductSpecMarkdown(nil)
	require.Error(t, err)

	var rErr *RenderError
	assert.ErrorAs(t, err, &rErr)
}

func TestStatusReportMarkdown(t *testing.T) {
	report := &types.StatusReport{
		Stages: types.Stages{
			{Name: "product_specs", Status: "done"},
			{Name: "engineering", Status: "blocked", Blockers: []string{"schema review"}},
		},
		Conflicts: []types.RoleConflict{
			{Roles: []string{"architect", "engineer"}, Description: "queue technology"},
		},
		OverallStatus: "at_risk",
		NextActions:   []string{"unblock schema review"},
		Risks: []types.RiskAssessment{
			{Risk: "slip", Probability: "medium", Impact: "high", Mitigation: "timebox", OwnerRole: "architect"},
		},
	}

	md, err := StatusReportMarkdown(report)
	require.NoError(t, err)
	assert.Contains(t, md, "**Overall Status:** at_risk")
	assert.Contains(t, md, "(blocked by: schema review)")
	assert.Contains(t, md, "architect / engineer: queue technology")
	assert.Contains(t, md, "mitigation: timebox")
}

func TestMonitoringReportMarkdown(t *testing.T) {
	report := &types.MonitoringReport{
		LogGroup:        "/prod/api",
		DurationSeconds: 3600,
		Metrics: types.ServiceMetrics{
			ErrorRate:    0.02,
			RequestCount: 12000,
			Health:       "degraded",
			TopErrors:    []types.TopError{{Message: "connection refused", Count: 41}},
		},
	}

	md, err := MonitoringReportMarkdown(report)
	require.NoError(t, err)
	assert.Contains(t, md, "**Log Group:** /prod/api")
	assert.Contains(t, md, "connection refused (41)")
	assert.Contains(t, md, "No anomalies detected.")
}

func TestDocumentationMarkdown(t *testing.T) {
	set := &types.DocumentationSet{
		Endpoints: []types.APIEndpoint{
			{Method: "POST", Path: "/tasks", Description: "create a task", RequestFields: []string{"title"}},
		},
		Components: []types.ComponentDoc{
			{Name: "store", Purpose: "persistence", PublicInterface: []string{"Save", "Load"}},
		},
		Changelog: []types.ChangelogEntry{
			{Version: "0.1.0", Date: "2026-08-30", Changes: []string{"initial release"}},
		},
	}

	md, err := DocumentationMarkdown(set)
	require.NoError(t, err)
	assert.Contains(t, md, "### POST /tasks")
	assert.Contains(t, md, "**Public interface:** Save, Load")
	assert.Contains(t, md, "### 0.1.0 (2026-08-30)")
}
