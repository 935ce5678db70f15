// Package reporting implements the Project Manager agent: it aggregates the
// other roles' outputs into a status report with a risk assessment.
package reporting

import (
	"context"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "project_manager.json"

// Manager is the Project Manager agent
type Manager struct {
	base *agent.Base
}

// NewManager creates a Project Manager around an existing LLM client.
func NewManager(client llm.Client) *Manager {
	return &Manager{base: agent.New("project_manager", client)}
}

// AggregateStatus combines role outputs and per-stage statuses into a status
// report. roleOutputs maps role name to that role's latest artifact content;
// roleStatuses maps stage name to its current state.
func (m *Manager) AggregateStatus(ctx context.Context, roleOutputs map[string]string, roleStatuses map[string]string) (*types.StatusReport, error) {
	if len(roleOutputs) == 0 && len(roleStatuses) == 0 {
		return nil, m.base.Fail("aggregate_status", &agent.ValidationError{Message: "no role outputs or statuses to aggregate"})
	}

	outputsJSON, err := agent.MarshalForPrompt(roleOutputs)
	if err != nil {
		return nil, m.base.Fail("aggregate_status", err)
	}
	statusesJSON, err := agent.MarshalForPrompt(roleStatuses)
	if err != nil {
		return nil, m.base.Fail("aggregate_status", err)
	}

	prompt, err := prompts.Render(promptFile, "aggregate-status", map[string]string{
		"RoleOutputs":  outputsJSON,
		"RoleStatuses": statusesJSON,
	})
	if err != nil {
		return nil, m.base.Fail("aggregate_status", err)
	}

	raw, err := m.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return nil, m.base.Fail("aggregate_status", err)
	}

	report, err := agent.DecodeJSON[types.StatusReport](raw)
	if err != nil {
		return nil, m.base.Fail("aggregate_status", err)
	}
	return report, nil
}

// AssessRisks derives project-level risks from the aggregated status and any
// additional project context.
func (m *Manager) AssessRisks(ctx context.Context, report *types.StatusReport, projectContext string) ([]types.RiskAssessment, error) {
	statusJSON, err := agent.MarshalForPrompt(report)
	if err != nil {
		return nil, m.base.Fail("assess_risks", err)
	}
	if projectContext == "" {
		projectContext = "(none)"
	}

	prompt, err := prompts.Render(promptFile, "assess-risks", map[string]string{
		"Status":  statusJSON,
		"Context": projectContext,
	})
	if err != nil {
		return nil, m.base.Fail("assess_risks", err)
	}

	raw, err := m.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return nil, m.base.Fail("assess_risks", err)
	}

	risks, err := agent.DecodeJSONSlice[types.RiskAssessment](raw)
	if err != nil {
		return nil, m.base.Fail("assess_risks", err)
	}
	return risks, nil
}

// Report runs the full project manager flow: aggregation then risk
// assessment folded into one report artifact.
func (m *Manager) Report(ctx context.Context, roleOutputs, roleStatuses map[string]string, projectContext string) (*types.StatusReport, error) {
	report, err := m.AggregateStatus(ctx, roleOutputs, roleStatuses)
	if err != nil {
		return nil, err
	}

	risks, err := m.AssessRisks(ctx, report, projectContext)
	if err != nil {
		return nil, err
	}
	report.Risks = risks

	return report, nil
}
