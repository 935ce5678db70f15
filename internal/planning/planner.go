// Package planning implements the Planner agent: it breaks the architecture
// down into a concrete development plan with pseudocode and integration notes.
package planning

import (
	"context"
	"strings"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "planner.json"

// Planner is the Planner agent
type Planner struct {
	base *agent.Base
}

// NewPlanner creates a Planner around an existing LLM client.
func NewPlanner(client llm.Client) *Planner {
	return &Planner{base: agent.New("planner", client)}
}

// CreatePlan produces the development plan for an architecture document.
func (p *Planner) CreatePlan(ctx context.Context, architectureDoc string) (*types.DevelopmentPlan, error) {
	if strings.TrimSpace(architectureDoc) == "" {
		return nil, p.base.Fail("development_plan", &agent.ValidationError{Message: "architecture input is empty"})
	}

	prompt, err := prompts.Render(promptFile, "development-plan", map[string]string{
		"Architecture": architectureDoc,
	})
	if err != nil {
		return nil, p.base.Fail("development_plan", err)
	}

	raw, err := p.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-plan"), llm.TierAdvanced)
	if err != nil {
		return nil, p.base.Fail("development_plan", err)
	}

	plan, err := agent.DecodeJSON[types.DevelopmentPlan](raw)
	if err != nil {
		return nil, p.base.Fail("development_plan", err)
	}
	return plan, nil
}

// GeneratePseudocode produces pseudocode for a single planned component.
func (p *Planner) GeneratePseudocode(ctx context.Context, component *types.ComponentPlan) (string, error) {
	componentJSON, err := agent.MarshalForPrompt(component)
	if err != nil {
		return "", p.base.Fail("component_pseudocode", err)
	}

	prompt, err := prompts.Render(promptFile, "component-pseudocode", map[string]string{
		"Component": componentJSON,
	})
	if err != nil {
		return "", p.base.Fail("component_pseudocode", err)
	}

	pseudocode, err := p.base.Completion(ctx, prompt, prompts.MustGet(promptFile, "system-pseudocode"), llm.TierStandard)
	if err != nil {
		return "", p.base.Fail("component_pseudocode", err)
	}
	return pseudocode, nil
}

// IdentifyIntegrations lists the external services the planned system depends on.
func (p *Planner) IdentifyIntegrations(ctx context.Context, plan *types.DevelopmentPlan) ([]types.ExternalIntegration, error) {
	planJSON, err := agent.MarshalForPrompt(plan)
	if err != nil {
		return nil, p.base.Fail("external_integrations", err)
	}

	prompt, err := prompts.Render(promptFile, "external-integrations", map[string]string{
		"Plan": planJSON,
	})
	if err != nil {
		return nil, p.base.Fail("external_integrations", err)
	}

	raw, err := p.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-integrations"), llm.TierStandard)
	if err != nil {
		return nil, p.base.Fail("external_integrations", err)
	}

	integrations, err := agent.DecodeJSONSlice[types.ExternalIntegration](raw)
	if err != nil {
		return nil, p.base.Fail("external_integrations", err)
	}
	return integrations, nil
}

// Plan runs the full planning flow: development plan, per-component
// pseudocode, then external integration analysis.
func (p *Planner) Plan(ctx context.Context, architectureDoc string) (*types.DevelopmentPlan, error) {
	plan, err := p.CreatePlan(ctx, architectureDoc)
	if err != nil {
		return nil, err
	}

	for i := range plan.Components {
		pseudocode, err := p.GeneratePseudocode(ctx, &plan.Components[i])
		if err != nil {
			return nil, err
		}
		plan.Components[i].Pseudocode = pseudocode
	}

	integrations, err := p.IdentifyIntegrations(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.Integrations = integrations

	return plan, nil
}
