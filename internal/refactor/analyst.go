// Package refactor implements the Refactor Analyst agent: it surfaces code
// smells with prioritized suggestions and maintains the project's automated
// code-style rules from what it keeps finding.
package refactor

import (
	"context"
	"strings"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "refactor.json"

// Analyst is the Refactor Analyst agent
type Analyst struct {
	base *agent.Base
}

// NewAnalyst creates a Refactor Analyst around an existing LLM client.
func NewAnalyst(client llm.Client) *Analyst {
	return &Analyst{base: agent.New("refactor_analyst", client)}
}

// AnalyzeQuality inspects code for refactoring opportunities. metrics and
// constraints are free-form context blocks and may be empty.
func (a *Analyst) AnalyzeQuality(ctx context.Context, code, metrics, constraints string) ([]types.RefactorSuggestion, error) {
	if strings.TrimSpace(code) == "" {
		return nil, a.base.Fail("analyze_quality", &agent.ValidationError{Message: "code input is empty"})
	}
	if metrics == "" {
		metrics = "(none)"
	}
	if constraints == "" {
		constraints = "(none)"
	}

	prompt, err := prompts.Render(promptFile, "analyze-quality", map[string]string{
		"Code":        code,
		"Metrics":     metrics,
		"Constraints": constraints,
	})
	if err != nil {
		return nil, a.base.Fail("analyze_quality", err)
	}

	raw, err := a.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierAdvanced)
	if err != nil {
		return nil, a.base.Fail("analyze_quality", err)
	}

	suggestions, err := agent.DecodeJSONSlice[types.RefactorSuggestion](raw)
	if err != nil {
		return nil, a.base.Fail("analyze_quality", err)
	}
	return suggestions, nil
}

// UpdateAutomationRules folds recurring suggestions into the project's
// automated style rules. existingRules may be empty when no rules file
// exists yet; the returned text is the complete replacement.
func (a *Analyst) UpdateAutomationRules(ctx context.Context, existingRules string, suggestions []types.RefactorSuggestion) (string, error) {
	if len(suggestions) == 0 {
		return existingRules, nil
	}
	if existingRules == "" {
		existingRules = "(no existing rules)"
	}

	suggestionsJSON, err := agent.MarshalForPrompt(suggestions)
	if err != nil {
		return "", a.base.Fail("automation_rules", err)
	}

	prompt, err := prompts.Render(promptFile, "automation-rules", map[string]string{
		"ExistingRules": existingRules,
		"Suggestions":   suggestionsJSON,
	})
	if err != nil {
		return "", a.base.Fail("automation_rules", err)
	}

	rules, err := a.base.Completion(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return "", a.base.Fail("automation_rules", err)
	}
	return llm.CleanJSONBlock(rules), nil
}

// Analyze runs the full refactor flow and assembles the report artifact.
func (a *Analyst) Analyze(ctx context.Context, code, metrics, constraints, existingRules string) (*types.RefactorReport, error) {
	suggestions, err := a.AnalyzeQuality(ctx, code, metrics, constraints)
	if err != nil {
		return nil, err
	}

	rules, err := a.UpdateAutomationRules(ctx, existingRules, suggestions)
	if err != nil {
		return nil, err
	}

	return &types.RefactorReport{
		Suggestions:     suggestions,
		AutomationRules: rules,
	}, nil
}
