// Package qa implements the QA Engineer agent: it designs test scenarios for
// the generated code, executes scripted UI scenarios against a running
// instance, and produces the test report.
package qa

import (
	"context"
	"strings"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "qa.json"

// ScenarioRunner executes one UI scenario against a running instance.
type ScenarioRunner interface {
	RunScenario(ctx context.Context, baseURL string, scenario *types.TestScenario) (*types.TestVerdict, error)
}

// Engineer is the QA Engineer agent
type Engineer struct {
	base   *agent.Base
	runner ScenarioRunner
}

// NewEngineer creates a QA Engineer around an existing LLM client. The runner
// may be nil, in which case UI scenarios are reported as skipped.
func NewEngineer(client llm.Client, runner ScenarioRunner) *Engineer {
	return &Engineer{
		base:   agent.New("qa_engineer", client),
		runner: runner,
	}
}

// GenerateScenarios designs test scenarios from the implementation code and
// the review report.
func (e *Engineer) GenerateScenarios(ctx context.Context, code, review string) ([]types.TestScenario, error) {
	if strings.TrimSpace(code) == "" {
		return nil, e.base.Fail("test_scenarios", &agent.ValidationError{Message: "code input is empty"})
	}
	if review == "" {
		review = "(no review available)"
	}

	prompt, err := prompts.Render(promptFile, "test-scenarios", map[string]string{
		"Code":   code,
		"Review": review,
	})
	if err != nil {
		return nil, e.base.Fail("test_scenarios", err)
	}

	raw, err := e.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-scenarios"), llm.TierAdvanced)
	if err != nil {
		return nil, e.base.Fail("test_scenarios", err)
	}

	scenarios, err := agent.DecodeJSONSlice[types.TestScenario](raw)
	if err != nil {
		return nil, e.base.Fail("test_scenarios", err)
	}
	return scenarios, nil
}

// ExecuteUIScenarios runs every ui-typed scenario through the runner. Non-ui
// scenarios are untouched; ui scenarios without a runner are skipped rather
// than failed.
func (e *Engineer) ExecuteUIScenarios(ctx context.Context, baseURL string, scenarios []types.TestScenario) ([]types.TestVerdict, error) {
	var verdicts []types.TestVerdict
	for i := range scenarios {
		scenario := &scenarios[i]
		if scenario.Type != "ui" {
			continue
		}
		if e.runner == nil || baseURL == "" {
			verdicts = append(verdicts, types.TestVerdict{
				ID:     scenario.ID,
				Status: "skipped",
				Notes:  "no browser runner configured",
			})
			continue
		}

		verdict, err := e.runner.RunScenario(ctx, baseURL, scenario)
		if err != nil {
			return nil, e.base.Fail("ui_scenarios", err)
		}
		verdicts = append(verdicts, *verdict)
	}
	return verdicts, nil
}

// EvaluateResults turns raw verdicts into the final test report.
func (e *Engineer) EvaluateResults(ctx context.Context, scenarios []types.TestScenario, verdicts []types.TestVerdict) (*types.TestReport, error) {
	if len(scenarios) == 0 {
		return nil, e.base.Fail("evaluate_results", &agent.ValidationError{Message: "no scenarios to evaluate"})
	}

	scenariosJSON, err := agent.MarshalForPrompt(scenarios)
	if err != nil {
		return nil, e.base.Fail("evaluate_results", err)
	}
	verdictsJSON, err := agent.MarshalForPrompt(verdicts)
	if err != nil {
		return nil, e.base.Fail("evaluate_results", err)
	}

	prompt, err := prompts.Render(promptFile, "evaluate-results", map[string]string{
		"Scenarios": scenariosJSON,
		"Results":   verdictsJSON,
	})
	if err != nil {
		return nil, e.base.Fail("evaluate_results", err)
	}

	raw, err := e.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-evaluate"), llm.TierStandard)
	if err != nil {
		return nil, e.base.Fail("evaluate_results", err)
	}

	evaluation, err := agent.DecodeJSON[resultEvaluation](raw)
	if err != nil {
		return nil, e.base.Fail("evaluate_results", err)
	}
	return &types.TestReport{
		Scenarios: scenarios,
		Passed:    evaluation.Passed,
		Failed:    evaluation.Failed,
		Verdicts:  evaluation.Verdicts,
		Summary:   evaluation.Summary,
	}, nil
}

// resultEvaluation is the shape the evaluate-results prompt asks for.
type resultEvaluation struct {
	Passed   int                 `json:"passed"`
	Failed   int                 `json:"failed"`
	Verdicts []types.TestVerdict `json:"verdicts" validate:"dive"`
	Summary  string              `json:"summary" validate:"required"`
}

// Test runs the full QA flow: scenario design, UI execution when a target URL
// is provided, then result evaluation.
func (e *Engineer) Test(ctx context.Context, code, review, baseURL string) (*types.TestReport, error) {
	scenarios, err := e.GenerateScenarios(ctx, code, review)
	if err != nil {
		return nil, err
	}

	verdicts, err := e.ExecuteUIScenarios(ctx, baseURL, scenarios)
	if err != nil {
		return nil, err
	}

	return e.EvaluateResults(ctx, scenarios, verdicts)
}
