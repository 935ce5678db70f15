// Package brainstorm implements the Brainstorm Facilitator agent: it expands a
// product specification into candidate solution approaches and ranks them.
package brainstorm

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "brainstorm.json"

// DefaultNumIdeas is used when the caller does not request a specific count.
const DefaultNumIdeas = 3

// Facilitator is the Brainstorm Facilitator agent
type Facilitator struct {
	base *agent.Base
}

// NewFacilitator creates a Brainstorm Facilitator around an existing LLM client.
func NewFacilitator(client llm.Client) *Facilitator {
	return &Facilitator{base: agent.New("brainstorm_facilitator", client)}
}

// GenerateIdeas produces numIdeas candidate solution approaches for the
// product specification. A non-positive count falls back to the default.
func (f *Facilitator) GenerateIdeas(ctx context.Context, specs string, numIdeas int) ([]types.SolutionIdea, error) {
	if strings.TrimSpace(specs) == "" {
		return nil, f.base.Fail("generate_ideas", &agent.ValidationError{Message: "product specification input is empty"})
	}
	if numIdeas <= 0 {
		numIdeas = DefaultNumIdeas
	}

	prompt, err := prompts.Render(promptFile, "generate-ideas", map[string]string{
		"ProductSpecs": specs,
		"NumIdeas":     strconv.Itoa(numIdeas),
	})
	if err != nil {
		return nil, f.base.Fail("generate_ideas", err)
	}

	raw, err := f.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-generate"), llm.TierAdvanced)
	if err != nil {
		return nil, f.base.Fail("generate_ideas", err)
	}

	ideas, err := agent.DecodeJSONSlice[types.SolutionIdea](raw)
	if err != nil {
		return nil, f.base.Fail("generate_ideas", err)
	}
	return ideas, nil
}

// EvaluateIdeas scores the candidate ideas and names the recommended one.
func (f *Facilitator) EvaluateIdeas(ctx context.Context, ideas []types.SolutionIdea) (*types.IdeaEvaluation, error) {
	if len(ideas) == 0 {
		return nil, f.base.Fail("evaluate_ideas", &agent.ValidationError{Message: "no ideas to evaluate"})
	}

	ideasJSON, err := agent.MarshalForPrompt(ideas)
	if err != nil {
		return nil, f.base.Fail("evaluate_ideas", err)
	}

	prompt, err := prompts.Render(promptFile, "evaluate-ideas", map[string]string{
		"Ideas": ideasJSON,
	})
	if err != nil {
		return nil, f.base.Fail("evaluate_ideas", err)
	}

	raw, err := f.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-evaluate"), llm.TierStandard)
	if err != nil {
		return nil, f.base.Fail("evaluate_ideas", err)
	}

	evaluation, err := agent.DecodeJSON[types.IdeaEvaluation](raw)
	if err != nil {
		return nil, f.base.Fail("evaluate_ideas", err)
	}
	return evaluation, nil
}

// Facilitate runs the full brainstorm flow and assembles the outcome artifact.
func (f *Facilitator) Facilitate(ctx context.Context, specs string, numIdeas int) (*types.BrainstormOutcome, error) {
	ideas, err := f.GenerateIdeas(ctx, specs, numIdeas)
	if err != nil {
		return nil, err
	}

	evaluation, err := f.EvaluateIdeas(ctx, ideas)
	if err != nil {
		return nil, err
	}

	return &types.BrainstormOutcome{
		Ideas:               ideas,
		Evaluation:          *evaluation,
		RecommendedApproach: evaluation.RecommendedSolution,
	}, nil
}
