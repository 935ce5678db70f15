// Package architecture implements the Architect agent: it designs the system
// architecture for the recommended solution and validates the design against
// common best practices.
package architecture

import (
	"context"
	"strings"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "architect.json"

// Architect is the Architect agent
type Architect struct {
	base *agent.Base
}

// NewArchitect creates an Architect around an existing LLM client.
func NewArchitect(client llm.Client) *Architect {
	return &Architect{base: agent.New("architect", client)}
}

// GenerateArchitecture produces the markdown architecture document for a
// brainstorm outcome.
func (a *Architect) GenerateArchitecture(ctx context.Context, outcome string) (string, error) {
	if strings.TrimSpace(outcome) == "" {
		return "", a.base.Fail("generate_architecture", &agent.ValidationError{Message: "brainstorm outcome input is empty"})
	}

	prompt, err := prompts.Render(promptFile, "generate-architecture", map[string]string{
		"BrainstormOutcome": outcome,
	})
	if err != nil {
		return "", a.base.Fail("generate_architecture", err)
	}

	doc, err := a.base.Completion(ctx, prompt, prompts.MustGet(promptFile, "system-generate"), llm.TierAdvanced)
	if err != nil {
		return "", a.base.Fail("generate_architecture", err)
	}
	return doc, nil
}

// ValidateArchitecture reviews the architecture document for best-practice
// violations and emits structured findings.
func (a *Architect) ValidateArchitecture(ctx context.Context, document string) ([]types.ArchitectureFinding, error) {
	if strings.TrimSpace(document) == "" {
		return nil, a.base.Fail("validate_architecture", &agent.ValidationError{Message: "architecture document input is empty"})
	}

	prompt, err := prompts.Render(promptFile, "validate-architecture", map[string]string{
		"Architecture": document,
	})
	if err != nil {
		return nil, a.base.Fail("validate_architecture", err)
	}

	raw, err := a.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-validate"), llm.TierStandard)
	if err != nil {
		return nil, a.base.Fail("validate_architecture", err)
	}

	findings, err := agent.DecodeJSONSlice[types.ArchitectureFinding](raw)
	if err != nil {
		return nil, a.base.Fail("validate_architecture", err)
	}
	return findings, nil
}

// Design runs the full architecture flow: document generation followed by the
// validation pass, assembled into one artifact.
func (a *Architect) Design(ctx context.Context, outcome string) (*types.ArchitectureDocument, error) {
	doc, err := a.GenerateArchitecture(ctx, outcome)
	if err != nil {
		return nil, err
	}

	findings, err := a.ValidateArchitecture(ctx, doc)
	if err != nil {
		return nil, err
	}

	result := &types.ArchitectureDocument{Document: doc, Findings: findings}
	for _, finding := range findings {
		if finding.Recommendation != "" {
			result.Recommendations = append(result.Recommendations, finding.Recommendation)
		}
	}
	return result, nil
}
