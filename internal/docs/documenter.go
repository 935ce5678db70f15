// Package docs implements the Documenter agent: API documentation, component
// docs and a changelog derived from the finished implementation.
package docs

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "documenter.json"

// Documenter is the Documenter agent
type Documenter struct {
	base *agent.Base
}

// NewDocumenter creates a Documenter around an existing LLM client.
func NewDocumenter(client llm.Client) *Documenter {
	return &Documenter{base: agent.New("documenter", client)}
}

// DocumentAPI extracts endpoint documentation from the architecture and code.
func (d *Documenter) DocumentAPI(ctx context.Context, architectureDoc, code string) ([]types.APIEndpoint, error) {
	if strings.TrimSpace(code) == "" {
		return nil, d.base.Fail("api_docs", &agent.ValidationError{Message: "code input is empty"})
	}
	if architectureDoc == "" {
		architectureDoc = "(no architecture document)"
	}

	prompt, err := prompts.Render(promptFile, "api-docs", map[string]string{
		"Architecture": architectureDoc,
		"Code":         code,
	})
	if err != nil {
		return nil, d.base.Fail("api_docs", err)
	}

	raw, err := d.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return nil, d.base.Fail("api_docs", err)
	}

	endpoints, err := agent.DecodeJSONSlice[types.APIEndpoint](raw)
	if err != nil {
		return nil, d.base.Fail("api_docs", err)
	}
	return endpoints, nil
}

// DocumentComponents documents each component's public surface.
func (d *Documenter) DocumentComponents(ctx context.Context, code string) ([]types.ComponentDoc, error) {
	if strings.TrimSpace(code) == "" {
		return nil, d.base.Fail("component_docs", &agent.ValidationError{Message: "code input is empty"})
	}

	prompt, err := prompts.Render(promptFile, "component-docs", map[string]string{
		"Code": code,
	})
	if err != nil {
		return nil, d.base.Fail("component_docs", err)
	}

	raw, err := d.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return nil, d.base.Fail("component_docs", err)
	}

	components, err := agent.DecodeJSONSlice[types.ComponentDoc](raw)
	if err != nil {
		return nil, d.base.Fail("component_docs", err)
	}
	return components, nil
}

// GenerateChangelog produces changelog entries for the delivered components.
// Entries missing a date get today's.
func (d *Documenter) GenerateChangelog(ctx context.Context, components []types.ComponentDoc, planSummary string) ([]types.ChangelogEntry, error) {
	componentsJSON, err := agent.MarshalForPrompt(components)
	if err != nil {
		return nil, d.base.Fail("changelog", err)
	}
	if planSummary == "" {
		planSummary = "(no plan summary)"
	}

	prompt, err := prompts.Render(promptFile, "changelog", map[string]string{
		"Components": componentsJSON,
		"Plan":       planSummary,
	})
	if err != nil {
		return nil, d.base.Fail("changelog", err)
	}

	raw, err := d.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return nil, d.base.Fail("changelog", err)
	}

	entries, err := agent.DecodeJSONSlice[types.ChangelogEntry](raw)
	if err != nil {
		return nil, d.base.Fail("changelog", err)
	}
	for i := range entries {
		if entries[i].Date == "" {
			entries[i].Date = time.Now().Format("2006-01-02")
		}
	}
	return entries, nil
}

// Document runs the full documentation flow and assembles the set artifact.
func (d *Documenter) Document(ctx context.Context, architectureDoc, code, planSummary string) (*types.DocumentationSet, error) {
	endpoints, err := d.DocumentAPI(ctx, architectureDoc, code)
	if err != nil {
		return nil, err
	}

	components, err := d.DocumentComponents(ctx, code)
	if err != nil {
		return nil, err
	}

	changelog, err := d.GenerateChangelog(ctx, components, planSummary)
	if err != nil {
		return nil, err
	}

	return &types.DocumentationSet{
		Endpoints:  endpoints,
		Components: components,
		Changelog:  changelog,
	}, nil
}
