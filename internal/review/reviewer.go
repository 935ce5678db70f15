// Package review implements the Reviewer agent: code review findings,
// test-coverage analysis and a security audit over the engineering output.
package review

import (
	"context"
	"strings"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "reviewer.json"

// Reviewer is the Reviewer agent
type Reviewer struct {
	base *agent.Base
}

// NewReviewer creates a Reviewer around an existing LLM client.
func NewReviewer(client llm.Client) *Reviewer {
	return &Reviewer{base: agent.New("reviewer", client)}
}

// reviewVerdict is the shape the review prompt asks for; findings plus the
// overall approval call in one response.
type reviewVerdict struct {
	Findings []types.ReviewFinding `json:"findings" validate:"dive"`
	Approved bool                  `json:"approved"`
	Summary  string                `json:"summary" validate:"required"`
}

// ReviewCode reviews implementation code and returns findings with a verdict.
// context carries plan or requirement text the reviewer should judge against.
func (r *Reviewer) ReviewCode(ctx context.Context, code, reviewContext string) (*types.ReviewReport, error) {
	if strings.TrimSpace(code) == "" {
		return nil, r.base.Fail("review_code", &agent.ValidationError{Message: "code input is empty"})
	}
	if reviewContext == "" {
		reviewContext = "(no additional context)"
	}

	prompt, err := prompts.Render(promptFile, "review-code", map[string]string{
		"Code":    code,
		"Context": reviewContext,
	})
	if err != nil {
		return nil, r.base.Fail("review_code", err)
	}

	raw, err := r.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-review"), llm.TierAdvanced)
	if err != nil {
		return nil, r.base.Fail("review_code", err)
	}

	verdict, err := agent.DecodeJSON[reviewVerdict](raw)
	if err != nil {
		return nil, r.base.Fail("review_code", err)
	}

	return &types.ReviewReport{
		Findings: verdict.Findings,
		Approved: verdict.Approved,
		Summary:  verdict.Summary,
	}, nil
}

// AnalyzeCoverage judges how well the generated tests cover the code.
func (r *Reviewer) AnalyzeCoverage(ctx context.Context, code, tests string) (*types.CoverageAnalysis, error) {
	if strings.TrimSpace(tests) == "" {
		return nil, r.base.Fail("coverage_analysis", &agent.ValidationError{Message: "test code input is empty"})
	}

	prompt, err := prompts.Render(promptFile, "coverage-analysis", map[string]string{
		"Code":  code,
		"Tests": tests,
	})
	if err != nil {
		return nil, r.base.Fail("coverage_analysis", err)
	}

	raw, err := r.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-coverage"), llm.TierStandard)
	if err != nil {
		return nil, r.base.Fail("coverage_analysis", err)
	}

	coverage, err := agent.DecodeJSON[types.CoverageAnalysis](raw)
	if err != nil {
		return nil, r.base.Fail("coverage_analysis", err)
	}
	return coverage, nil
}

// SecurityAudit scans the code for vulnerabilities.
func (r *Reviewer) SecurityAudit(ctx context.Context, code string) ([]types.SecurityFinding, error) {
	if strings.TrimSpace(code) == "" {
		return nil, r.base.Fail("security_audit", &agent.ValidationError{Message: "code input is empty"})
	}

	prompt, err := prompts.Render(promptFile, "security-audit", map[string]string{
		"Code": code,
	})
	if err != nil {
		return nil, r.base.Fail("security_audit", err)
	}

	raw, err := r.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system-security"), llm.TierAdvanced)
	if err != nil {
		return nil, r.base.Fail("security_audit", err)
	}

	findings, err := agent.DecodeJSONSlice[types.SecurityFinding](raw)
	if err != nil {
		return nil, r.base.Fail("security_audit", err)
	}
	return findings, nil
}

// Review runs the full review flow over a code bundle: per-bundle review,
// coverage analysis, then the security audit. A critical security finding
// overrides an otherwise approving verdict.
func (r *Reviewer) Review(ctx context.Context, bundle *types.CodeBundle, reviewContext string) (*types.ReviewReport, error) {
	if bundle == nil || len(bundle.Components) == 0 {
		return nil, r.base.Fail("review", &agent.ValidationError{Message: "code bundle has no components"})
	}

	var code, tests strings.Builder
	for _, component := range bundle.Components {
		code.WriteString("// --- " + component.Path + " ---\n")
		code.WriteString(component.Code)
		code.WriteString("\n")
		if component.TestCode != "" {
			tests.WriteString("// --- " + component.Path + " ---\n")
			tests.WriteString(component.TestCode)
			tests.WriteString("\n")
		}
	}

	report, err := r.ReviewCode(ctx, code.String(), reviewContext)
	if err != nil {
		return nil, err
	}

	if tests.Len() > 0 {
		coverage, err := r.AnalyzeCoverage(ctx, code.String(), tests.String())
		if err != nil {
			return nil, err
		}
		report.Coverage = coverage
	}

	security, err := r.SecurityAudit(ctx, code.String())
	if err != nil {
		return nil, err
	}
	report.SecurityFindings = security

	for _, finding := range security {
		if finding.Severity == "critical" {
			report.Approved = false
			break
		}
	}

	return report, nil
}
