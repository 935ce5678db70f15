// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/devteam-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProductSpec outputs a human-readable summary of the product specification.
func (p *Printer) PrintProductSpec(spec *types.ProductSpecification) {
	if spec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", spec.Title))
	if spec.Version != "" {
		sb.WriteString(fmt.Sprintf("Version:  %s\n", spec.Version))
	}
	sb.WriteString("\n")

	if len(spec.Features) > 0 {
		sb.WriteString("Features:\n")
		count := min(len(spec.Features), maxItemsToShow)
		for i := 0; i < count; i++ {
			feature := spec.Features[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", feature.Name, feature.Priority))
		}
		if len(spec.Features) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(spec.Features)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(spec.Audience) > 0 {
		sb.WriteString("Personas:\n")
		count := min(len(spec.Audience), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", spec.Audience[i].Name, spec.Audience[i].Role))
		}
		if len(spec.Audience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(spec.Audience)-3))
		}
	}

	p.printBox("PRODUCT SPECIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBrainstorm outputs the generated ideas with their evaluation scores.
func (p *Printer) PrintBrainstorm(outcome *types.BrainstormOutcome) {
	if outcome == nil || len(outcome.Ideas) == 0 {
		return
	}

	scores := make(map[string]types.IdeaScore, len(outcome.Evaluation.Scores))
	for _, score := range outcome.Evaluation.Scores {
		scores[score.Title] = score
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ideas generated: %d\n\n", len(outcome.Ideas)))

	count := min(len(outcome.Ideas), maxItemsToShow)
	for i := 0; i < count; i++ {
		idea := outcome.Ideas[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, idea.Title))
		if score, ok := scores[idea.Title]; ok {
			sb.WriteString(fmt.Sprintf("    Feasibility: %d  Innovation: %d  Alignment: %d\n",
				score.Feasibility, score.Innovation, score.Alignment))
		}
	}
	if outcome.RecommendedApproach != "" {
		sb.WriteString(fmt.Sprintf("\nRecommended: %s\n", outcome.RecommendedApproach))
	}

	p.printBox("BRAINSTORM OUTCOME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReviewReport outputs review findings grouped by severity.
func (p *Printer) PrintReviewReport(report *types.ReviewReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	verdict := "CHANGES REQUESTED"
	if report.Approved {
		verdict = "APPROVED"
	}
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", verdict))
	sb.WriteString(fmt.Sprintf("Findings: %d\n", len(report.Findings)))

	if len(report.Findings) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Findings), maxItemsToShow)
		for i := 0; i < count; i++ {
			finding := report.Findings[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", finding.Severity, finding.Description))
		}
		if len(report.Findings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Findings)-maxItemsToShow))
		}
	}

	if len(report.SecurityFindings) > 0 {
		sb.WriteString(fmt.Sprintf("\nSecurity findings: %d\n", len(report.SecurityFindings)))
		for i := 0; i < min(len(report.SecurityFindings), 3); i++ {
			sf := report.SecurityFindings[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", sf.Severity, sf.Vulnerability))
		}
	}

	p.printBox("CODE REVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTestReport outputs the scenario pass/fail summary.
func (p *Printer) PrintTestReport(report *types.TestReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scenarios: %d   Passed: %d   Failed: %d\n",
		len(report.Scenarios), report.Passed, report.Failed))

	if len(report.Verdicts) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Verdicts), maxItemsToShow)
		for i := 0; i < count; i++ {
			verdict := report.Verdicts[i]
			sb.WriteString(fmt.Sprintf("  %-7s %s\n", verdict.Status, verdict.ID))
		}
		if len(report.Verdicts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Verdicts)-maxItemsToShow))
		}
	}

	p.printBox("TEST REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatusReport outputs the per-stage status board.
func (p *Printer) PrintStatusReport(report *types.StatusReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %s\n\n", report.OverallStatus))
	for _, stage := range report.Stages {
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", stage.Status, stage.Name))
	}
	if len(report.NextActions) > 0 {
		sb.WriteString("\nNext actions:\n")
		for i := 0; i < min(len(report.NextActions), 3); i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.NextActions[i]))
		}
	}

	p.printBox("PROJECT STATUS", strings.TrimSuffix(sb.String(), "\n"))
}
