package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/devteam-agent/internal/types"
)

func TestPrintProductSpec(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProductSpec(&types.ProductSpecification{
		Title:   "Task Board",
		Version: "1.0",
		Features: []types.FeatureSpecification{
			{Name: "Kanban view", Priority: "high"},
			{Name: "Labels", Priority: "low"},
		},
		Audience: []types.UserPersona{
			{Name: "Dana", Role: "Team Lead"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "PRODUCT SPECIFICATION")
	assert.Contains(t, out, "Task Board")
	assert.Contains(t, out, "Kanban view (high)")
	assert.Contains(t, out, "Dana (Team Lead)")
}

func TestPrintProductSpecNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProductSpec(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBrainstormTruncatesList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	outcome := &types.BrainstormOutcome{RecommendedApproach: "Idea 1"}
	for i := 0; i < 7; i++ {
		outcome.Ideas = append(outcome.Ideas, types.SolutionIdea{
			Title: "Idea " + string(rune('1'+i)),
		})
	}
	p.PrintBrainstorm(outcome)

	out := buf.String()
	assert.Contains(t, out, "Ideas generated: 7")
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "Recommended: Idea 1")
}

func TestPrintReviewReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReviewReport(&types.ReviewReport{
		Approved: false,
		Summary:  "needs work",
		Findings: []types.ReviewFinding{
			{Severity: "critical", Category: "correctness", Description: "nil deref in handler"},
		},
		SecurityFindings: []types.SecurityFinding{
			{Severity: "high", Vulnerability: "SQL injection in search"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "CHANGES REQUESTED")
	assert.Contains(t, out, "[critical] nil deref in handler")
	assert.Contains(t, out, "SQL injection in search")
}

func TestPrintStatusReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStatusReport(&types.StatusReport{
		OverallStatus: "on_track",
		Stages: types.Stages{
			{Name: "architecture", Status: "done"},
			{Name: "code_bundle", Status: "in_progress"},
		},
		NextActions: []string{"finish engineering stage"},
	})

	out := buf.String()
	assert.Contains(t, out, "on_track")
	assert.Contains(t, out, "architecture")
	assert.Contains(t, out, "finish engineering stage")
}

func TestBoxLinesAreTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStatusReport(&types.StatusReport{
		OverallStatus: strings.Repeat("x", 200),
	})

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
