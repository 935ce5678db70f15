package refactor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/agent/agenttest"
	"github.com/jonathan/devteam-agent/internal/llm"
)

const suggestionsJSON = `[
	{
		"location": "internal/api/handler.go",
		"smell": "long function",
		"impact": "medium",
		"effort": "low",
		"suggestion": "split request parsing from business logic"
	}
]`

func TestAnalyzeQualityEmptyCode(t *testing.T) {
	a := NewAnalyst(agenttest.StaticJSON(suggestionsJSON))

	_, err := a.AnalyzeQuality(context.Background(), "", "", "")
	require.Error(t, err)

	var vErr *agent.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestAnalyzeQuality(t *testing.T) {
	a := NewAnalyst(agenttest.StaticJSON(suggestionsJSON))

	suggestions, err := a.AnalyzeQuality(context.Background(), "package api", "", "")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "long function", suggestions[0].Smell)
}

func TestAnalyzeQualityRejectsBadImpact(t *testing.T) {
	a := NewAnalyst(agenttest.StaticJSON(`[{"location": "x", "smell": "y", "impact": "severe", "effort": "low"}]`))

	_, err := a.AnalyzeQuality(context.Background(), "package api", "", "")
	require.Error(t, err)

	var vErr *agent.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Field, "Impact")
}

func TestUpdateAutomationRulesNoSuggestions(t *testing.T) {
	calls := 0
	client := &agenttest.MockLLMClient{
		GenerateContentFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			calls++
			return "rules", nil
		},
	}
	a := NewAnalyst(client)

	rules, err := a.UpdateAutomationRules(context.Background(), "keep functions short", nil)
	require.NoError(t, err)
	assert.Equal(t, "keep functions short", rules, "existing rules pass through untouched")
	assert.Zero(t, calls)
}

func TestAnalyzeFullFlow(t *testing.T) {
	client := &agenttest.MockLLMClient{
		GenerateJSONFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return suggestionsJSON, nil
		},
		GenerateContentFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return "- split long functions\n- keep handlers thin", nil
		},
	}
	a := NewAnalyst(client)

	report, err := a.Analyze(context.Background(), "package api", "complexity: 14", "no public API changes", "")
	require.NoError(t, err)
	require.Len(t, report.Suggestions, 1)
	assert.Contains(t, report.AutomationRules, "keep handlers thin")
}
