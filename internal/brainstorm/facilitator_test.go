package brainstorm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/agent/agenttest"
	"github.com/jonathan/devteam-agent/internal/llm"
)

const ideasJSON = `[
	{"title": "Monolith first", "approach": "single deployable", "advantages": ["simple ops"]},
	{"title": "Event-driven", "approach": "queue-backed services", "challenges": ["operational overhead"]}
]`

const evaluationJSON = `{
	"scores": [
		{"title": "Monolith first", "feasibility": 9, "innovation": 4, "alignment": 8, "cost_effectiveness": 9},
		{"title": "Event-driven", "feasibility": 6, "innovation": 8, "alignment": 7, "cost_effectiveness": 5}
	],
	"recommended_solution": "Monolith first",
	"rationale": "smallest team fit"
}`

func TestGenerateIdeasEmptySpecs(t *testing.T) {
	f := NewFacilitator(agenttest.StaticJSON(ideasJSON))

	_, err := f.GenerateIdeas(context.Background(), "", 3)
	require.Error(t, err)

	var vErr *agent.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestGenerateIdeasRequestsCount(t *testing.T) {
	var seen string
	client := &agenttest.MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			seen = prompt
			return ideasJSON, nil
		},
	}
	f := NewFacilitator(client)

	ideas, err := f.GenerateIdeas(context.Background(), "spec text", 5)
	require.NoError(t, err)
	assert.Len(t, ideas, 2)
	assert.True(t, strings.Contains(seen, "5"), "requested idea count must reach the prompt")
}

func TestGenerateIdeasDefaultsCount(t *testing.T) {
	var seen string
	client := &agenttest.MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			seen = prompt
			return ideasJSON, nil
		},
	}
	f := NewFacilitator(client)

	_, err := f.GenerateIdeas(context.Background(), "spec text", 0)
	require.NoError(t, err)
	assert.Contains(t, seen, "3")
}

func TestEvaluateIdeasNoIdeas(t *testing.T) {
	f := NewFacilitator(agenttest.StaticJSON(evaluationJSON))

	_, err := f.EvaluateIdeas(context.Background(), nil)
	require.Error(t, err)

	var sErr *agent.StageError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, "evaluate_ideas", sErr.Stage)
}

func TestFacilitate(t *testing.T) {
	calls := 0
	client := &agenttest.MockLLMClient{
		GenerateJSONFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			calls++
			if calls == 1 {
				return ideasJSON, nil
			}
			return evaluationJSON, nil
		},
	}
	f := NewFacilitator(client)

	outcome, err := f.Facilitate(context.Background(), "spec text", 2)
	require.NoError(t, err)
	assert.Len(t, outcome.Ideas, 2)
	assert.Equal(t, "Monolith first", outcome.RecommendedApproach)
	require.Len(t, outcome.Evaluation.Scores, 2)
	assert.Equal(t, 9, outcome.Evaluation.Scores[0].Feasibility)
}

func TestFacilitateUnparseableEvaluation(t *testing.T) {
	calls := 0
	client := &agenttest.MockLLMClient{
		GenerateJSONFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			calls++
			if calls == 1 {
				return ideasJSON, nil
			}
			return "not json at all", nil
		},
	}
	f := NewFacilitator(client)

	_, err := f.Facilitate(context.Background(), "spec text", 2)
	require.Error(t, err)

	var pErr *agent.ParseError
	assert.True(t, errors.As(err, &pErr))
}
