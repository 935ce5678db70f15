package architecture

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

const archDoc = "# Architecture\n\n## Components\n\n- API server\n- Postgres\n"

const findingsJSON = `[
	{
		"area": "data",
		"issue": "no migration strategy",
		"severity": "medium",
		"recommendation": "add a migrations directory"
	}
]`

func TestGenerateArchitectureEmptyInput(t *testing.T) {
	a := NewArchitect(agenttest.StaticJSON(archDoc))

	_, err := a.GenerateArchitecture(context.Background(), "  ")
	require.Error(t, err)

	var vErr *agent.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestDesign(t *testing.T) {
	client := &agenttest.MockLLMClient{
		GenerateContentFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return archDoc, nil
		},
		GenerateJSONFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return findingsJSON, nil
		},
	}
	a := NewArchitect(client)

	result, err := a.Design(context.Background(), `{"recommended_approach": "Monolith first"}`)
	require.NoError(t, err)
	assert.Equal(t, archDoc, result.Document)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "data", result.Findings[0].Area)
	assert.Equal(t, []string{"add a migrations directory"}, result.Recommendations)
}

func TestDesignCleanValidation(t *testing.T) {
	client := &agenttest.MockLLMClient{
		GenerateContentFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return archDoc, nil
		},
		GenerateJSONFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return "[]", nil
		},
	}
	a := NewArchitect(client)

	result, err := a.Design(context.Background(), "outcome")
	require.NoError(t, err)
	assert.Empty(t, result.Findings)
	assert.Empty(t, result.Recommendations)
}

func TestValidateArchitectureBadSeverity(t *testing.T) {
	a := NewArchitect(agenttest.StaticJSON(`[{"area": "x", "issue": "y", "severity": "catastrophic"}]`))

	_, err := a.ValidateArchitecture(context.Background(), archDoc)
	require.Error(t, err)

	var vErr *agent.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Field, "Severity")
}
