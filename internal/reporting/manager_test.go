package reporting

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

const statusJSON = `{
	"stages": [
		{"name": "product_specs", "status": "done"},
		{"name": "engineering", "status": "in_progress", "blockers": ["waiting on schema review"]}
	],
	"conflicts": [
		{"roles": ["architect", "engineer"], "description": "disagreement on queue technology"}
	],
	"overall_status": "on_track",
	"next_actions": ["unblock schema review"]
}`

const risksJSON = `[
	{"risk": "schema review slips", "probability": "medium", "impact": "high", "mitigation": "timebox review", "owner_role": "architect"}
]`

func TestAggregateStatusNoInput(t *testing.T) {
	m := NewManager(agenttest.StaticJSON(statusJSON))

	_, err := m.AggregateStatus(context.Background(), nil, nil)
	require.Error(t, err)

	var vErr *agent.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestAggregateStatus(t *testing.T) {
	m := NewManager(agenttest.StaticJSON(statusJSON))

	report, err := m.AggregateStatus(context.Background(),
		map[string]string{"product_manager": "spec content"},
		map[string]string{"product_specs": "done"},
	)
	require.NoError(t, err)
	require.Len(t, report.Stages, 2)
	assert.Equal(t, "on_track", report.OverallStatus)
	require.Len(t, report.Conflicts, 1)
	assert.Len(t, report.Conflicts[0].Roles, 2)
}

func TestAggregateStatusRejectsBadStageStatus(t *testing.T) {
	bad := `{"stages": [{"name": "x", "status": "exploded"}], "overall_status": "late"}`
	m := NewManager(agenttest.StaticJSON(bad))

	_, err := m.AggregateStatus(context.Background(), map[string]string{"a": "b"}, nil)
	require.Error(t, err)

	var vErr *agent.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Field, "Status")
}

func TestReportFullFlow(t *testing.T) {
	calls := 0
	client := &agenttest.MockLLMClient{
		GenerateJSONFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			calls++
			if calls == 1 {
				return statusJSON, nil
			}
			return risksJSON, nil
		},
	}
	m := NewManager(client)

	report, err := m.Report(context.Background(), map[string]string{"engineer": "code"}, nil, "deadline in two weeks")
	require.NoError(t, err)
	require.Len(t, report.Risks, 1)
	assert.Equal(t, "architect", report.Risks[0].OwnerRole)
}
