package monitoring

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

const metricsJSON = `{
	"error_rate": 0.02,
	"latency_p95_ms": 340.5,
	"request_count": 12000,
	"top_errors": [{"message": "connection refused", "count": 41}],
	"health": "degraded"
}`

const anomaliesJSON = `[
	{"metric": "error_rate", "description": "spike after deploy", "severity": "high", "suggested_action": "roll back"}
]`

func TestAnalyzeLogsRequiresLogGroup(t *testing.T) {
	a := NewAnalyst(agenttest.StaticJSON(metricsJSON))

	_, err := a.AnalyzeLogs(context.Background(), "", "log line", 60)
	require.Error(t, err)

	var vErr *agent.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "log_group", vErr.Field)
}

func TestAnalyzeLogsEmptyLogs(t *testing.T) {
	a := NewAnalyst(agenttest.StaticJSON(metricsJSON))

	_, err := a.AnalyzeLogs(context.Background(), "/prod/api", "  \n", 60)
	require.Error(t, err)

	var vErr *agent.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestAnalyzeLogsDefaultsDuration(t *testing.T) {
	var seen string
	client := &agenttest.MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			seen = prompt
			return metricsJSON, nil
		},
	}
	a := NewAnalyst(client)

	metrics, err := a.AnalyzeLogs(context.Background(), "/prod/api", "ERROR connection refused", 0)
	require.NoError(t, err)
	assert.Equal(t, "degraded", metrics.Health)
	assert.True(t, strings.Contains(seen, "3600"))
}

func TestAnalyzeLogsRejectsUnknownHealth(t *testing.T) {
	a := NewAnalyst(agenttest.StaticJSON(`{"health": "on fire"}`))

	_, err := a.AnalyzeLogs(context.Background(), "/prod/api", "logs", 60)
	require.Error(t, err)

	var vErr *agent.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Field, "Health")
}

func TestAnalyzeFullFlow(t *testing.T) {
	calls := 0
	client := &agenttest.MockLLMClient{
		GenerateJSONFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			calls++
			if calls == 1 {
				return metricsJSON, nil
			}
			return anomaliesJSON, nil
		},
	}
	a := NewAnalyst(client)

	report, err := a.Analyze(context.Background(), "/prod/api", "ERROR connection refused", 1800)
	require.NoError(t, err)
	assert.Equal(t, "/prod/api", report.LogGroup)
	assert.Equal(t, 1800, report.DurationSeconds)
	assert.Equal(t, 12000, report.Metrics.RequestCount)
	require.Len(t, report.Anomalies, 1)
	assert.Equal(t, "high", report.Anomalies[0].Severity)
}
