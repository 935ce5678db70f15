// Package monitoring implements the Monitoring Analyst agent: it analyzes
// service logs over a time window and surfaces anomalies. Log text is
// supplied by the caller; the agent performs no cloud calls itself.
package monitoring

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/prompts"
	"github.com/jonathan/devteam-agent/internal/types"
)

const promptFile = "monitoring.json"

// DefaultDurationSeconds is the analysis window when none is requested.
const DefaultDurationSeconds = 3600

// Analyst is the Monitoring Analyst agent
type Analyst struct {
	base *agent.Base
}

// NewAnalyst creates a Monitoring Analyst around an existing LLM client.
func NewAnalyst(client llm.Client) *Analyst {
	return &Analyst{base: agent.New("monitoring_analyst", client)}
}

// AnalyzeLogs derives service metrics from raw log text for the named log
// group over a window of durationSeconds.
func (a *Analyst) AnalyzeLogs(ctx context.Context, logGroup, logs string, durationSeconds int) (*types.ServiceMetrics, error) {
	if strings.TrimSpace(logGroup) == "" {
		return nil, a.base.Fail("analyze_logs", &agent.ValidationError{Field: "log_group", Message: "log group is required"})
	}
	if strings.TrimSpace(logs) == "" {
		return nil, a.base.Fail("analyze_logs", &agent.ValidationError{Message: "log input is empty"})
	}
	if durationSeconds <= 0 {
		durationSeconds = DefaultDurationSeconds
	}

	prompt, err := prompts.Render(promptFile, "analyze-logs", map[string]string{
		"LogGroup": logGroup,
		"Duration": strconv.Itoa(durationSeconds),
		"Logs":     logs,
	})
	if err != nil {
		return nil, a.base.Fail("analyze_logs", err)
	}

	raw, err := a.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return nil, a.base.Fail("analyze_logs", err)
	}

	metrics, err := agent.DecodeJSON[types.ServiceMetrics](raw)
	if err != nil {
		return nil, a.base.Fail("analyze_logs", err)
	}
	return metrics, nil
}

// DetectAnomalies flags irregularities in the derived metrics.
func (a *Analyst) DetectAnomalies(ctx context.Context, metrics *types.ServiceMetrics) ([]types.Anomaly, error) {
	metricsJSON, err := agent.MarshalForPrompt(metrics)
	if err != nil {
		return nil, a.base.Fail("detect_anomalies", err)
	}

	prompt, err := prompts.Render(promptFile, "detect-anomalies", map[string]string{
		"Metrics": metricsJSON,
	})
	if err != nil {
		return nil, a.base.Fail("detect_anomalies", err)
	}

	raw, err := a.base.CompletionJSON(ctx, prompt, prompts.MustGet(promptFile, "system"), llm.TierStandard)
	if err != nil {
		return nil, a.base.Fail("detect_anomalies", err)
	}

	anomalies, err := agent.DecodeJSONSlice[types.Anomaly](raw)
	if err != nil {
		return nil, a.base.Fail("detect_anomalies", err)
	}
	return anomalies, nil
}

// Analyze runs the full monitoring flow and assembles the report artifact.
func (a *Analyst) Analyze(ctx context.Context, logGroup, logs string, durationSeconds int) (*types.MonitoringReport, error) {
	metrics, err := a.AnalyzeLogs(ctx, logGroup, logs, durationSeconds)
	if err != nil {
		return nil, err
	}

	anomalies, err := a.DetectAnomalies(ctx, metrics)
	if err != nil {
		return nil, err
	}

	if durationSeconds <= 0 {
		durationSeconds = DefaultDurationSeconds
	}
	return &types.MonitoringReport{
		LogGroup:        logGroup,
		DurationSeconds: durationSeconds,
		Metrics:         *metrics,
		Anomalies:       anomalies,
	}, nil
}
