package types

// TopError is an aggregated error message with its occurrence count
type TopError struct {
	Message string `json:"message" validate:"required"`
	Count   int    `json:"count"`
}

// ServiceMetrics summarizes log-derived service health over the analysis window
type ServiceMetrics struct {
	ErrorRate    float64    `json:"error_rate"`
	LatencyP95Ms float64    `json:"latency_p95_ms"`
	RequestCount int        `json:"request_count"`
	TopErrors    []TopError `json:"top_errors"`
	Health       string     `json:"health" validate:"required,oneof=healthy degraded critical"`
}

// Anomaly is one detected irregularity in service behavior
type Anomaly struct {
	Metric          string `json:"metric" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Severity        string `json:"severity" validate:"required,oneof=low medium high"`
	SuggestedAction string `json:"suggested_action"`
}

// MonitoringReport is the monitoring stage's output artifact
type MonitoringReport struct {
	LogGroup        string         `json:"log_group" validate:"required"`
	DurationSeconds int            `json:"duration_seconds"`
	Metrics         ServiceMetrics `json:"metrics"`
	Anomalies       []Anomaly      `json:"anomalies"`
}
