package types

// ReviewFinding is one issue raised during code review
type ReviewFinding struct {
	File        string `json:"file"`
	Category    string `json:"category" validate:"required"`
	Severity    string `json:"severity" validate:"required,oneof=info warning critical"`
	Description string `json:"description" validate:"required"`
	Suggestion  string `json:"suggestion"`
}

// CoverageAnalysis summarizes test coverage gaps found by the reviewer
type CoverageAnalysis struct {
	CoveredAreas     []string `json:"covered_areas"`
	Gaps             []string `json:"gaps"`
	MissingScenarios []string `json:"missing_scenarios"`
	QualityScore     int      `json:"quality_score" validate:"min=1,max=10"`
}

// SecurityFinding is one vulnerability surfaced by the security audit
type SecurityFinding struct {
	Vulnerability string `json:"vulnerability" validate:"required"`
	Location      string `json:"location"`
	Severity      string `json:"severity" validate:"required,oneof=low medium high critical"`
	Mitigation    string `json:"mitigation"`
}

// ReviewReport is the reviewer's output artifact
type ReviewReport struct {
	Findings         []ReviewFinding   `json:"findings"`
	Approved         bool              `json:"approved"`
	Summary          string            `json:"summary" validate:"required"`
	Coverage         *CoverageAnalysis `json:"coverage,omitempty"`
	SecurityFindings []SecurityFinding `json:"security_findings,omitempty"`
}
