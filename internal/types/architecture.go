package types

// ArchitectureFinding is one issue raised by the architecture validation pass
type ArchitectureFinding struct {
	Area           string `json:"area" validate:"required"`
	Issue          string `json:"issue" validate:"required"`
	Severity       string `json:"severity" validate:"required,oneof=low medium high"`
	Recommendation string `json:"recommendation"`
}

// ArchitectureDocument pairs the generated markdown document with its
// validation findings. The document body has no enforced internal schema
// beyond human-readable headings.
type ArchitectureDocument struct {
	Document        string                `json:"document" validate:"required"`
	Findings        []ArchitectureFinding `json:"findings"`
	Recommendations []string              `json:"recommendations"`
}
