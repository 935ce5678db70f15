package types

// GeneratedComponent is one implemented component from the engineering stage
type GeneratedComponent struct {
	Name     string `json:"name" validate:"required"`
	Path     string `json:"path" validate:"required"`
	Code     string `json:"code" validate:"required"`
	TestCode string `json:"test_code,omitempty"`
}

// CodeBundle is the engineering stage's output artifact
type CodeBundle struct {
	Components []GeneratedComponent `json:"components" validate:"min=1,dive"`
	OutputDir  string               `json:"output_dir,omitempty"`
}
