// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default values applied when neither the config file nor CLI flags set one.
const (
	DefaultNumIdeas  = 3
	DefaultOutputDir = "artifacts"
	DefaultCodeDir   = "generated"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Project
	ProjectName  string `json:"project_name,omitempty"`  // Human-readable project name for run records
	Requirements string `json:"requirements,omitempty"`  // Path to the requirements text file
	NumIdeas     int    `json:"num_ideas,omitempty"`     // Number of brainstorm ideas to generate
	OutputDir    string `json:"output_dir,omitempty"`    // Directory for stage artifacts
	CodeDir      string `json:"code_dir,omitempty"`      // Directory for generated source files
	SchemaDir    string `json:"schema_dir,omitempty"`    // Directory of schema overrides
	BaseURL      string `json:"base_url,omitempty"`      // Deployed app URL for UI test scenarios

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; CLI flag validation handles
// those after merging.
func (c *Config) Validate() error {
	if c.NumIdeas < 0 {
		return fmt.Errorf("config error: 'num_ideas' must be non-negative")
	}

	if c.Requirements != "" {
		if _, err := os.Stat(c.Requirements); os.IsNotExist(err) {
			return fmt.Errorf("config error: requirements file not found: %s", c.Requirements)
		}
	}
	if c.SchemaDir != "" {
		if info, err := os.Stat(c.SchemaDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: schema directory not found: %s", c.SchemaDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProjectName == "" {
		result.ProjectName = defaults.ProjectName
	}
	if result.Requirements == "" {
		result.Requirements = defaults.Requirements
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.CodeDir == "" {
		result.CodeDir = defaults.CodeDir
	}
	if result.SchemaDir == "" {
		result.SchemaDir = defaults.SchemaDir
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.NumIdeas == 0 {
		result.NumIdeas = defaults.NumIdeas
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// WithFallbacks fills any remaining zero fields with package defaults.
func (c Config) WithFallbacks() Config {
	if c.NumIdeas == 0 {
		c.NumIdeas = DefaultNumIdeas
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.CodeDir == "" {
		c.CodeDir = DefaultCodeDir
	}
	return c
}
