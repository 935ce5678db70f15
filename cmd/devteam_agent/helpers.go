package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/devteam-agent/internal/artifact"
	"github.com/jonathan/devteam-agent/internal/llm"
	"github.com/jonathan/devteam-agent/internal/logging"
)

// newLLMClient resolves the API key from the flag or GEMINI_API_KEY and
// builds the default-tier Gemini client.
func newLLMClient(ctx context.Context, apiKey string) (llm.Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	return llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
}

func initLogging(verbose bool) {
	logging.Init(logging.Config{Verbose: verbose, Pretty: true})
}

// readInputFile reads a required input file for a stage command.
func readInputFile(flag, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--%s is required", flag)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s file: %w", flag, err)
	}
	return string(data), nil
}

// readOptionalFile reads an input file when the flag was provided.
func readOptionalFile(flag, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return readInputFile(flag, path)
}

// loadJSONFile decodes a JSON artifact file produced by an earlier stage.
func loadJSONFile(flag, path string, v any) error {
	content, err := readInputFile(flag, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("failed to parse --%s file %s: %w", flag, path, err)
	}
	return nil
}

// writeJSONArtifact saves a stage result as indented JSON under outDir.
func writeJSONArtifact(outDir, name string, v any) (string, error) {
	a, err := artifact.NewJSON(name, v)
	if err != nil {
		return "", err
	}
	return writeArtifact(outDir, a)
}

// writeMarkdownArtifact saves rendered markdown under outDir.
func writeMarkdownArtifact(outDir, name, content string) (string, error) {
	return writeArtifact(outDir, artifact.NewMarkdown(name, content))
}

func writeArtifact(outDir string, a *artifact.Artifact) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outDir, a.Name)
	if err := artifact.NewFSStore().Save(path, a); err != nil {
		return "", err
	}
	return path, nil
}
