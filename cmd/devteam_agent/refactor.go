package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/refactor"
)

var refactorCmd = &cobra.Command{
	Use:   "refactor",
	Short: "Analyze code quality and propose refactorings",
	Long:  "Run the refactoring analyst: surface code smells with impact and effort estimates and fold recurring patterns into the automation rules file.",
	RunE:  runRefactor,
}

var (
	refactorCode        string
	refactorMetrics     string
	refactorConstraints string
	refactorRules       string
	refactorOut         string
	refactorAPIKey      string
	refactorVerbose     bool
)

func init() {
	refactorCmd.Flags().StringVarP(&refactorCode, "code", "c", "", "Path to the source file or concatenated code to analyze (required)")
	refactorCmd.Flags().StringVarP(&refactorMetrics, "metrics", "m", "", "Path to a code metrics summary")
	refactorCmd.Flags().StringVar(&refactorConstraints, "constraints", "", "Path to project constraints to respect")
	refactorCmd.Flags().StringVar(&refactorRules, "rules", "", "Path to the existing automation rules file")
	refactorCmd.Flags().StringVarP(&refactorOut, "out", "o", "artifacts", "Output directory")
	refactorCmd.Flags().StringVar(&refactorAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	refactorCmd.Flags().BoolVarP(&refactorVerbose, "verbose", "v", false, "Print detailed debug information")

	refactorCmd.MarkFlagRequired("code")

	rootCmd.AddCommand(refactorCmd)
}

func runRefactor(cmd *cobra.Command, _ []string) error {
	initLogging(refactorVerbose)
	ctx := context.Background()

	code, err := readInputFile("code", refactorCode)
	if err != nil {
		return err
	}
	metrics, err := readOptionalFile("metrics", refactorMetrics)
	if err != nil {
		return err
	}
	constraints, err := readOptionalFile("constraints", refactorConstraints)
	if err != nil {
		return err
	}
	rules, err := readOptionalFile("rules", refactorRules)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, refactorAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	report, err := refactor.NewAnalyst(client).Analyze(ctx, code, metrics, constraints, rules)
	if err != nil {
		return fmt.Errorf("refactoring analysis failed: %w", err)
	}

	path, err := writeJSONArtifact(refactorOut, db.StageRefactor+".json", report)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Refactor report: %s\n", path)
	fmt.Fprintf(os.Stdout, "Suggestions: %d\n", len(report.Suggestions))
	return nil
}
