package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/observability"
	"github.com/jonathan/devteam-agent/internal/rendering"
	"github.com/jonathan/devteam-agent/internal/reporting"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Aggregate stage artifacts into a project status report",
	Long:  "Run the project manager agent over an artifact directory: per-stage status, cross-role conflicts, next actions, and a risk assessment.",
	RunE:  runStatus,
}

var (
	statusArtifacts    string
	statusRequirements string
	statusOut          string
	statusAPIKey       string
	statusVerbose      bool
)

func init() {
	statusCmd.Flags().StringVarP(&statusArtifacts, "artifacts", "a", "", "Directory of stage artifacts to aggregate (required)")
	statusCmd.Flags().StringVarP(&statusRequirements, "requirements", "r", "", "Path to the original requirements for project context")
	statusCmd.Flags().StringVarP(&statusOut, "out", "o", "artifacts", "Output directory")
	statusCmd.Flags().StringVar(&statusAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	statusCmd.Flags().BoolVarP(&statusVerbose, "verbose", "v", false, "Print detailed debug information")

	statusCmd.MarkFlagRequired("artifacts")

	rootCmd.AddCommand(statusCmd)
}

// knownStages is the set of pipeline stages the status report tracks.
var knownStages = []string{
	db.StageProductSpecs, db.StageBrainstorm, db.StageArchitecture,
	db.StagePlan, db.StageCode, db.StageReview, db.StageTestReport,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	initLogging(statusVerbose)
	ctx := context.Background()

	outputs := make(map[string]string)
	statuses := make(map[string]string)
	for _, stage := range knownStages {
		path := filepath.Join(statusArtifacts, stage+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			statuses[stage] = "pending"
			continue
		}
		outputs[stage] = string(data)
		statuses[stage] = "done"
	}
	if len(outputs) == 0 {
		return fmt.Errorf("no stage artifacts found in %s", statusArtifacts)
	}

	projectContext, err := readOptionalFile("requirements", statusRequirements)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, statusAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	report, err := reporting.NewManager(client).Report(ctx, outputs, statuses, projectContext)
	if err != nil {
		return fmt.Errorf("status reporting failed: %w", err)
	}

	jsonPath, err := writeJSONArtifact(statusOut, db.StageStatus+".json", report)
	if err != nil {
		return err
	}

	md, err := rendering.StatusReportMarkdown(report)
	if err != nil {
		return err
	}
	mdPath, err := writeMarkdownArtifact(statusOut, db.StageStatusMarkdown+".md", md)
	if err != nil {
		return err
	}

	if statusVerbose {
		observability.NewPrinter(os.Stdout).PrintStatusReport(report)
	}
	fmt.Fprintf(os.Stdout, "Status report: %s\n", jsonPath)
	fmt.Fprintf(os.Stdout, "Markdown: %s\n", mdPath)
	fmt.Fprintf(os.Stdout, "Overall: %s\n", strings.TrimSpace(report.OverallStatus))
	return nil
}
