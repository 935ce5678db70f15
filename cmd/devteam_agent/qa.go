package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/observability"
	"github.com/jonathan/devteam-agent/internal/qa"
	"github.com/jonathan/devteam-agent/internal/types"
)

var qaCmd = &cobra.Command{
	Use:   "qa",
	Short: "Generate and execute test scenarios for a code bundle",
	Long:  "Run the QA agent: plan functional, edge, integration, and UI scenarios, execute UI scenarios against a deployed app when --base-url is set, and evaluate the results.",
	RunE:  runQA,
}

var (
	qaBundle     string
	qaReviewFile string
	qaBaseURL    string
	qaOut        string
	qaAPIKey     string
	qaVerbose    bool
)

func init() {
	qaCmd.Flags().StringVarP(&qaBundle, "bundle", "b", "", "Path to the code bundle JSON artifact (required)")
	qaCmd.Flags().StringVar(&qaReviewFile, "review", "", "Path to the review report JSON artifact")
	qaCmd.Flags().StringVar(&qaBaseURL, "base-url", "", "Deployed app URL; UI scenarios run in a headless browser when set")
	qaCmd.Flags().StringVarP(&qaOut, "out", "o", "artifacts", "Output directory")
	qaCmd.Flags().StringVar(&qaAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	qaCmd.Flags().BoolVarP(&qaVerbose, "verbose", "v", false, "Print detailed debug information")

	qaCmd.MarkFlagRequired("bundle")

	rootCmd.AddCommand(qaCmd)
}

func runQA(cmd *cobra.Command, _ []string) error {
	initLogging(qaVerbose)
	ctx := context.Background()

	var bundle types.CodeBundle
	if err := loadJSONFile("bundle", qaBundle, &bundle); err != nil {
		return err
	}
	reviewContent, err := readOptionalFile("review", qaReviewFile)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, qaAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	var runner qa.ScenarioRunner
	if qaBaseURL != "" {
		runner = qa.NewBrowserRunner()
	}

	var code strings.Builder
	for _, component := range bundle.Components {
		code.WriteString("// --- " + component.Path + " ---\n")
		code.WriteString(component.Code)
		code.WriteString("\n")
	}

	report, err := qa.NewEngineer(client, runner).Test(ctx, code.String(), reviewContent, qaBaseURL)
	if err != nil {
		return fmt.Errorf("qa failed: %w", err)
	}

	path, err := writeJSONArtifact(qaOut, db.StageTestReport+".json", report)
	if err != nil {
		return err
	}

	if qaVerbose {
		observability.NewPrinter(os.Stdout).PrintTestReport(report)
	}
	fmt.Fprintf(os.Stdout, "Test report: %s\n", path)
	fmt.Fprintf(os.Stdout, "Passed: %d  Failed: %d\n", report.Passed, report.Failed)
	return nil
}
