package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/observability"
	"github.com/jonathan/devteam-agent/internal/review"
	"github.com/jonathan/devteam-agent/internal/types"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review a code bundle for correctness, coverage, and security",
	RunE:  runReview,
}

var (
	reviewBundle      string
	reviewContextFile string
	reviewOut         string
	reviewAPIKey      string
	reviewVerbose     bool
)

func init() {
	reviewCmd.Flags().StringVarP(&reviewBundle, "bundle", "b", "", "Path to the code bundle JSON artifact (required)")
	reviewCmd.Flags().StringVar(&reviewContextFile, "context", "", "Path to extra review context, typically the development plan")
	reviewCmd.Flags().StringVarP(&reviewOut, "out", "o", "artifacts", "Output directory")
	reviewCmd.Flags().StringVar(&reviewAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	reviewCmd.Flags().BoolVarP(&reviewVerbose, "verbose", "v", false, "Print detailed debug information")

	reviewCmd.MarkFlagRequired("bundle")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	initLogging(reviewVerbose)
	ctx := context.Background()

	var bundle types.CodeBundle
	if err := loadJSONFile("bundle", reviewBundle, &bundle); err != nil {
		return err
	}
	reviewContext, err := readOptionalFile("context", reviewContextFile)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, reviewAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	report, err := review.NewReviewer(client).Review(ctx, &bundle, reviewContext)
	if err != nil {
		return fmt.Errorf("code review failed: %w", err)
	}

	path, err := writeJSONArtifact(reviewOut, db.StageReview+".json", report)
	if err != nil {
		return err
	}

	if reviewVerbose {
		observability.NewPrinter(os.Stdout).PrintReviewReport(report)
	}
	fmt.Fprintf(os.Stdout, "Review report: %s\n", path)
	if !report.Approved {
		fmt.Fprintf(os.Stdout, "Verdict: changes requested (%d findings)\n", len(report.Findings))
	} else {
		fmt.Fprintf(os.Stdout, "Verdict: approved\n")
	}
	return nil
}
