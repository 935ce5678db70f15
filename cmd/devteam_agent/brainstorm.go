package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/brainstorm"
	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/observability"
)

var brainstormCmd = &cobra.Command{
	Use:   "brainstorm",
	Short: "Generate and evaluate solution ideas for a product specification",
	RunE:  runBrainstorm,
}

var (
	brainstormSpecs    string
	brainstormNumIdeas int
	brainstormOut      string
	brainstormAPIKey   string
	brainstormVerbose  bool
)

func init() {
	brainstormCmd.Flags().StringVarP(&brainstormSpecs, "specs", "s", "", "Path to the product specification JSON artifact (required)")
	brainstormCmd.Flags().IntVarP(&brainstormNumIdeas, "num-ideas", "n", 0, "Number of solution ideas to generate (default 3)")
	brainstormCmd.Flags().StringVarP(&brainstormOut, "out", "o", "artifacts", "Output directory")
	brainstormCmd.Flags().StringVar(&brainstormAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	brainstormCmd.Flags().BoolVarP(&brainstormVerbose, "verbose", "v", false, "Print detailed debug information")

	brainstormCmd.MarkFlagRequired("specs")

	rootCmd.AddCommand(brainstormCmd)
}

func runBrainstorm(cmd *cobra.Command, _ []string) error {
	initLogging(brainstormVerbose)
	ctx := context.Background()

	specs, err := readInputFile("specs", brainstormSpecs)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, brainstormAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	outcome, err := brainstorm.NewFacilitator(client).Facilitate(ctx, specs, brainstormNumIdeas)
	if err != nil {
		return fmt.Errorf("brainstorm failed: %w", err)
	}

	path, err := writeJSONArtifact(brainstormOut, db.StageBrainstorm+".json", outcome)
	if err != nil {
		return err
	}

	if brainstormVerbose {
		observability.NewPrinter(os.Stdout).PrintBrainstorm(outcome)
	}
	fmt.Fprintf(os.Stdout, "Brainstorm outcome: %s\n", path)
	return nil
}
