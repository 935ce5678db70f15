package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/planning"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Break an architecture into an ordered development plan",
	Long:  "Run the planner agent: component breakdown with pseudocode, implementation ordering, and external integration analysis.",
	RunE:  runPlan,
}

var (
	planArchitecture string
	planOut          string
	planAPIKey       string
	planVerbose      bool
)

func init() {
	planCmd.Flags().StringVarP(&planArchitecture, "architecture", "a", "", "Path to the architecture markdown artifact (required)")
	planCmd.Flags().StringVarP(&planOut, "out", "o", "artifacts", "Output directory")
	planCmd.Flags().StringVar(&planAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print detailed debug information")

	planCmd.MarkFlagRequired("architecture")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	initLogging(planVerbose)
	ctx := context.Background()

	architectureDoc, err := readInputFile("architecture", planArchitecture)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, planAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	plan, err := planning.NewPlanner(client).Plan(ctx, architectureDoc)
	if err != nil {
		return fmt.Errorf("development planning failed: %w", err)
	}

	path, err := writeJSONArtifact(planOut, db.StagePlan+".json", plan)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Development plan: %s\n", path)
	fmt.Fprintf(os.Stdout, "Components: %d\n", len(plan.Components))
	return nil
}
