package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/engineering"
	"github.com/jonathan/devteam-agent/internal/types"
)

var engineerCmd = &cobra.Command{
	Use:   "engineer",
	Short: "Implement the development plan component by component",
	Long:  "Run the engineer agent: implement each component in dependency order, optimize, generate tests, and write the source files plus the code bundle artifact.",
	RunE:  runEngineer,
}

var (
	engineerPlan    string
	engineerCodeDir string
	engineerOut     string
	engineerAPIKey  string
	engineerVerbose bool
)

func init() {
	engineerCmd.Flags().StringVarP(&engineerPlan, "plan", "p", "", "Path to the development plan JSON artifact (required)")
	engineerCmd.Flags().StringVar(&engineerCodeDir, "code-dir", "generated", "Directory for generated source files")
	engineerCmd.Flags().StringVarP(&engineerOut, "out", "o", "artifacts", "Output directory")
	engineerCmd.Flags().StringVar(&engineerAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	engineerCmd.Flags().BoolVarP(&engineerVerbose, "verbose", "v", false, "Print detailed debug information")

	engineerCmd.MarkFlagRequired("plan")

	rootCmd.AddCommand(engineerCmd)
}

func runEngineer(cmd *cobra.Command, _ []string) error {
	initLogging(engineerVerbose)
	ctx := context.Background()

	var plan types.DevelopmentPlan
	if err := loadJSONFile("plan", engineerPlan, &plan); err != nil {
		return err
	}

	client, err := newLLMClient(ctx, engineerAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := os.MkdirAll(engineerCodeDir, 0755); err != nil {
		return fmt.Errorf("failed to create code directory: %w", err)
	}

	bundle, err := engineering.NewEngineer(client).Implement(ctx, &plan, engineerCodeDir)
	if err != nil {
		return fmt.Errorf("implementation failed: %w", err)
	}

	path, err := writeJSONArtifact(engineerOut, db.StageCode+".json", bundle)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Code bundle: %s\n", path)
	fmt.Fprintf(os.Stdout, "Source files: %s\n", engineerCodeDir)
	return nil
}
