package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/approval"
	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/observability"
	"github.com/jonathan/devteam-agent/internal/product"
	"github.com/jonathan/devteam-agent/internal/rendering"
)

var specsCmd = &cobra.Command{
	Use:   "specs",
	Short: "Generate product specifications from raw requirements",
	Long:  "Run the product manager agent: market context, user personas, feature breakdown, and stakeholder validation, producing the product specification artifact.",
	RunE:  runSpecs,
}

var (
	specsRequirements string
	specsOut          string
	specsAPIKey       string
	specsVerbose      bool
)

func init() {
	specsCmd.Flags().StringVarP(&specsRequirements, "requirements", "r", "", "Path to raw requirements text file (required)")
	specsCmd.Flags().StringVarP(&specsOut, "out", "o", "artifacts", "Output directory")
	specsCmd.Flags().StringVar(&specsAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	specsCmd.Flags().BoolVarP(&specsVerbose, "verbose", "v", false, "Print detailed debug information")

	specsCmd.MarkFlagRequired("requirements")

	rootCmd.AddCommand(specsCmd)
}

func runSpecs(cmd *cobra.Command, _ []string) error {
	initLogging(specsVerbose)
	ctx := context.Background()

	requirements, err := readInputFile("requirements", specsRequirements)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, specsAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	checkpoints := approval.NewCheckpointSystem(approval.NewSystem(client), specsOut)
	manager := product.NewManager(client, checkpoints)

	spec, err := manager.CreateProductSpecs(ctx, requirements)
	if err != nil {
		return fmt.Errorf("product specification failed: %w", err)
	}

	jsonPath, err := writeJSONArtifact(specsOut, db.StageProductSpecs+".json", spec)
	if err != nil {
		return err
	}

	md, err := rendering.ProductSpecMarkdown(spec)
	if err != nil {
		return err
	}
	mdPath, err := writeMarkdownArtifact(specsOut, db.StageSpecMarkdown+".md", md)
	if err != nil {
		return err
	}

	if specsVerbose {
		observability.NewPrinter(os.Stdout).PrintProductSpec(spec)
	}
	fmt.Fprintf(os.Stdout, "Specification: %s\n", jsonPath)
	fmt.Fprintf(os.Stdout, "Markdown: %s\n", mdPath)
	return nil
}
