package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/architecture"
	"github.com/jonathan/devteam-agent/internal/db"
)

var architectureCmd = &cobra.Command{
	Use:   "architecture",
	Short: "Design the system architecture for the chosen solution",
	RunE:  runArchitecture,
}

var (
	architectureBrainstorm string
	architectureOut        string
	architectureAPIKey     string
	architectureVerbose    bool
)

func init() {
	architectureCmd.Flags().StringVarP(&architectureBrainstorm, "brainstorm", "b", "", "Path to the brainstorm outcome JSON artifact (required)")
	architectureCmd.Flags().StringVarP(&architectureOut, "out", "o", "artifacts", "Output directory")
	architectureCmd.Flags().StringVar(&architectureAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	architectureCmd.Flags().BoolVarP(&architectureVerbose, "verbose", "v", false, "Print detailed debug information")

	architectureCmd.MarkFlagRequired("brainstorm")

	rootCmd.AddCommand(architectureCmd)
}

func runArchitecture(cmd *cobra.Command, _ []string) error {
	initLogging(architectureVerbose)
	ctx := context.Background()

	outcome, err := readInputFile("brainstorm", architectureBrainstorm)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, architectureAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	doc, err := architecture.NewArchitect(client).Design(ctx, outcome)
	if err != nil {
		return fmt.Errorf("architecture design failed: %w", err)
	}

	jsonPath, err := writeJSONArtifact(architectureOut, db.StageArchitecture+".json", doc)
	if err != nil {
		return err
	}
	mdPath, err := writeMarkdownArtifact(architectureOut, db.StageArchMarkdown+".md", doc.Document)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Architecture: %s\n", jsonPath)
	fmt.Fprintf(os.Stdout, "Markdown: %s\n", mdPath)
	return nil
}
