package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/docs"
	"github.com/jonathan/devteam-agent/internal/rendering"
	"github.com/jonathan/devteam-agent/internal/types"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Generate API docs, component docs, and a changelog",
	RunE:  runDocument,
}

var (
	documentArchitecture string
	documentBundle       string
	documentPlanFile     string
	documentOut          string
	documentAPIKey       string
	documentVerbose      bool
)

func init() {
	documentCmd.Flags().StringVarP(&documentArchitecture, "architecture", "a", "", "Path to the architecture markdown artifact (required)")
	documentCmd.Flags().StringVarP(&documentBundle, "bundle", "b", "", "Path to the code bundle JSON artifact (required)")
	documentCmd.Flags().StringVar(&documentPlanFile, "plan", "", "Path to the development plan for additional context")
	documentCmd.Flags().StringVarP(&documentOut, "out", "o", "artifacts", "Output directory")
	documentCmd.Flags().StringVar(&documentAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	documentCmd.Flags().BoolVarP(&documentVerbose, "verbose", "v", false, "Print detailed debug information")

	documentCmd.MarkFlagRequired("architecture")
	documentCmd.MarkFlagRequired("bundle")

	rootCmd.AddCommand(documentCmd)
}

func runDocument(cmd *cobra.Command, _ []string) error {
	initLogging(documentVerbose)
	ctx := context.Background()

	architectureDoc, err := readInputFile("architecture", documentArchitecture)
	if err != nil {
		return err
	}
	var bundle types.CodeBundle
	if err := loadJSONFile("bundle", documentBundle, &bundle); err != nil {
		return err
	}
	planSummary, err := readOptionalFile("plan", documentPlanFile)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, documentAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	var code strings.Builder
	for _, component := range bundle.Components {
		code.WriteString("// --- " + component.Path + " ---\n")
		code.WriteString(component.Code)
		code.WriteString("\n")
	}

	set, err := docs.NewDocumenter(client).Document(ctx, architectureDoc, code.String(), planSummary)
	if err != nil {
		return fmt.Errorf("documentation failed: %w", err)
	}

	jsonPath, err := writeJSONArtifact(documentOut, db.StageDocumentation+".json", set)
	if err != nil {
		return err
	}

	md, err := rendering.DocumentationMarkdown(set)
	if err != nil {
		return err
	}
	mdPath, err := writeMarkdownArtifact(documentOut, db.StageDocsMarkdown+".md", md)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Documentation: %s\n", jsonPath)
	fmt.Fprintf(os.Stdout, "Markdown: %s\n", mdPath)
	return nil
}
