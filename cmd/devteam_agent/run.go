package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/config"
	"github.com/jonathan/devteam-agent/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full development pipeline end-to-end",
	Long: `Orchestrates the whole team: product specs -> brainstorm -> architecture -> planning -> engineering -> review -> documentation -> qa -> status.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath   string
	runProjectName  string
	runRequirements string
	runNumIdeas     int
	runOutputDir    string
	runCodeDir      string
	runSchemaDir    string
	runBaseURL      string
	runAPIKey       string
	runDatabaseURL  string
	runVerbose      bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runProjectName, "project", "p", "", "Project name for run records")
	runCommand.Flags().StringVarP(&runRequirements, "requirements", "r", "", "Path to raw requirements text file")
	runCommand.Flags().IntVarP(&runNumIdeas, "num-ideas", "n", 0, "Number of brainstorm ideas to generate")
	runCommand.Flags().StringVarP(&runOutputDir, "out", "o", "", "Directory for stage artifacts")
	runCommand.Flags().StringVar(&runCodeDir, "code-dir", "", "Directory for generated source files")
	runCommand.Flags().StringVar(&runSchemaDir, "schema-dir", "", "Directory of artifact schema overrides")
	runCommand.Flags().StringVar(&runBaseURL, "base-url", "", "Deployed app URL; UI scenarios run in a headless browser when set")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("project") {
		cfg.ProjectName = runProjectName
	}
	if cmd.Flags().Changed("requirements") {
		cfg.Requirements = runRequirements
	}
	if cmd.Flags().Changed("num-ideas") {
		cfg.NumIdeas = runNumIdeas
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("code-dir") {
		cfg.CodeDir = runCodeDir
	}
	if cmd.Flags().Changed("schema-dir") {
		cfg.SchemaDir = runSchemaDir
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = runBaseURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.WithFallbacks()
	initLogging(cfg.Verbose)

	// Step 4: Validate required fields
	if cfg.Requirements == "" {
		return fmt.Errorf("--requirements must be provided (via flag or config)")
	}
	requirements, err := os.ReadFile(cfg.Requirements)
	if err != nil {
		return fmt.Errorf("failed to read requirements file: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.MkdirAll(cfg.CodeDir, 0755); err != nil {
		return fmt.Errorf("failed to create code directory: %w", err)
	}

	// Step 5: Database URL handling (optional; pipeline downgrades gracefully)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	client, err := newLLMClient(ctx, cfg.APIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	opts := pipeline.RunOptions{
		ProjectName:  cfg.ProjectName,
		Requirements: string(requirements),
		NumIdeas:     cfg.NumIdeas,
		OutputDir:    cfg.OutputDir,
		CodeDir:      cfg.CodeDir,
		BaseURL:      cfg.BaseURL,
		SchemaDir:    cfg.SchemaDir,
		DatabaseURL:  cfg.DatabaseURL,
		OnProgress: func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stdout, "[%s] %s %s\n", event.Category, event.Stage, event.Message)
		},
	}

	if err := pipeline.RunPipeline(ctx, client, opts); err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Artifacts: %s\n", cfg.OutputDir)
	fmt.Fprintf(os.Stdout, "Generated code: %s\n", cfg.CodeDir)
	return nil
}
