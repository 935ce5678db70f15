package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/devteam-agent/internal/db"
	"github.com/jonathan/devteam-agent/internal/monitoring"
	"github.com/jonathan/devteam-agent/internal/rendering"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Analyze service logs for health metrics and anomalies",
	RunE:  runMonitor,
}

var (
	monitorLogGroup string
	monitorLogs     string
	monitorDuration int
	monitorOut      string
	monitorAPIKey   string
	monitorVerbose  bool
)

func init() {
	monitorCmd.Flags().StringVarP(&monitorLogGroup, "log-group", "g", "", "Name of the log group being analyzed (required)")
	monitorCmd.Flags().StringVarP(&monitorLogs, "logs", "l", "", "Path to the raw log file (required)")
	monitorCmd.Flags().IntVarP(&monitorDuration, "duration", "d", 0, "Analysis window in seconds (default 3600)")
	monitorCmd.Flags().StringVarP(&monitorOut, "out", "o", "artifacts", "Output directory")
	monitorCmd.Flags().StringVar(&monitorAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	monitorCmd.Flags().BoolVarP(&monitorVerbose, "verbose", "v", false, "Print detailed debug information")

	monitorCmd.MarkFlagRequired("log-group")
	monitorCmd.MarkFlagRequired("logs")

	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	initLogging(monitorVerbose)
	ctx := context.Background()

	logs, err := readInputFile("logs", monitorLogs)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, monitorAPIKey)
	if err != nil {
		return err
	}
	defer client.Close()

	report, err := monitoring.NewAnalyst(client).Analyze(ctx, monitorLogGroup, logs, monitorDuration)
	if err != nil {
		return fmt.Errorf("monitoring analysis failed: %w", err)
	}

	jsonPath, err := writeJSONArtifact(monitorOut, db.StageMonitoring+".json", report)
	if err != nil {
		return err
	}

	md, err := rendering.MonitoringReportMarkdown(report)
	if err != nil {
		return err
	}
	mdPath, err := writeMarkdownArtifact(monitorOut, db.StageMonitoring+".md", md)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Monitoring report: %s\n", jsonPath)
	fmt.Fprintf(os.Stdout, "Markdown: %s\n", mdPath)
	fmt.Fprintf(os.Stdout, "Health: %s  Anomalies: %d\n", report.Metrics.Health, len(report.Anomalies))
	return nil
}
