// Package main provides the entry point for the AI development team CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devteam_agent",
	Short: "AI development team pipeline",
	Long:  "devteam_agent turns raw product requirements into specifications, designs, code, reviews, and reports by coordinating a team of role-specialized LLM agents.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
