// Package main provides the entry point for the talent search service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_search",
	Short: "Talent relevance scoring and search engine",
	Long:  "Talent Search ranks candidate profiles against recruiter-style filters, blending skill, experience, project, and profile signals into a single relevance score with match evidence.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
