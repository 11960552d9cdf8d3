package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-search/internal/schemas"
)

var validateData string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a candidate dataset against the schema",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateData, "data", "", "Path to candidate dataset JSON (required)")
	_ = validateCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateData)
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", validateData, err)
	}
	if err := schemas.ValidateCandidates(data); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", validateData)
	return nil
}
