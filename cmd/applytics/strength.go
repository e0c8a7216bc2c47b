package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedzkun/applytics/internal/ingestion"
	"github.com/vedzkun/applytics/internal/observability"
	"github.com/vedzkun/applytics/internal/parsing"
	"github.com/vedzkun/applytics/internal/strength"
)

var strengthCmd = &cobra.Command{
	Use:   "strength",
	Short: "Analyze the overall strength of a resume",
	Long:  "Parse a resume and rate it across six categories (contact info, skills, experience, education, summary, presentation) with improvement tips.",
	RunE:  runStrength,
}

var (
	strengthInputFile  string
	strengthOutputFile string
	strengthJSON       bool
)

func init() {
	strengthCmd.Flags().StringVarP(&strengthInputFile, "in", "i", "", "Path to resume file (required)")
	strengthCmd.Flags().StringVarP(&strengthOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	strengthCmd.Flags().BoolVar(&strengthJSON, "json", false, "Print raw JSON instead of the formatted summary")
	_ = strengthCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(strengthCmd)
}

func runStrength(_ *cobra.Command, _ []string) error {
	text, err := ingestion.ExtractFile(strengthInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	parsed := parsing.ParseResume(text)
	result := strength.Analyze(parsed)

	if strengthOutputFile != "" || strengthJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if strengthOutputFile != "" {
			if err := os.WriteFile(strengthOutputFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintStrengthResult(result)
	return nil
}
