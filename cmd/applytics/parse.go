package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedzkun/applytics/internal/ingestion"
	"github.com/vedzkun/applytics/internal/observability"
	"github.com/vedzkun/applytics/internal/parsing"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume file into structured JSON",
	Long:  "Parse a resume file (plain text, PDF, DOCX, or HTML) into structured fields: contact info, skills, experience, education, and more.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseJSON       bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print raw JSON instead of the formatted summary")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	text, err := ingestion.ExtractFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	parsed := parsing.ParseResume(text)

	if parseOutputFile != "" || parseJSON {
		data, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if parseOutputFile != "" {
			if err := os.WriteFile(parseOutputFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintParsedResume(parsed)
	return nil
}
