package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedzkun/applytics/internal/ingestion"
	"github.com/vedzkun/applytics/internal/matching"
	"github.com/vedzkun/applytics/internal/observability"
	"github.com/vedzkun/applytics/internal/parsing"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Parse a resume and a job description, then score the fit across skills, experience, and education with recommendations and learning resources for missing skills.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchOutputFile string
	matchJSON       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume file (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description file (required)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print raw JSON instead of the formatted summary")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	resumeText, err := ingestion.ExtractFile(matchResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jobText, err := ingestion.ExtractFile(matchJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	parsed := parsing.ParseResume(resumeText)
	result := matching.Match(parsed, jobText)

	if matchOutputFile != "" || matchJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if matchOutputFile != "" {
			if err := os.WriteFile(matchOutputFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	return nil
}
