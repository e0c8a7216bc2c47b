// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/vedzkun/applytics/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	if resume.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:       %s\n", resume.Name))
	}
	if resume.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", resume.Email))
	}
	if resume.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", resume.Phone))
	}
	if resume.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", resume.Location))
	}
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", resume.ExperienceYears))
	sb.WriteString("\n")

	if len(resume.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(resume.Skills)))
		count := min(len(resume.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Skills[i]))
		}
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(resume.Education), 3)
		for i := 0; i < count; i++ {
			edu := resume.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", edu.Degree))
			if edu.Year != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", edu.Year))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(resume.WorkExperience) > 0 {
		sb.WriteString("Work History:\n")
		count := min(len(resume.WorkExperience), 3)
		for i := 0; i < count; i++ {
			job := resume.WorkExperience[i]
			title := job.Title
			if len(title) > 45 {
				title = title[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", title))
		}
		if len(resume.WorkExperience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.WorkExperience)-3))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the match score, breakdown, and skill gaps.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %d/100 (%s)\n", result.Score, result.Grade))
	sb.WriteString(fmt.Sprintf("Skills: %d  Experience: %d  Education: %d\n",
		result.Breakdown.SkillScore, result.Breakdown.ExperienceScore, result.Breakdown.EducationScore))
	sb.WriteString(fmt.Sprintf("Experience match: %s\n", result.ExperienceMatch))
	sb.WriteString("\n")

	if len(result.MatchedSkills) > 0 {
		skills := strings.Join(result.MatchedSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("✓ Matched: %s\n", skills))
	}
	if len(result.MissingSkills) > 0 {
		skills := strings.Join(result.MissingSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("✗ Missing: %s\n", skills))
	}
	if len(result.BonusSkills) > 0 {
		skills := strings.Join(result.BonusSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("+ Bonus:   %s\n", skills))
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := result.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("JOB MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStrengthResult outputs the strength score with category breakdown.
func (p *Printer) PrintStrengthResult(result *types.StrengthResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:      %d/100 (%s)\n", result.OverallScore, result.Grade))
	sb.WriteString(fmt.Sprintf("Completeness: %d%%\n", result.Completeness))
	sb.WriteString("\n")

	sb.WriteString("Categories:\n")
	for _, cat := range result.Categories {
		sb.WriteString(fmt.Sprintf("  %-26s %2d/%2d\n", cat.Name, cat.Score, cat.MaxScore))
	}

	if len(result.TopStrengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range result.TopStrengths {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", s))
		}
	}

	if len(result.Improvements) > 0 {
		sb.WriteString("\nImprovements:\n")
		count := min(len(result.Improvements), maxItemsToShow)
		for i := 0; i < count; i++ {
			tip := result.Improvements[i]
			if len(tip) > 50 {
				tip = tip[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", tip))
		}
		if len(result.Improvements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Improvements)-maxItemsToShow))
		}
	}

	p.printBox("RESUME STRENGTH", strings.TrimSuffix(sb.String(), "\n"))
}
