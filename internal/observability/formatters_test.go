package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vedzkun/applytics/internal/types"
)

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Location:        "Austin, TX",
		ExperienceYears: 6,
		Skills:          []string{"go", "postgresql", "docker", "terraform", "kafka", "redis"},
		Education:       []types.Education{{Degree: "Bachelor of Science", Year: "2018"}},
		WorkExperience:  []types.WorkExperience{{Title: "Backend Engineer", Company: "Acme"}},
	}

	p.PrintParsedResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "6 years")
	assert.Contains(t, output, "Skills (6):")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "Bachelor of Science (2018)")
	assert.Contains(t, output, "Backend Engineer")
}

func TestPrintParsedResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		Score: 72,
		Grade: "B",
		Breakdown: types.MatchBreakdown{
			SkillScore:      80,
			ExperienceScore: 50,
			EducationScore:  70,
		},
		ExperienceMatch: types.ExperienceBelow,
		MatchedSkills:   []string{"react", "node.js"},
		MissingSkills:   []string{"python"},
		Recommendations: []string{"Highlight relevant projects"},
	}

	p.PrintMatchResult(result)
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH RESULT")
	assert.Contains(t, output, "72/100 (B)")
	assert.Contains(t, output, "react, node.js")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "Highlight relevant projects")
}

func TestPrintStrengthResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.StrengthResult{
		OverallScore: 84,
		Grade:        "A",
		Completeness: 90,
		Categories: []types.StrengthCategory{
			{Name: "Contact Information", Score: 9, MaxScore: 11},
			{Name: "Skills", Score: 18, MaxScore: 20},
		},
		TopStrengths: []string{"Strong skills"},
		Improvements: []string{"Add your LinkedIn profile URL"},
	}

	p.PrintStrengthResult(result)
	output := buf.String()

	assert.Contains(t, output, "RESUME STRENGTH")
	assert.Contains(t, output, "84/100 (A)")
	assert.Contains(t, output, "90%")
	assert.Contains(t, output, "Contact Information")
	assert.Contains(t, output, "Strong skills")
	assert.Contains(t, output, "Add your LinkedIn profile URL")
}

func TestPrintStrengthResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStrengthResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		Name:  "A Very Long Name That Should Be Truncated To Fit The Box Width",
		Email: "someone.with.an.extremely.long.address@subdomain.example-domain.com",
	}

	p.PrintParsedResume(resume)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
