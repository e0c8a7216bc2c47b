package parsing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com
Location: San Francisco, CA
(555) 123-4567
linkedin.com/in/janedoe
github.com/janedoe

Profile: Frontend engineer focused on shipping reliable product features.

Skills: React, Node.js, TypeScript

Experience
Senior Developer
Acme Corp
2021 - 2024

Education
Bachelor of Science in Computer Science, 2019
`

func TestParseResume_ContactFields(t *testing.T) {
	parsed := ParseResume(sampleResume)

	assert.Equal(t, "Jane Doe", parsed.Name)
	assert.Equal(t, "jane.doe@example.com", parsed.Email)
	assert.Equal(t, "(555) 123-4567", parsed.Phone)
	assert.Equal(t, "San Francisco, CA", parsed.Location)
	assert.Equal(t, "https://linkedin.com/in/janedoe", parsed.LinkedIn)
	assert.Equal(t, "https://github.com/janedoe", parsed.GitHub)
}

func TestParseResume_Portfolio(t *testing.T) {
	parsed := ParseResume("Jane Doe\nhttps://linkedin.com/in/janedoe\nhttps://janedoe.dev/projects\n")

	assert.Equal(t, "https://janedoe.dev/projects", parsed.Portfolio)
}

func TestParseResume_PortfolioSkipsProfileLinks(t *testing.T) {
	parsed := ParseResume("Jane Doe\nhttps://github.com/janedoe\n")

	assert.Empty(t, parsed.Portfolio)
}

func TestParseResume_Skills(t *testing.T) {
	parsed := ParseResume(sampleResume)

	assert.Contains(t, parsed.Skills, "react")
	assert.Contains(t, parsed.Skills, "node.js")
	assert.Contains(t, parsed.Skills, "typescript")

	// No duplicates after normalization.
	seen := make(map[string]bool)
	for _, s := range parsed.Skills {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
	}
}

func TestParseResume_ExperienceFromDateRanges(t *testing.T) {
	parsed := ParseResume(sampleResume)

	assert.Equal(t, 3, parsed.ExperienceYears)
}

func TestParseResume_WorkHistory(t *testing.T) {
	parsed := ParseResume(sampleResume)

	require.Len(t, parsed.WorkExperience, 1)
	assert.Equal(t, "Senior Developer", parsed.WorkExperience[0].Title)
	assert.Equal(t, "Acme Corp", parsed.WorkExperience[0].Company)
	assert.Equal(t, "2021 - 2024", parsed.WorkExperience[0].Duration)
}

func TestParseResume_Education(t *testing.T) {
	parsed := ParseResume(sampleResume)

	require.Len(t, parsed.Education, 1)
	assert.Contains(t, parsed.Education[0].Degree, "Bachelor of Science")
	assert.Equal(t, "2019", parsed.Education[0].Year)
}

func TestParseResume_Summary(t *testing.T) {
	parsed := ParseResume(sampleResume)

	assert.Equal(t, "Frontend engineer focused on shipping reliable product features.", parsed.Summary)
}

func TestParseResume_EmptyInput(t *testing.T) {
	parsed := ParseResume("")

	assert.Empty(t, parsed.Name)
	assert.Empty(t, parsed.Email)
	assert.Zero(t, parsed.ExperienceYears)

	// List fields are always present, never nil.
	assert.NotNil(t, parsed.Skills)
	assert.NotNil(t, parsed.Education)
	assert.NotNil(t, parsed.WorkExperience)
	assert.NotNil(t, parsed.Certifications)
	assert.NotNil(t, parsed.Languages)
}

func TestParseResume_EmailLowercased(t *testing.T) {
	parsed := ParseResume("Reach me at Jane.Doe@Example.COM for details")

	assert.Equal(t, "jane.doe@example.com", parsed.Email)
}

func TestGuessName_SkipsBlankLines(t *testing.T) {
	parsed := ParseResume("\n\n  John Smith\njohn@example.com")

	assert.Equal(t, "John Smith", parsed.Name)
}

func TestGuessName_LabeledFallback(t *testing.T) {
	// First non-blank line is not a plausible name, so the label wins.
	parsed := ParseResume("12345 Main Street\nName: John Smith\n555-123-4567")

	assert.Equal(t, "John Smith", parsed.Name)
}

func TestGuessName_TooManyWords(t *testing.T) {
	parsed := ParseResume("Curriculum vitae of a software engineering professional\n")

	assert.Empty(t, parsed.Name)
}

func TestExtractExperienceYears_ExplicitPhraseWins(t *testing.T) {
	// The explicit statement overrides any date-range arithmetic.
	text := "8 years of experience\n2020 - 2022\n2015 - 2018"

	assert.Equal(t, 8, extractExperienceYears(text))
}

func TestExtractExperienceYears_OpenEndedRange(t *testing.T) {
	start := time.Now().Year() - 4
	text := fmt.Sprintf("Developer\n%d - present", start)

	assert.Equal(t, 4, extractExperienceYears(text))
}

func TestExtractExperienceYears_InvertedRangeIgnored(t *testing.T) {
	assert.Equal(t, 0, extractExperienceYears("2024 - 2020"))
}

func TestExtractExperienceYears_SumsMultipleRanges(t *testing.T) {
	assert.Equal(t, 5, extractExperienceYears("2015 - 2018\n2019 - 2021"))
}

func TestExtractSkills_SplitsOnDelimiters(t *testing.T) {
	skills := extractSkills("Skills: python; django | redis\n\nOther text")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "django")
	assert.Contains(t, skills, "redis")
}

func TestExtractSkills_LexiconScanWholeText(t *testing.T) {
	// No labeled section at all; skills still found via the lexicon.
	skills := extractSkills("Built services in Go and deployed with Docker on AWS.")

	assert.Contains(t, skills, "go")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "aws")
}

func TestExtractWorkExperience_NoSection(t *testing.T) {
	experiences := extractWorkExperience("Just a summary with no job history")

	assert.NotNil(t, experiences)
	assert.Empty(t, experiences)
}

func TestExtractWorkExperience_CapsEntries(t *testing.T) {
	text := "Experience\n"
	for i := 0; i < 15; i++ {
		text += fmt.Sprintf("Engineer Level %d\nCompany Number %d\n\n", i, i)
	}

	experiences := extractWorkExperience(text)

	assert.Len(t, experiences, 10)
}

func TestExtractCertifications(t *testing.T) {
	certs := extractCertifications("Certifications\nAWS Certified Developer\nCKA")

	assert.Contains(t, certs, "AWS Certified Developer")
	// "CKA" is only 3 characters and is filtered out.
	assert.NotContains(t, certs, "CKA")
}

func TestExtractLanguages(t *testing.T) {
	langs := extractLanguages("Languages: English, Spanish; German")

	assert.Equal(t, []string{"English", "Spanish", "German"}, langs)
}

func TestExtractSummary_TooShortIgnored(t *testing.T) {
	assert.Empty(t, extractSummary("Summary: Engineer."))
}
