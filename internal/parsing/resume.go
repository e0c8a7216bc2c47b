// Package parsing turns free-text resumes and job descriptions into
// structured records. Every field extractor is an independent pure function
// that tolerates absence: a pattern that does not match yields an empty
// value, never an error.
package parsing

import (
	"regexp"
	"strings"

	"github.com/vedzkun/applytics/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	linkedinPattern  = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern    = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	portfolioPattern = regexp.MustCompile(`(?i)https?://[\w.-]+\.[a-z]{2,}(?:/[\w./-]*)?`)

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:location|address|city)[:\s]+([A-Za-z\s,]+)`),
		regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z]{2})`),
	}

	bareNamePattern    = regexp.MustCompile(`^[A-Za-z\s,.'-]{2,50}$`)
	labeledNamePattern = regexp.MustCompile(`(?i)name[:\-]\s*([A-Za-z\s,.'-]+)`)
)

// ParseResume extracts a structured resume record from raw text. It is a
// deterministic pure function; the worst case for any field is an empty
// value, which downstream scorers treat as "no signal".
func ParseResume(raw string) *types.ParsedResume {
	text := strings.ReplaceAll(raw, "\r", "")

	return &types.ParsedResume{
		Name:            guessName(text),
		Email:           extractEmail(text),
		Phone:           extractPhone(text),
		Location:        extractLocation(text),
		LinkedIn:        extractLinkedIn(text),
		GitHub:          extractGitHub(text),
		Portfolio:       extractPortfolio(text),
		Skills:          extractSkills(text),
		Summary:         extractSummary(text),
		ExperienceYears: extractExperienceYears(text),
		Education:       extractEducation(text),
		WorkExperience:  extractWorkExperience(text),
		Certifications:  extractCertifications(text),
		Languages:       extractLanguages(text),
	}
}

func extractEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return strings.ToLower(m)
	}
	return ""
}

func extractPhone(text string) string {
	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

func extractLinkedIn(text string) string {
	if m := linkedinPattern.FindString(text); m != "" {
		return "https://" + m
	}
	return ""
}

func extractGitHub(text string) string {
	if m := githubPattern.FindString(text); m != "" {
		return "https://" + m
	}
	return ""
}

// extractPortfolio returns the first personal-site URL, skipping the
// LinkedIn and GitHub links already captured by their own fields.
func extractPortfolio(text string) string {
	for _, m := range portfolioPattern.FindAllString(text, -1) {
		lower := strings.ToLower(m)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return m
	}
	return ""
}

func extractLocation(text string) string {
	for _, p := range locationPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// guessName assumes the resume opens with the candidate's name: the first
// non-blank line wins when it is short, letters-only and at most four words.
// A "name:" labeled line is the fallback. This is a structural heuristic and
// misfires on unconventional formats (e.g. a resume opening with an address).
func guessName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		first := strings.TrimSpace(line)
		if first == "" {
			continue
		}
		if bareNamePattern.MatchString(first) && len(strings.Fields(first)) <= 4 {
			return first
		}
		break
	}
	if m := labeledNamePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
