package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vedzkun/applytics/internal/lexicon"
	"github.com/vedzkun/applytics/internal/types"
)

const (
	maxWorkEntries = 10
	maxCertEntries = 10
	maxLangEntries = 10
)

var (
	skillsSectionPattern = regexp.MustCompile(`(?i)(?:skills|technical skills|technologies|tech stack)[:\s]*([\s\S]{0,500})`)
	skillSplitPattern    = regexp.MustCompile(`[;,|·•\n]`)
	whitespacePattern    = regexp.MustCompile(`\s+`)

	explicitYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of)?\s*(?:experience|exp)`),
		regexp.MustCompile(`(?i)experience[:\s]*(\d+)\+?\s*years?`),
	}
	dateRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current|now)`)

	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:bachelor|b\.?s\.?|b\.?a\.?|b\.?sc\.?|b\.?tech)`),
		regexp.MustCompile(`(?i)(?:master|m\.?s\.?|m\.?a\.?|m\.?sc\.?|m\.?tech|mba)`),
		regexp.MustCompile(`(?i)(?:ph\.?d\.?|doctorate|doctoral)`),
		regexp.MustCompile(`(?i)(?:associate|a\.?s\.?|a\.?a\.?)`),
	}
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	workSectionPattern  = regexp.MustCompile(`(?i)(?:experience|work history|employment)[:\s]*`)
	workSectionEnd      = regexp.MustCompile(`(?i)education|skills|certifications`)
	blockSplitPattern   = regexp.MustCompile(`\n{2,}`)
	certSectionPattern  = regexp.MustCompile(`(?i)(?:certifications?|certificates?|credentials?)[:\s]*([\s\S]{0,500})`)
	langSectionPattern  = regexp.MustCompile(`(?i)(?:languages?)[:\s]*([\s\S]{0,200})`)
	langSplitPattern    = regexp.MustCompile(`[,;\n]`)
	summarySectionPattern = regexp.MustCompile(`(?i)(?:summary|profile|about me|objective|professional summary)[:\s]*([\s\S]{0,500})`)
)

// extractSkills unions tokens from a labeled skills block with lexicon
// entries found anywhere in the text. The result is deduplicated after
// whitespace normalization; discovery order is not meaningful.
func extractSkills(text string) []string {
	skills := make([]string, 0)
	lowered := strings.ToLower(text)

	if m := skillsSectionPattern.FindStringSubmatch(text); m != nil {
		block := strings.SplitN(m[1], "\n\n", 2)[0]
		for _, token := range skillSplitPattern.Split(block, -1) {
			t := strings.ToLower(strings.TrimSpace(token))
			if len(t) > 1 && len(t) < 40 {
				skills = append(skills, t)
			}
		}
	}

	for _, entry := range lexicon.Entries() {
		if entry.MatchString(lowered) && !containsString(skills, entry.Name) {
			skills = append(skills, entry.Name)
		}
	}

	deduped := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		cleaned := strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		deduped = append(deduped, cleaned)
	}
	return deduped
}

// extractExperienceYears prefers an explicit "N years of experience" phrase;
// otherwise it sums the spans of all YYYY - YYYY/present ranges in the text.
// Inverted ranges contribute 0, never a negative amount.
func extractExperienceYears(text string) int {
	for _, p := range explicitYearsPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years
			}
		}
	}

	total := 0
	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(m[2])
		if err != nil {
			// Open-ended range ("present", "current", "now").
			end = time.Now().Year()
		}
		if end > start {
			total += end - start
		}
	}
	return total
}

func extractEducation(text string) []types.Education {
	education := make([]types.Education, 0)
	for _, line := range strings.Split(text, "\n") {
		for _, degree := range degreePatterns {
			if degree.MatchString(line) {
				entry := types.Education{Degree: strings.TrimSpace(line)}
				if year := yearPattern.FindString(line); year != "" {
					entry.Year = year
				}
				education = append(education, entry)
				break
			}
		}
	}
	return education
}

// extractWorkExperience locates the block between an experience label and the
// next education/skills/certifications mention, splits it on blank lines and
// reads each sub-block as title line, company line and an optional date
// range. The entry count is capped to protect against runaway false splits.
func extractWorkExperience(text string) []types.WorkExperience {
	experiences := make([]types.WorkExperience, 0)

	loc := workSectionPattern.FindStringIndex(text)
	if loc == nil {
		return experiences
	}
	section := text[loc[1]:]
	if end := workSectionEnd.FindStringIndex(section); end != nil {
		section = section[:end[0]]
	}

	for _, block := range blockSplitPattern.Split(section, -1) {
		if len(strings.TrimSpace(block)) < 10 {
			continue
		}
		lines := make([]string, 0)
		for _, l := range strings.Split(block, "\n") {
			if strings.TrimSpace(l) != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			continue
		}

		exp := types.WorkExperience{Title: strings.TrimSpace(lines[0])}
		if len(lines) > 1 {
			exp.Company = strings.TrimSpace(lines[1])
		}
		if m := dateRangePattern.FindString(block); m != "" {
			exp.Duration = m
		}
		experiences = append(experiences, exp)
	}

	if len(experiences) > maxWorkEntries {
		experiences = experiences[:maxWorkEntries]
	}
	return experiences
}

func extractCertifications(text string) []string {
	certs := make([]string, 0)
	if m := certSectionPattern.FindStringSubmatch(text); m != nil {
		for _, line := range strings.Split(m[1], "\n") {
			t := strings.TrimSpace(line)
			if len(t) > 3 && len(t) < 100 {
				certs = append(certs, t)
			}
		}
	}
	if len(certs) > maxCertEntries {
		certs = certs[:maxCertEntries]
	}
	return certs
}

func extractLanguages(text string) []string {
	langs := make([]string, 0)
	if m := langSectionPattern.FindStringSubmatch(text); m != nil {
		for _, token := range langSplitPattern.Split(m[1], -1) {
			t := strings.TrimSpace(token)
			if len(t) > 1 && len(t) < 30 {
				langs = append(langs, t)
			}
		}
	}
	if len(langs) > maxLangEntries {
		langs = langs[:maxLangEntries]
	}
	return langs
}

// extractSummary returns the first paragraph of 20+ characters following a
// summary-style label, truncated at the first blank-line boundary.
func extractSummary(text string) string {
	if m := summarySectionPattern.FindStringSubmatch(text); m != nil {
		summary := strings.TrimSpace(strings.SplitN(m[1], "\n\n", 2)[0])
		if len(summary) > 20 {
			return summary
		}
	}
	return ""
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
