// Package strength analyzes a parsed resume's completeness and quality
// across six weighted categories, producing a graded score and improvement
// tips. It needs no job description; the resume alone is the input.
package strength

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/vedzkun/applytics/internal/types"
)

const (
	maxContactScore    = 11
	maxSkillsScore     = 20
	maxExperienceScore = 25
	maxEducationScore  = 21
	maxSummaryScore    = 10
	maxPresentation    = 13

	maxImprovements    = 8
	completenessFields = 10
)

var (
	frameworkPattern = regexp.MustCompile(`(?i)react|vue|angular|django|spring`)
	languagePattern  = regexp.MustCompile(`(?i)javascript|python|java|typescript|c#`)
	cloudPattern     = regexp.MustCompile(`(?i)aws|azure|gcp|docker|kubernetes`)
	advancedPattern  = regexp.MustCompile(`(?i)master|mba|ph\.?d`)
)

// Analyze computes a category-weighted strength report for the resume.
func Analyze(resume *types.ParsedResume) *types.StrengthResult {
	categories := []types.StrengthCategory{
		evaluateContactInfo(resume),
		evaluateSkills(resume),
		evaluateExperience(resume),
		evaluateEducation(resume),
		evaluateSummary(resume),
		evaluatePresentation(resume),
	}

	totalScore, maxScore := 0, 0
	for _, c := range categories {
		totalScore += c.Score
		maxScore += c.MaxScore
	}
	overall := int(math.Round(float64(totalScore) / float64(maxScore) * 100))

	improvements := make([]string, 0)
	for _, c := range categories {
		improvements = append(improvements, c.Tips...)
	}
	if len(improvements) > maxImprovements {
		improvements = improvements[:maxImprovements]
	}

	return &types.StrengthResult{
		OverallScore: overall,
		Grade:        strengthGrade(overall),
		Categories:   categories,
		TopStrengths: topStrengths(categories, resume),
		Improvements: improvements,
		Completeness: completeness(resume),
	}
}

func evaluateContactInfo(resume *types.ParsedResume) types.StrengthCategory {
	score := 0
	tips := make([]string, 0)

	if resume.Email != "" {
		score += 3
	} else {
		tips = append(tips, "Add a professional email address")
	}
	if resume.Phone != "" {
		score += 2
	} else {
		tips = append(tips, "Include a phone number")
	}
	if resume.LinkedIn != "" {
		score += 3
	} else {
		tips = append(tips, "Add your LinkedIn profile URL")
	}
	if resume.GitHub != "" {
		score += 2
	} else {
		tips = append(tips, "Include GitHub for technical roles")
	}
	if resume.Location != "" {
		score++
	}

	return types.StrengthCategory{Name: "Contact Information", Score: score, MaxScore: maxContactScore, Tips: tips}
}

func evaluateSkills(resume *types.ParsedResume) types.StrengthCategory {
	tips := make([]string, 0)
	score := len(resume.Skills) * 2
	if score > maxSkillsScore {
		score = maxSkillsScore
	}

	// Thresholds are cumulative, not mutually exclusive.
	if len(resume.Skills) < 5 {
		tips = append(tips, "Add more relevant technical skills")
	}
	if len(resume.Skills) < 10 {
		tips = append(tips, "Consider including soft skills like leadership, communication")
	}
	if len(resume.Skills) == 0 {
		tips = append(tips, "Skills section is critical - add your technical and soft skills")
	}

	if !anyMatch(resume.Skills, frameworkPattern) {
		tips = append(tips, "Consider adding framework experience")
	}
	if !anyMatch(resume.Skills, languagePattern) {
		tips = append(tips, "List programming languages you know")
	}
	if !anyMatch(resume.Skills, cloudPattern) {
		tips = append(tips, "Cloud skills (AWS, Azure, Docker) are highly valued")
	}

	return types.StrengthCategory{Name: "Skills", Score: score, MaxScore: maxSkillsScore, Tips: tips}
}

func evaluateExperience(resume *types.ParsedResume) types.StrengthCategory {
	tips := make([]string, 0)

	yearsScore := resume.ExperienceYears * 3
	if yearsScore > 15 {
		yearsScore = 15
	}
	jobCount := len(resume.WorkExperience)
	jobsScore := jobCount * 2
	if jobsScore > 10 {
		jobsScore = 10
	}

	if jobCount == 0 {
		tips = append(tips, "Add your work experience with job titles and companies")
	}
	if resume.ExperienceYears == 0 {
		tips = append(tips, "Include dates for your work experience")
	}
	if jobCount > 0 && jobCount < 3 {
		tips = append(tips, "Include more relevant work history if available")
	}

	return types.StrengthCategory{Name: "Experience", Score: yearsScore + jobsScore, MaxScore: maxExperienceScore, Tips: tips}
}

func evaluateEducation(resume *types.ParsedResume) types.StrengthCategory {
	tips := make([]string, 0)
	score := 0

	if len(resume.Education) > 0 {
		score += 8
		advanced := false
		for _, e := range resume.Education {
			if advancedPattern.MatchString(e.Degree) {
				advanced = true
				break
			}
		}
		if advanced {
			score += 7
		} else {
			score += 3
		}
	} else {
		tips = append(tips, "Add your educational background")
	}

	certScore := len(resume.Certifications) * 2
	if certScore > 6 {
		certScore = 6
	}
	score += certScore
	if len(resume.Certifications) == 0 {
		tips = append(tips, "Industry certifications can strengthen your profile")
	}

	return types.StrengthCategory{Name: "Education & Certifications", Score: score, MaxScore: maxEducationScore, Tips: tips}
}

func evaluateSummary(resume *types.ParsedResume) types.StrengthCategory {
	tips := make([]string, 0)
	score := 0

	if resume.Summary != "" {
		wordCount := len(strings.Fields(resume.Summary))
		switch {
		case wordCount >= 30:
			score += 10
		case wordCount >= 15:
			score += 6
		default:
			score += 3
		}

		if wordCount < 30 {
			tips = append(tips, "Expand your summary to 30-50 words for better impact")
		}
		if wordCount > 100 {
			tips = append(tips, "Consider condensing your summary to be more impactful")
		}
	} else {
		tips = append(tips, "Add a professional summary highlighting your key strengths")
	}

	return types.StrengthCategory{Name: "Professional Summary", Score: score, MaxScore: maxSummaryScore, Tips: tips}
}

func evaluatePresentation(resume *types.ParsedResume) types.StrengthCategory {
	tips := make([]string, 0)
	score := 0

	if resume.Name != "" {
		score += 5
		if len(strings.Fields(resume.Name)) >= 2 {
			score += 3
		}
	} else {
		tips = append(tips, "Make sure your full name is prominently displayed")
	}

	if len(resume.Languages) > 1 {
		score += 5
	} else if len(resume.Languages) == 0 {
		tips = append(tips, "Consider adding language proficiencies")
	}

	return types.StrengthCategory{Name: "Presentation", Score: score, MaxScore: maxPresentation, Tips: tips}
}

// strengthGrade maps an overall strength score to a letter grade. The bands
// differ from match grades at the top end.
func strengthGrade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// topStrengths picks the two best categories by score ratio (included only at
// 60% or above) plus unconditional bonuses for breadth and tenure.
func topStrengths(categories []types.StrengthCategory, resume *types.ParsedResume) []string {
	strengths := make([]string, 0)

	sorted := make([]types.StrengthCategory, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri := float64(sorted[i].Score) / float64(sorted[i].MaxScore)
		rj := float64(sorted[j].Score) / float64(sorted[j].MaxScore)
		return ri > rj
	})

	for _, c := range sorted[:2] {
		if float64(c.Score)/float64(c.MaxScore) >= 0.6 {
			strengths = append(strengths, "Strong "+strings.ToLower(c.Name))
		}
	}

	if len(resume.Skills) >= 10 {
		strengths = append(strengths, "Diverse skill set")
	}
	if resume.ExperienceYears >= 5 {
		strengths = append(strengths, "Significant experience")
	}

	return strengths
}

// completeness is the share of ten tracked fields that are non-empty,
// independent of quality scoring.
func completeness(resume *types.ParsedResume) int {
	filled := 0
	if resume.Name != "" {
		filled++
	}
	if resume.Email != "" {
		filled++
	}
	if resume.Phone != "" {
		filled++
	}
	if resume.LinkedIn != "" {
		filled++
	}
	if len(resume.Skills) > 0 {
		filled++
	}
	if resume.Summary != "" {
		filled++
	}
	if len(resume.Education) > 0 {
		filled++
	}
	if len(resume.WorkExperience) > 0 {
		filled++
	}
	if len(resume.Certifications) > 0 {
		filled++
	}
	if len(resume.Languages) > 0 {
		filled++
	}
	return int(math.Round(float64(filled) / float64(completenessFields) * 100))
}

func anyMatch(skills []string, pattern *regexp.Regexp) bool {
	for _, s := range skills {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}
