// Package matching scores a parsed resume against a job description,
// producing a weighted match score, grade, skill-gap lists and
// recommendations.
package matching

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/vedzkun/applytics/internal/parsing"
	"github.com/vedzkun/applytics/internal/types"
)

// Weights for the overall score components.
const (
	skillWeight      = 0.60
	experienceWeight = 0.25
	educationWeight  = 0.15
)

// Shares of the skill score carried by required vs preferred skills. When a
// job yields no skills of one class, the corresponding flat half-share is
// awarded instead so empty requirement sets are not rewarded with 0.
const (
	requiredSkillShare  = 70.0
	preferredSkillShare = 30.0
)

var (
	advancedDegreePattern = regexp.MustCompile(`(?i)(?:master|m\.?s\.?|m\.?a\.?|mba|ph\.?d)`)
	bachelorDegreePattern = regexp.MustCompile(`(?i)(?:bachelor|b\.?s\.?|b\.?a\.?)`)
)

// EquivalenceFunc decides whether a resume skill covers a job skill. Both
// arguments are lowercase.
type EquivalenceFunc func(resumeSkill, jobSkill string) bool

// substringEquivalence tolerates alias drift ("node" vs "node.js") by
// treating either-direction substring containment as a match, at the cost of
// false positives on short tokens.
func substringEquivalence(resumeSkill, jobSkill string) bool {
	return strings.Contains(resumeSkill, jobSkill) || strings.Contains(jobSkill, resumeSkill)
}

// Matcher scores resumes against job descriptions. The skill equivalence
// predicate is pluggable so a proper alias table can replace the default
// substring heuristic without touching the scoring math.
type Matcher struct {
	equivalent EquivalenceFunc
}

// New returns a Matcher with the default substring equivalence predicate.
func New() *Matcher {
	return &Matcher{equivalent: substringEquivalence}
}

// NewWithEquivalence returns a Matcher using a custom equivalence predicate.
func NewWithEquivalence(eq EquivalenceFunc) *Matcher {
	return &Matcher{equivalent: eq}
}

// Match scores resume against jobDescription with the default Matcher.
func Match(resume *types.ParsedResume, jobDescription string) *types.MatchResult {
	return New().Match(resume, jobDescription)
}

// Match extracts job requirements from jobDescription and combines skill,
// experience and education scores into a weighted overall result.
func (m *Matcher) Match(resume *types.ParsedResume, jobDescription string) *types.MatchResult {
	reqs := parsing.ExtractJobRequirements(jobDescription)

	skills := m.scoreSkills(resume.Skills, reqs.RequiredSkills, reqs.PreferredSkills)
	expScore, expMatch := scoreExperience(resume.ExperienceYears, reqs.RequiredExperience)
	eduScore := scoreEducation(resume, reqs.EducationRequired)

	overall := int(math.Round(
		float64(skills.score)*skillWeight +
			float64(expScore)*experienceWeight +
			float64(eduScore)*educationWeight))

	breakdown := types.MatchBreakdown{
		SkillScore:      skills.score,
		ExperienceScore: expScore,
		EducationScore:  eduScore,
		OverallScore:    overall,
	}

	return &types.MatchResult{
		Score:             overall,
		Grade:             matchGrade(overall),
		Breakdown:         breakdown,
		SkillMatches:      skills.matches,
		MatchedSkills:     skills.matched,
		MissingSkills:     skills.missing,
		BonusSkills:       skills.bonus,
		ExperienceMatch:   expMatch,
		Recommendations:   buildRecommendations(overall, eduScore, expMatch, skills.missing, skills.bonus),
		LearningResources: LookupResources(skills.missing),
		Resume:            resume,
	}
}

type skillScoreResult struct {
	score   int
	matched []string
	missing []string
	bonus   []string
	matches []types.SkillMatch
}

func (m *Matcher) scoreSkills(resumeSkills, required, preferred []string) skillScoreResult {
	resumeLower := make([]string, len(resumeSkills))
	for i, s := range resumeSkills {
		resumeLower[i] = strings.ToLower(s)
	}

	covers := func(jobSkill string) bool {
		jobLower := strings.ToLower(jobSkill)
		for _, rs := range resumeLower {
			if rs == jobLower || m.equivalent(rs, jobLower) {
				return true
			}
		}
		return false
	}

	result := skillScoreResult{
		matched: make([]string, 0),
		missing: make([]string, 0),
		bonus:   make([]string, 0),
		matches: make([]types.SkillMatch, 0, len(required)+len(preferred)),
	}

	matchedRequired, matchedPreferred := 0, 0
	for _, s := range required {
		ok := covers(s)
		if ok {
			matchedRequired++
			result.matched = append(result.matched, s)
		} else {
			result.missing = append(result.missing, s)
		}
		result.matches = append(result.matches, types.SkillMatch{Skill: s, Matched: ok, Importance: types.ImportanceRequired})
	}
	for _, s := range preferred {
		ok := covers(s)
		if ok {
			matchedPreferred++
			result.matched = append(result.matched, s)
		} else {
			result.missing = append(result.missing, s)
		}
		result.matches = append(result.matches, types.SkillMatch{Skill: s, Matched: ok, Importance: types.ImportancePreferred})
	}

	jobSkills := make(map[string]bool, len(required)+len(preferred))
	for _, s := range required {
		jobSkills[strings.ToLower(s)] = true
	}
	for _, s := range preferred {
		jobSkills[strings.ToLower(s)] = true
	}
	for _, rs := range resumeLower {
		if !jobSkills[rs] {
			result.bonus = append(result.bonus, rs)
		}
	}

	requiredScore := requiredSkillShare / 2
	if len(required) > 0 {
		requiredScore = float64(matchedRequired) / float64(len(required)) * requiredSkillShare
	}
	preferredScore := preferredSkillShare / 2
	if len(preferred) > 0 {
		preferredScore = float64(matchedPreferred) / float64(len(preferred)) * preferredSkillShare
	}
	result.score = int(math.Round(requiredScore + preferredScore))

	return result
}

// scoreExperience grades candidate years against the job's requirement.
// A job that states no requirement yields a neutral 50/"unknown" rather than
// rewarding or punishing the candidate.
func scoreExperience(candidateYears, requiredYears int) (int, string) {
	if requiredYears == 0 {
		return 50, types.ExperienceUnknown
	}

	ratio := float64(candidateYears) / float64(requiredYears)
	switch {
	case ratio >= 1.2:
		return 100, types.ExperienceExceeds
	case ratio >= 0.8:
		return 80, types.ExperienceMeets
	case ratio >= 0.5:
		return 50, types.ExperienceBelow
	default:
		return 25, types.ExperienceBelow
	}
}

func scoreEducation(resume *types.ParsedResume, educationRequired bool) int {
	if !educationRequired {
		return 70
	}
	if len(resume.Education) == 0 {
		return 30
	}
	for _, e := range resume.Education {
		if advancedDegreePattern.MatchString(e.Degree) {
			return 100
		}
	}
	for _, e := range resume.Education {
		if bachelorDegreePattern.MatchString(e.Degree) {
			return 80
		}
	}
	return 50
}

// matchGrade maps a match score to a letter grade. Bands are inclusive at the
// lower bound.
func matchGrade(score int) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 85:
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

func buildRecommendations(overall, eduScore int, expMatch string, missing, bonus []string) []string {
	recs := make([]string, 0)

	if len(missing) > 0 {
		top := missing
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, fmt.Sprintf("Consider learning these in-demand skills: %s", strings.Join(top, ", ")))
	}
	if expMatch == types.ExperienceBelow {
		recs = append(recs, "Highlight relevant projects or internships to compensate for experience gap")
	}
	if eduScore < 70 {
		recs = append(recs, "Consider pursuing relevant certifications to strengthen your education profile")
	}
	if len(bonus) > 2 {
		recs = append(recs, "Great! You have additional skills. Highlight them in your cover letter")
	}

	switch {
	case overall > 0 && overall < 50:
		recs = append(recs, "This role may not be the best fit. Consider positions more aligned with your current skillset")
	case overall >= 80:
		recs = append(recs, "Strong match! Tailor your resume to emphasize the matching skills")
	}

	return recs
}
