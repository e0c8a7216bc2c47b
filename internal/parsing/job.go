package parsing

import (
	"regexp"
	"strconv"

	"github.com/vedzkun/applytics/internal/lexicon"
	"github.com/vedzkun/applytics/internal/types"
)

var (
	requiredSectionPattern  = regexp.MustCompile(`(?i)(?:required|must have|requirements)[:\s]*([\s\S]{0,600})`)
	preferredSectionPattern = regexp.MustCompile(`(?i)(?:preferred|nice to have|bonus)[:\s]*([\s\S]{0,400})`)
	requiredYearsPattern    = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)
	educationNeededPattern  = regexp.MustCompile(`(?i)(?:bachelor|master|degree|phd|b\.?s\.?|m\.?s\.?)`)
)

// ExtractJobRequirements derives skill and experience requirements from a job
// description. Skills are classified by the labeled window they appear in; a
// lexicon skill mentioned anywhere outside both windows is treated as
// required, on the conservative assumption that unlabeled mentions are
// mandatory.
func ExtractJobRequirements(text string) types.JobRequirements {
	reqs := types.JobRequirements{
		RequiredSkills:  make([]string, 0),
		PreferredSkills: make([]string, 0),
	}

	requiredWindow := sectionWindow(requiredSectionPattern, text)
	preferredWindow := sectionWindow(preferredSectionPattern, text)

	inRequired := lexiconSet(requiredWindow)
	inPreferred := lexiconSet(preferredWindow)

	for _, entry := range lexicon.Entries() {
		if !entry.MatchString(text) {
			continue
		}
		switch {
		case inRequired[entry.Name]:
			reqs.RequiredSkills = appendUnique(reqs.RequiredSkills, entry.Name)
		case inPreferred[entry.Name]:
			reqs.PreferredSkills = appendUnique(reqs.PreferredSkills, entry.Name)
		default:
			reqs.RequiredSkills = appendUnique(reqs.RequiredSkills, entry.Name)
		}
	}

	if m := requiredYearsPattern.FindStringSubmatch(text); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			reqs.RequiredExperience = years
		}
	}

	reqs.EducationRequired = educationNeededPattern.MatchString(text)

	return reqs
}

// sectionWindow returns the bounded text window captured after a section
// label, or empty when the label is absent.
func sectionWindow(pattern *regexp.Regexp, text string) string {
	if m := pattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func lexiconSet(window string) map[string]bool {
	set := make(map[string]bool)
	if window == "" {
		return set
	}
	for _, name := range lexicon.FindAll(window) {
		set[name] = true
	}
	return set
}

func appendUnique(list []string, s string) []string {
	if containsString(list, s) {
		return list
	}
	return append(list, s)
}
