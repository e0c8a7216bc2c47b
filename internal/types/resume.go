// Package types provides type definitions for structured data used throughout the applytics system.
package types

// Education represents one degree-bearing line found in a resume.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	Field       string `json:"field,omitempty"`
}

// WorkExperience represents one position extracted from the experience section.
type WorkExperience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// ParsedResume is the structured record produced by parsing free-text resume content.
// Scalar fields are empty when the corresponding pattern was not found; list
// fields are always non-nil so they serialize as empty arrays rather than null.
type ParsedResume struct {
	Name            string           `json:"name,omitempty"`
	Email           string           `json:"email,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	Location        string           `json:"location,omitempty"`
	LinkedIn        string           `json:"linkedin,omitempty"`
	GitHub          string           `json:"github,omitempty"`
	Portfolio       string           `json:"portfolio,omitempty"`
	Skills          []string         `json:"skills"`
	Summary         string           `json:"summary,omitempty"`
	ExperienceYears int              `json:"experienceYears"`
	Education       []Education      `json:"education"`
	WorkExperience  []WorkExperience `json:"workExperience"`
	Certifications  []string         `json:"certifications"`
	Languages       []string         `json:"languages"`
}
