package types

// JobRequirements holds the skill and experience requirements extracted from a
// job description. It is derived per request and never persisted.
type JobRequirements struct {
	RequiredSkills     []string `json:"requiredSkills"`
	PreferredSkills    []string `json:"preferredSkills"`
	RequiredExperience int      `json:"requiredExperience"`
	EducationRequired  bool     `json:"educationRequired"`
}
