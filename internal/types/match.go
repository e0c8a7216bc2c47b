package types

// Skill importance levels used in SkillMatch.
const (
	ImportanceRequired  = "required"
	ImportancePreferred = "preferred"
	ImportanceBonus     = "bonus"
)

// Experience match levels.
const (
	ExperienceExceeds = "exceeds"
	ExperienceMeets   = "meets"
	ExperienceBelow   = "below"
	ExperienceUnknown = "unknown"
)

// SkillMatch records whether a single job skill was covered by the resume.
type SkillMatch struct {
	Skill      string `json:"skill"`
	Matched    bool   `json:"matched"`
	Importance string `json:"importance"`
}

// MatchBreakdown holds the individual score components of a match.
type MatchBreakdown struct {
	SkillScore      int `json:"skillScore"`
	ExperienceScore int `json:"experienceScore"`
	EducationScore  int `json:"educationScore"`
	OverallScore    int `json:"overallScore"`
}

// Resource is a single curated learning resource for a skill.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// LearningResource groups curated resources for one missing skill.
type LearningResource struct {
	Skill     string     `json:"skill"`
	Resources []Resource `json:"resources"`
}

// MatchResult is the full outcome of scoring a resume against a job description.
type MatchResult struct {
	Score             int                `json:"score"`
	Grade             string             `json:"grade"`
	Breakdown         MatchBreakdown     `json:"breakdown"`
	SkillMatches      []SkillMatch       `json:"skillMatches"`
	MatchedSkills     []string           `json:"matchedSkills"`
	MissingSkills     []string           `json:"missingSkills"`
	BonusSkills       []string           `json:"bonusSkills"`
	ExperienceMatch   string             `json:"experienceMatch"`
	Recommendations   []string           `json:"recommendations"`
	LearningResources []LearningResource `json:"learningResources"`
	Resume            *ParsedResume      `json:"resume"`
}
