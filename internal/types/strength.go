package types

// StrengthCategory is one weighted scoring category of a strength report.
type StrengthCategory struct {
	Name     string   `json:"name"`
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
	Tips     []string `json:"tips"`
}

// StrengthResult is the outcome of analyzing a resume's completeness and quality.
type StrengthResult struct {
	OverallScore int                `json:"overallScore"`
	Grade        string             `json:"grade"`
	Categories   []StrengthCategory `json:"categories"`
	TopStrengths []string           `json:"topStrengths"`
	Improvements []string           `json:"improvements"`
	Completeness int                `json:"completeness"`
}
