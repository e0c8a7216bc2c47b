package types

import "github.com/go-playground/validator/v10"

// ParseRequest represents the request body for POST /api/parse and /api/strength.
type ParseRequest struct {
	Text string `json:"text" validate:"required"`
}

// MatchRequest represents the request body for POST /api/match.
type MatchRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

// BatchMatchRequest represents the request body for POST /api/match/batch.
type BatchMatchRequest struct {
	ResumeText      string   `json:"resumeText" validate:"required"`
	JobDescriptions []string `json:"jobDescriptions" validate:"required,min=1,max=10,dive,required"`
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
