package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/vedzkun/applytics/internal/matching"
	"github.com/vedzkun/applytics/internal/parsing"
	"github.com/vedzkun/applytics/internal/strength"
	"github.com/vedzkun/applytics/internal/types"
)

// minTextLength is the minimum trimmed length accepted for resume and job text.
const minTextLength = 10

// batchConcurrency bounds concurrent scoring goroutines for batch matches.
const batchConcurrency = 4

// ParseMeta summarizes a parsed resume for the /api/parse response.
type ParseMeta struct {
	SkillCount       int `json:"skillCount"`
	ExperienceYears  int `json:"experienceYears"`
	EducationCount   int `json:"educationCount"`
	WorkHistoryCount int `json:"workHistoryCount"`
}

// ParseResponse represents the response for /api/parse
type ParseResponse struct {
	Success bool                `json:"success"`
	Parsed  *types.ParsedResume `json:"parsed"`
	Meta    ParseMeta           `json:"meta"`
}

// MatchResponse represents the response for /api/match
type MatchResponse struct {
	Success bool               `json:"success"`
	Result  *types.MatchResult `json:"result"`
}

// BatchMatchResponse represents the response for /api/match/batch
type BatchMatchResponse struct {
	Success bool                 `json:"success"`
	Results []*types.MatchResult `json:"results"`
}

// StrengthResponse represents the response for /api/strength
type StrengthResponse struct {
	Success  bool                  `json:"success"`
	Parsed   *types.ParsedResume   `json:"parsed"`
	Strength *types.StrengthResult `json:"strength"`
}

// handleParse parses resume text into a structured record.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Please provide resume text in the `text` field")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if len(strings.TrimSpace(req.Text)) < minTextLength {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is too short. Please provide more content.")
		return
	}

	parsed := parsing.ParseResume(req.Text)

	s.jsonResponse(w, http.StatusOK, ParseResponse{
		Success: true,
		Parsed:  parsed,
		Meta: ParseMeta{
			SkillCount:       len(parsed.Skills),
			ExperienceYears:  parsed.ExperienceYears,
			EducationCount:   len(parsed.Education),
			WorkHistoryCount: len(parsed.WorkExperience),
		},
	})
}

// handleMatch parses resume text and scores it against a job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Please provide resume text in the `resumeText` field")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if len(strings.TrimSpace(req.ResumeText)) < minTextLength {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is too short")
		return
	}

	parsed := parsing.ParseResume(req.ResumeText)
	result := matching.Match(parsed, req.JobDescription)

	s.jsonResponse(w, http.StatusOK, MatchResponse{Success: true, Result: result})
}

// handleMatchBatch parses the resume once and scores it against each job
// description concurrently.
func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Please provide resume text in the `resumeText` field")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if len(strings.TrimSpace(req.ResumeText)) < minTextLength {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is too short")
		return
	}
	for _, jd := range req.JobDescriptions {
		if len(strings.TrimSpace(jd)) < minTextLength {
			s.errorResponse(w, http.StatusBadRequest, "Each job description must be at least 10 characters")
			return
		}
	}

	parsed := parsing.ParseResume(req.ResumeText)
	results := make([]*types.MatchResult, len(req.JobDescriptions))

	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(batchConcurrency)
	for i, jd := range req.JobDescriptions {
		g.Go(func() error {
			results[i] = matching.Match(parsed, jd)
			return nil
		})
	}
	// Scoring is pure and never fails; Wait only synchronizes.
	_ = g.Wait()

	s.jsonResponse(w, http.StatusOK, BatchMatchResponse{Success: true, Results: results})
}

// handleStrength parses resume text and analyzes its strength.
func (s *Server) handleStrength(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Please provide resume text in the `text` field")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if len(strings.TrimSpace(req.Text)) < minTextLength {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is too short")
		return
	}

	parsed := parsing.ParseResume(req.Text)
	result := strength.Analyze(parsed)

	s.jsonResponse(w, http.StatusOK, StrengthResponse{Success: true, Parsed: parsed, Strength: result})
}

// handleHealth returns a health check response
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// validationMessage maps a validator error to the user-facing field message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Text":
			return "Please provide resume text in the `text` field"
		case "ResumeText":
			return "Please provide resume text in the `resumeText` field"
		case "JobDescription":
			return "Please provide job description in the `jobDescription` field"
		case "JobDescriptions":
			return "Please provide between 1 and 10 job descriptions in the `jobDescriptions` field"
		}
	}
	return "Invalid request body"
}
