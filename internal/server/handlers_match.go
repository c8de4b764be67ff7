package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/db"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/extraction"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/matching"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/parsing"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// AnalyzeRequest scores a parsed resume against a stored job posting
type AnalyzeRequest struct {
	ResumeID string `json:"resume_id" validate:"required,uuid"`
	JobID    string `json:"job_id" validate:"required,uuid"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeResponse carries the normalized resume and its match data
type AnalyzeResponse struct {
	Resume *types.Resume    `json:"resume"`
	Match  *types.MatchData `json:"match"`
}

// TailorRequest runs the tailoring engine for a resume/job pair
type TailorRequest struct {
	ResumeID       string   `json:"resume_id" validate:"required,uuid"`
	JobID          string   `json:"job_id" validate:"required,uuid"`
	Summary        bool     `json:"summary"`
	Skills         bool     `json:"skills"`
	Experience     bool     `json:"experience"`
	EditMode       string   `json:"edit_mode,omitempty" validate:"omitempty,oneof=quick full"`
	SelectedSkills []string `json:"selected_skills,omitempty"`
}

// Validate validates the TailorRequest using the validator.
func (r *TailorRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.Summary && !r.Skills && !r.Experience {
		return &ErrValidation{Field: "sections", Message: "at least one section must be selected"}
	}
	return nil
}

// TailorResponse carries the tailored resume and the finalized match data
type TailorResponse struct {
	Resume *types.Resume    `json:"resume"`
	Match  *types.MatchData `json:"match"`
}

// loadPair fetches the resume record and job posting concurrently and
// normalizes the resume's parsed payload.
func (s *Server) loadPair(r *http.Request, resumeID, jobID uuid.UUID) (*types.Resume, *types.JobPosting, error) {
	var (
		record  *db.ResumeRecord
		posting *db.JobPostingRecord
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		record, err = s.store.GetResume(ctx, resumeID)
		return err
	})
	g.Go(func() error {
		var err error
		posting, err = s.store.GetJobPosting(ctx, jobID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if !record.IsParsed() {
		return nil, nil, &ErrValidation{Field: "resume_id", Message: "resume has not been parsed yet"}
	}

	// Descriptions are stored as posting-board HTML; scoring and prompts
	// want prose.
	job := posting.Posting
	job.Description = extraction.DescriptionText(job.Description)

	return parsing.Normalize(record.ParsedData), &job, nil
}

// handleAnalyze scores a resume against a job posting
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	resumeID, _ := uuid.Parse(req.ResumeID)
	jobID, _ := uuid.Parse(req.JobID)

	resume, job, err := s.loadPair(r, resumeID, jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Resume: resume,
		Match:  matching.Score(resume, job),
	})
}

// handleTailor scores and then tailors a resume for a job posting
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	resumeID, _ := uuid.Parse(req.ResumeID)
	jobID, _ := uuid.Parse(req.JobID)

	resume, job, err := s.loadPair(r, resumeID, jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sections := types.SectionSelection{
		Summary:    req.Summary,
		Skills:     req.Skills,
		Experience: req.Experience,
		EditMode:   types.EditMode(req.EditMode),
	}
	if sections.EditMode == "" {
		sections.EditMode = types.EditModeQuick
	}

	base := matching.Score(resume, job)
	result, err := s.engine.Tailor(r.Context(), resume, job, sections, req.SelectedSkills, base)
	if err != nil {
		s.logger.Error("tailoring failed",
			zap.String("resume_id", req.ResumeID),
			zap.String("job_id", req.JobID),
			zap.Error(err),
		)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, TailorResponse{
		Resume: result.Resume,
		Match:  result.MatchData,
	})
}
