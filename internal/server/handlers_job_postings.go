package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/db"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// CreateJobPostingRequest stores a new job posting
type CreateJobPostingRequest struct {
	Title                     string   `json:"title" validate:"required,min=1"`
	Company                   string   `json:"company" validate:"required,min=1"`
	Location                  string   `json:"location,omitempty"`
	SalaryRange               string   `json:"salary_range,omitempty"`
	EmploymentType            string   `json:"employment_type,omitempty"`
	RequiredYearsOfExperience int      `json:"required_years_of_experience,omitempty" validate:"min=0"`
	Industries                []string `json:"industries,omitempty"`
	RequiredSkills            []string `json:"required_skills,omitempty"`
	Description               string   `json:"description,omitempty"`
}

// Validate validates the CreateJobPostingRequest using the validator.
func (r *CreateJobPostingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

func (r *CreateJobPostingRequest) posting() *types.JobPosting {
	return &types.JobPosting{
		Title:                     r.Title,
		Company:                   r.Company,
		Location:                  r.Location,
		SalaryRange:               r.SalaryRange,
		EmploymentType:            r.EmploymentType,
		RequiredYearsOfExperience: r.RequiredYearsOfExperience,
		Industries:                r.Industries,
		RequiredSkills:            r.RequiredSkills,
		Description:               r.Description,
	}
}

// ListJobPostingsResponse represents the response for listing job postings
type ListJobPostingsResponse struct {
	Postings []db.JobPostingRecord `json:"postings"`
	Count    int                   `json:"count"`
}

// handleCreateJobPosting stores a job posting
func (s *Server) handleCreateJobPosting(w http.ResponseWriter, r *http.Request) {
	var req CreateJobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.store.CreateJobPosting(r.Context(), req.posting())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to create job posting")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleListJobPostings lists stored job postings
func (s *Server) handleListJobPostings(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	postings, err := s.store.ListJobPostings(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Database error")
		return
	}

	s.jsonResponse(w, http.StatusOK, ListJobPostingsResponse{
		Postings: postings,
		Count:    len(postings),
	})
}

// handleGetJobPosting retrieves a job posting by its ID
func (s *Server) handleGetJobPosting(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job posting ID")
		return
	}

	posting, err := s.store.GetJobPosting(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Job posting not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// UserActionRequest identifies the acting user for save/apply endpoints
type UserActionRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	ResumeID string `json:"resume_id,omitempty"`
}

// Validate validates the UserActionRequest using the validator.
func (r *UserActionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleSaveJob bookmarks a job posting for a user
func (s *Server) handleSaveJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job posting ID")
		return
	}

	var req UserActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	userID, _ := uuid.Parse(req.UserID)

	if err := s.store.SaveJob(r.Context(), userID, jobID); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save job")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handleApply records an application to a job posting
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job posting ID")
		return
	}

	var req UserActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume_id")
		return
	}
	userID, _ := uuid.Parse(req.UserID)

	id, err := s.store.CreateApplication(r.Context(), userID, jobID, resumeID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to record application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"id":     id.String(),
		"status": db.ApplicationStatusSubmitted,
	})
}

// handleListSavedJobs lists a user's bookmarked job postings
func (s *Server) handleListSavedJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	saved, err := s.store.ListSavedJobs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Database error")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"saved_jobs": saved,
		"count":      len(saved),
	})
}
