package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/storage"
)

// CreateResumeRequest registers an uploaded resume file for ingestion.
// Either storage_path or file_url identifies the uploaded object.
type CreateResumeRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	DisplayName string `json:"display_name" validate:"required,min=1"`
	StoragePath string `json:"storage_path,omitempty"`
	FileURL     string `json:"file_url,omitempty"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.StoragePath == "" && r.FileURL == "" {
		return &ErrValidation{Field: "storage_path", Message: "either storage_path or file_url is required"}
	}
	return nil
}

// CreateResumeResponse is the response for resume registration
type CreateResumeResponse struct {
	ID          string `json:"id"`
	ParseStatus string `json:"parse_status"`
}

// IngestResponse is the response for a completed ingestion run
type IngestResponse struct {
	ID          string `json:"id"`
	ParseStatus string `json:"parse_status"`
	ParseTier   string `json:"parse_tier"`
}

// handleCreateResume registers an uploaded file and creates a pending
// resume record.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	storagePath := req.StoragePath
	if storagePath == "" {
		storagePath = storage.PathFromURL(req.FileURL, s.storageBucket)
		if storagePath == "" {
			s.errorResponse(w, http.StatusBadRequest, "file_url does not reference the storage bucket")
			return
		}
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user_id")
		return
	}

	id, err := s.store.CreateResume(r.Context(), userID, req.DisplayName, storagePath)
	if err != nil {
		s.logger.Error("failed to create resume record", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), "Failed to create resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreateResumeResponse{
		ID:          id.String(),
		ParseStatus: "pending",
	})
}

// handleGetResume retrieves a resume record with its parsed payload
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	record, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleIngestResume runs the ingestion pipeline for an uploaded resume
func (s *Server) handleIngestResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	if _, err := s.ingestor.IngestResume(r.Context(), id); err != nil {
		s.logger.Warn("ingestion failed",
			zap.String("resume_id", id.String()), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Resume not found after ingestion")
		return
	}

	tier := ""
	if record.ParseTier != nil {
		tier = *record.ParseTier
	}
	s.jsonResponse(w, http.StatusOK, IngestResponse{
		ID:          record.ID.String(),
		ParseStatus: record.ParseStatus,
		ParseTier:   tier,
	})
}
