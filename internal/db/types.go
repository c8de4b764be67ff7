package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// Parse status lifecycle for uploaded resumes
const (
	ParseStatusPending   = "pending"
	ParseStatusCompleted = "completed"
	ParseStatusFailed    = "failed"
)

// Application status constants
const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusWithdrawn = "withdrawn"
)

// ResumeRecord is a stored uploaded resume: display metadata, the blob
// storage path of the original file, and the parsed payload once the
// ingestion pipeline has run.
type ResumeRecord struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"user_id"`
	DisplayName string                 `json:"display_name"`
	StoragePath string                 `json:"storage_path"`
	ParseStatus string                 `json:"parse_status"`
	ParseTier   *string                `json:"parse_tier,omitempty"` // which chain tier produced the data
	ParsedData  *types.RawParsedResume `json:"parsed_data,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// IsParsed reports whether ingestion has completed and produced a payload
func (r *ResumeRecord) IsParsed() bool {
	return r.ParseStatus == ParseStatusCompleted && r.ParsedData != nil
}

// JobPostingRecord is a stored job posting
type JobPostingRecord struct {
	ID        uuid.UUID        `json:"id"`
	Posting   types.JobPosting `json:"posting"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ApplicationRecord tracks a user's application to a job posting
type ApplicationRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	ResumeID  uuid.UUID `json:"resume_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedJobRecord marks a job posting a user bookmarked
type SavedJobRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}
