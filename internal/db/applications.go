package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateApplication records a user's application to a job posting
func (db *DB) CreateApplication(ctx context.Context, userID, jobID, resumeID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_id, resume_id, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, jobID, resumeID, ApplicationStatusSubmitted,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// SaveJob bookmarks a job posting for a user. Saving twice is a no-op.
func (db *DB) SaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO saved_jobs (user_id, job_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		userID, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to save job %s: %w", jobID, err)
	}
	return nil
}

// ListSavedJobs returns the ids of a user's saved postings, newest first
func (db *DB) ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]SavedJobRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_id, created_at
		 FROM saved_jobs WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	defer rows.Close()

	var records []SavedJobRecord
	for rows.Next() {
		var rec SavedJobRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.JobID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved job: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
