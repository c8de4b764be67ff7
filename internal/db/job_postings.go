package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// CreateJobPosting stores a job posting and returns its id
func (db *DB) CreateJobPosting(ctx context.Context, posting *types.JobPosting) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings
		   (title, company, location, salary_range, employment_type,
		    required_years_of_experience, industries, required_skills, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		posting.Title, posting.Company, posting.Location, posting.SalaryRange,
		posting.EmploymentType, posting.RequiredYearsOfExperience,
		posting.Industries, posting.RequiredSkills, posting.Description,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job posting: %w", err)
	}
	return id, nil
}

// GetJobPosting loads a job posting by id
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*JobPostingRecord, error) {
	rec := JobPostingRecord{ID: id}
	err := db.pool.QueryRow(ctx,
		`SELECT title, company, location, salary_range, employment_type,
		        required_years_of_experience, industries, required_skills, description,
		        created_at, updated_at
		 FROM job_postings WHERE id = $1`,
		id,
	).Scan(&rec.Posting.Title, &rec.Posting.Company, &rec.Posting.Location,
		&rec.Posting.SalaryRange, &rec.Posting.EmploymentType,
		&rec.Posting.RequiredYearsOfExperience, &rec.Posting.Industries,
		&rec.Posting.RequiredSkills, &rec.Posting.Description,
		&rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Kind: "job posting", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load job posting %s: %w", id, err)
	}
	return &rec, nil
}

// ListJobPostings returns the most recently created postings
func (db *DB) ListJobPostings(ctx context.Context, limit int) ([]JobPostingRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, location, salary_range, employment_type,
		        required_years_of_experience, industries, required_skills, description,
		        created_at, updated_at
		 FROM job_postings ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var records []JobPostingRecord
	for rows.Next() {
		var rec JobPostingRecord
		if err := rows.Scan(&rec.ID, &rec.Posting.Title, &rec.Posting.Company,
			&rec.Posting.Location, &rec.Posting.SalaryRange, &rec.Posting.EmploymentType,
			&rec.Posting.RequiredYearsOfExperience, &rec.Posting.Industries,
			&rec.Posting.RequiredSkills, &rec.Posting.Description,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
