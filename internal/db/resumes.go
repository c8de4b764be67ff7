package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// CreateResume inserts a new resume record in the pending parse state and
// returns its id.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, displayName, storagePath string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, display_name, storage_path, parse_status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, displayName, storagePath, ParseStatusPending,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume loads a resume record by id
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	var (
		rec        ResumeRecord
		parsedJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, display_name, storage_path, parse_status, parse_tier, parsed_data, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.UserID, &rec.DisplayName, &rec.StoragePath, &rec.ParseStatus,
		&rec.ParseTier, &parsedJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Kind: "resume", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume %s: %w", id, err)
	}

	if len(parsedJSON) > 0 {
		var parsed types.RawParsedResume
		if err := json.Unmarshal(parsedJSON, &parsed); err != nil {
			return nil, fmt.Errorf("failed to decode parsed_data for resume %s: %w", id, err)
		}
		rec.ParsedData = &parsed
	}

	return &rec, nil
}

// UpdateParseResult writes back the outcome of an ingestion run: the
// terminal status, the tier that produced the payload, and the payload
// itself (nil for failed runs).
func (db *DB) UpdateParseResult(ctx context.Context, id uuid.UUID, status, tier string, parsed *types.RawParsedResume) error {
	var parsedJSON []byte
	if parsed != nil {
		var err error
		parsedJSON, err = json.Marshal(parsed)
		if err != nil {
			return fmt.Errorf("failed to marshal parsed_data: %w", err)
		}
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes
		 SET parse_status = $1, parse_tier = NULLIF($2, ''), parsed_data = $3, updated_at = NOW()
		 WHERE id = $4`,
		status, tier, parsedJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update parse result for resume %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Kind: "resume", ID: id}
	}
	return nil
}
