package extraction

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/db"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// RecordStore is the slice of the persistence layer the pipeline needs
type RecordStore interface {
	GetResume(ctx context.Context, id uuid.UUID) (*db.ResumeRecord, error)
	UpdateParseResult(ctx context.Context, id uuid.UUID, status, tier string, parsed *types.RawParsedResume) error
}

// BlobDownloader fetches stored file bytes by object path
type BlobDownloader interface {
	Download(ctx context.Context, path string) ([]byte, error)
}

// UnsupportedFileError indicates the uploaded file could not be turned
// into text. The resume record is left in the terminal failed state.
type UnsupportedFileError struct {
	Filename string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("could not extract text from %s", e.Filename)
}

// Ingestor runs the full ingestion pipeline for one uploaded resume:
// download bytes, extract text, run the parser chain, persist the result.
type Ingestor struct {
	store  RecordStore
	blobs  BlobDownloader
	chain  *ParserChain
	logger *zap.Logger
}

// NewIngestor creates an ingestion pipeline
func NewIngestor(store RecordStore, blobs BlobDownloader, chain *ParserChain, logger *zap.Logger) *Ingestor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingestor{store: store, blobs: blobs, chain: chain, logger: logger}
}

// IngestResume processes the resume record with the given id. Persistence
// and storage failures are fatal for the request, but a text-extraction
// failure still persists a terminal failed record so the resume is never
// left perpetually unprocessed.
func (i *Ingestor) IngestResume(ctx context.Context, id uuid.UUID) (*types.RawParsedResume, error) {
	rec, err := i.store.GetResume(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := i.blobs.Download(ctx, rec.StoragePath)
	if err != nil {
		i.markFailed(ctx, id)
		return nil, fmt.Errorf("failed to download resume %s: %w", id, err)
	}

	filename := path.Base(rec.StoragePath)
	text, ok := ExtractText(data, filename)
	if !ok {
		i.markFailed(ctx, id)
		return nil, &UnsupportedFileError{Filename: filename}
	}

	raw, tier := i.chain.Parse(ctx, data, filename, text)
	i.logger.Info("resume parsed",
		zap.String("resume_id", id.String()),
		zap.String("tier", tier),
	)

	if err := i.store.UpdateParseResult(ctx, id, db.ParseStatusCompleted, tier, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// markFailed writes the terminal failed state, logging rather than
// surfacing a second error when even that write fails.
func (i *Ingestor) markFailed(ctx context.Context, id uuid.UUID) {
	if err := i.store.UpdateParseResult(ctx, id, db.ParseStatusFailed, "", nil); err != nil {
		i.logger.Error("failed to record terminal parse failure",
			zap.String("resume_id", id.String()),
			zap.Error(err),
		)
	}
}
