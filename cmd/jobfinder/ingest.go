package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/db"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/extraction"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/llm"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/logger"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/storage"
)

var ingestResumeID string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run the ingestion pipeline for one uploaded resume",
	Long:  "Download the stored resume file, extract its text, run the parser chain and persist the parsed record.",
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestResumeID, "resume-id", "", "Resume record ID to ingest (required)")
	_ = ingestCmd.MarkFlagRequired("resume-id")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or database_url in config)")
	}

	id, err := uuid.Parse(ingestResumeID)
	if err != nil {
		return fmt.Errorf("invalid resume ID %q: %w", ingestResumeID, err)
	}

	log, err := logger.New(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	// The model tier of the chain is optional for ingestion: without an
	// API key the chain skips straight from the remote parser to regex.
	var client llm.Client
	if cfg.GeminiAPIKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	blobs := storage.NewClient(cfg.StorageURL, cfg.StorageAPIKey)
	remote := extraction.NewParserService(cfg.ParserServiceURL, cfg.ParserAPIKey)
	chain := extraction.NewParserChain(remote, client, log)
	ingestor := extraction.NewIngestor(database, blobs, chain, log)

	raw, err := ingestor.IngestResume(ctx, id)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(raw)
}
