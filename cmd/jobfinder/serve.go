package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/db"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/extraction"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/llm"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/logger"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/server"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/storage"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/tailoring"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes resume ingestion, match analysis and tailoring endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or database_url in config)")
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

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	blobs := storage.NewClient(cfg.StorageURL, cfg.StorageAPIKey)
	remote := extraction.NewParserService(cfg.ParserServiceURL, cfg.ParserAPIKey)
	chain := extraction.NewParserChain(remote, client, log)
	ingestor := extraction.NewIngestor(database, blobs, chain, log)
	engine := tailoring.NewEngine(client, log)

	srv := server.New(
		server.Config{Port: cfg.Port, StorageBucket: cfg.StorageBucket},
		server.Dependencies{
			Store:    database,
			Ingestor: ingestor,
			Engine:   engine,
			Logger:   log,
		},
	)
	return srv.Start()
}
