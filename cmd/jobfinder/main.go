// Package main provides the entry point for the job finder API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "jobfinder",
	Short: "Job finder core: resume parsing, match scoring and tailoring",
	Long:  "jobfinder ingests uploaded resumes into structured records, scores them against job postings and tailors selected sections to a posting via a text-generation model with a deterministic fallback.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: file values when
// --config is given, then environment variables, then defaults.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
