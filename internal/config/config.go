// Package config provides configuration loading and validation for the
// service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults, environment
// variables, or must be provided via CLI flags.
type Config struct {
	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Blob storage
	StorageURL    string `json:"storage_url,omitempty"`     // Base URL of the blob storage endpoint
	StorageAPIKey string `json:"storage_api_key,omitempty"` // Bearer token for blob downloads
	StorageBucket string `json:"storage_bucket,omitempty"`  // Bucket name for deriving object paths from URLs

	// External services
	GeminiAPIKey     string `json:"gemini_api_key,omitempty"`     // Text-generation API key
	ParserServiceURL string `json:"parser_service_url,omitempty"` // Specialized resume parser base URL
	ParserAPIKey     string `json:"parser_api_key,omitempty"`     // Bearer token for the parser service

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	Verbose bool `json:"verbose,omitempty"`  // Debug-level logging
	LogJSON bool `json:"log_json,omitempty"` // JSON log encoding instead of console
}

// Defaults returns the baseline configuration
func Defaults() Config {
	return Config{
		Port:          8080,
		StorageBucket: "resumes",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables, so secrets can
// stay out of the config file.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.ParserServiceURL == "" {
		c.ParserServiceURL = os.Getenv("PARSER_SERVICE_URL")
	}
	if c.ParserAPIKey == "" {
		c.ParserAPIKey = os.Getenv("PARSER_API_KEY")
	}
	if c.StorageURL == "" {
		c.StorageURL = os.Getenv("STORAGE_URL")
	}
	if c.StorageAPIKey == "" {
		c.StorageAPIKey = os.Getenv("STORAGE_API_KEY")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ParserAPIKey != "" && c.ParserServiceURL == "" {
		return fmt.Errorf("config error: 'parser_api_key' set without 'parser_service_url'")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.StorageURL == "" {
		result.StorageURL = defaults.StorageURL
	}
	if result.StorageAPIKey == "" {
		result.StorageAPIKey = defaults.StorageAPIKey
	}
	if result.StorageBucket == "" {
		result.StorageBucket = defaults.StorageBucket
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.ParserServiceURL == "" {
		result.ParserServiceURL = defaults.ParserServiceURL
	}
	if result.ParserAPIKey == "" {
		result.ParserAPIKey = defaults.ParserAPIKey
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.LogJSON {
		result.LogJSON = defaults.LogJSON
	}

	return result
}
