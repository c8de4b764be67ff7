package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"database_url": "postgres://localhost/jobs",
		"storage_url": "https://files.example.com",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/jobs", cfg.DatabaseURL)
	assert.Equal(t, "https://files.example.com", cfg.StorageURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "{not json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg = Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = Config{ParserAPIKey: "key"}
	assert.Error(t, cfg.Validate())

	cfg = Config{ParserAPIKey: "key", ParserServiceURL: "https://parser.example.com"}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://custom"}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "postgres://custom", merged.DatabaseURL)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "resumes", merged.StorageBucket)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg := Config{GeminiAPIKey: "explicit"}
	cfg.FromEnv()

	// Explicit values win over the environment.
	assert.Equal(t, "explicit", cfg.GeminiAPIKey)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
}
