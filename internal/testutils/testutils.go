package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/logging"
)

// SurrealConfigForTests loads .env.test (when present) and returns a config
// pointing at the SurrealDB test instance. The test is skipped in short mode
// or when no instance is configured.
func SurrealConfigForTests(t *testing.T) config.Provider {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	// Find project root by looking for go.mod to reliably locate .env.test
	if root, ok := projectRoot(); ok {
		if env, err := godotenv.Read(filepath.Join(root, ".env.test")); err == nil {
			for key, value := range env {
				t.Setenv(key, value)
			}
		}
	}
	if os.Getenv("SURREAL_URL") == "" {
		t.Skip("SURREAL_URL not set; skipping SurrealDB integration test")
	}

	logging.New()

	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("failed to parse test config: %v", err)
	}
	cfg.ContentSource = config.SourceSurreal
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return cfg
}

func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
