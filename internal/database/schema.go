package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/surrealdb/surrealdb.go"
)

// schemaStatements define the content tables. Tables stay schemaless so
// editors can add optional fields; only lookup fields are indexed.
var schemaStatements = []string{
	"DEFINE TABLE IF NOT EXISTS " + skillTable + " SCHEMALESS",
	"DEFINE TABLE IF NOT EXISTS " + testimonialTable + " SCHEMALESS",
	"DEFINE TABLE IF NOT EXISTS " + experienceTable + " SCHEMALESS",
	"DEFINE TABLE IF NOT EXISTS " + educationTable + " SCHEMALESS",
	"DEFINE TABLE IF NOT EXISTS " + projectTable + " SCHEMALESS",
	"DEFINE INDEX IF NOT EXISTS project_slug ON " + projectTable + " FIELDS slug UNIQUE",
	"DEFINE TABLE IF NOT EXISTS " + settingsTable + " SCHEMALESS",
	"DEFINE TABLE IF NOT EXISTS " + submissionTable + " SCHEMALESS",
	"DEFINE INDEX IF NOT EXISTS submission_time ON " + submissionTable + " FIELDS submitted_at",
}

// DefineSchema creates the content tables and indexes if they are missing.
func DefineSchema(ctx context.Context, db *surrealdb.DB) error {
	for _, stmt := range schemaStatements {
		if err := Execute(ctx, db, stmt, nil); err != nil {
			return fmt.Errorf("failed to apply %q: %w", stmt, err)
		}
	}
	slog.InfoContext(ctx, "Content schema applied", "statements", len(schemaStatements))
	return nil
}
