// Package database serves portfolio content from SurrealDB tables.
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// NewDB connects to SurrealDB, signs in when credentials are set and selects
// the namespace and database. Connection failures wrap domain.ErrSourceUnavailable.
func NewDB(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	if cfg.GetDBURL() == "" || cfg.GetDBNs() == "" || cfg.GetDBDb() == "" {
		return nil, errors.New("surrealdb requires SURREAL_URL, SURREAL_NS and SURREAL_DB")
	}

	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBURL())
	if err != nil {
		return nil, fmt.Errorf("%w: connect to surrealdb: %w", domain.ErrSourceUnavailable, err)
	}
	if err := selectDatabase(ctx, db, cfg); err != nil {
		_ = db.Close(ctx)
		return nil, err
	}

	slog.Info("Connected to SurrealDB", "namespace", cfg.GetDBNs(), "database", cfg.GetDBDb())
	return db, nil
}

func selectDatabase(ctx context.Context, db *surrealdb.DB, cfg config.Provider) error {
	if cfg.GetDBUser() != "" {
		auth := &surrealdb.Auth{
			Username: cfg.GetDBUser(),
			Password: cfg.GetDBPass(),
		}
		if _, err := db.SignIn(ctx, auth); err != nil {
			return fmt.Errorf("failed to sign in as %s: %w", cfg.GetDBUser(), err)
		}
	}
	if err := db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		return fmt.Errorf("failed to use %s/%s: %w", cfg.GetDBNs(), cfg.GetDBDb(), err)
	}
	return nil
}
