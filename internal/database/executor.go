package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/surrealdb/surrealdb.go"
)

// Query executes a SurrealQL statement with parameters and returns the rows of
// its first result set, decoded into T. The read timeout comes from the
// context (see WithQueryTimeout).
//
// Example:
//
//	rows, err := Query[skillRow](ctx, db, "SELECT * FROM skill ORDER BY position", nil)
func Query[T any](ctx context.Context, db *surrealdb.DB, query string, params map[string]any) ([]T, error) {
	ctx, cancel := withTimeout(ctx, defaultQueryTimeout, ContextKeyQueryTimeout)
	defer cancel()

	start := time.Now()
	results, err := surrealdb.Query[[]T](ctx, db, query, params)
	logStatement(ctx, query, start, err)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	if results == nil || len(*results) == 0 {
		return []T{}, nil
	}
	return (*results)[0].Result, nil
}

// QueryOne returns the first row of Query, or nil when there is none.
// Callers add their own LIMIT clause.
func QueryOne[T any](ctx context.Context, db *surrealdb.DB, query string, params map[string]any) (*T, error) {
	rows, err := Query[T](ctx, db, query, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Execute runs a statement whose rows are not needed (CREATE, DEFINE, DELETE)
// under the write timeout (see WithWriteTimeout).
func Execute(ctx context.Context, db *surrealdb.DB, statement string, params map[string]any) error {
	ctx, cancel := withTimeout(ctx, defaultWriteTimeout, ContextKeyWriteTimeout)
	defer cancel()

	start := time.Now()
	_, err := surrealdb.Query[any](ctx, db, statement, params)
	logStatement(ctx, statement, start, err)
	if err != nil {
		return fmt.Errorf("statement failed: %w", err)
	}
	return nil
}

func logStatement(ctx context.Context, statement string, start time.Time, err error) {
	if err != nil {
		slog.WarnContext(ctx, "SurrealDB statement failed", "statement", statement, "duration", time.Since(start), "error", err)
		return
	}
	slog.DebugContext(ctx, "SurrealDB statement", "statement", statement, "duration", time.Since(start))
}
