package database

import (
	"context"
	"time"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// ContextKeyQueryTimeout overrides the timeout for read queries.
	ContextKeyQueryTimeout ContextKey = "db_query_timeout"
	// ContextKeyWriteTimeout overrides the timeout for writes and schema statements.
	ContextKeyWriteTimeout ContextKey = "db_write_timeout"

	defaultQueryTimeout = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

// WithQueryTimeout returns a context that overrides the read timeout.
func WithQueryTimeout(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, ContextKeyQueryTimeout, d)
}

// WithWriteTimeout returns a context that overrides the write timeout.
func WithWriteTimeout(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, ContextKeyWriteTimeout, d)
}

// withTimeout applies the timeout stored under key, or def. A deadline already
// on ctx that is sooner wins, as with any derived context.
func withTimeout(ctx context.Context, def time.Duration, key ContextKey) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := def
	if v, ok := ctx.Value(key).(time.Duration); ok && v > 0 {
		timeout = v
	}
	return context.WithTimeout(ctx, timeout)
}
