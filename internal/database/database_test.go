package database

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/folio/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDB_MissingConfig(t *testing.T) {
	db, err := NewDB(context.Background(), &config.Config{DBUrl: "ws://localhost:8000/rpc"})
	assert.Nil(t, db)
	assert.ErrorContains(t, err, "SURREAL_NS")
}

func TestWithTimeout(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		ctx, cancel := withTimeout(context.Background(), defaultQueryTimeout, ContextKeyQueryTimeout)
		defer cancel()
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(defaultQueryTimeout), deadline, time.Second)
	})

	t.Run("override", func(t *testing.T) {
		ctx := WithWriteTimeout(context.Background(), time.Second)
		ctx, cancel := withTimeout(ctx, defaultWriteTimeout, ContextKeyWriteTimeout)
		defer cancel()
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
	})

	t.Run("keys do not mix", func(t *testing.T) {
		ctx := WithQueryTimeout(context.Background(), time.Second)
		ctx, cancel := withTimeout(ctx, defaultWriteTimeout, ContextKeyWriteTimeout)
		defer cancel()
		deadline, _ := ctx.Deadline()
		assert.WithinDuration(t, time.Now().Add(defaultWriteTimeout), deadline, time.Second)
	})
}
