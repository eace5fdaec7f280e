package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"
)

// setupTestDB connects to the database named in .env.test or the environment.
// Tests are skipped when no SurrealDB instance is configured.
func setupTestDB(t *testing.T) (*surrealdb.DB, func()) {
	t.Helper()
	cfg := testutils.SurrealConfigForTests(t)

	ctx := context.Background()
	db, err := NewDB(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, DefineSchema(ctx, db))

	return db, func() {
		for _, table := range []string{skillTable, projectTable, settingsTable, submissionTable} {
			_ = Execute(context.Background(), db, "DELETE "+table, nil)
		}
		db.Close(context.Background())
	}
}

func TestContentStore_Integration(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewContentStore(db)

	require.NoError(t, Execute(ctx, db, "CREATE skill:sql CONTENT { name: 'SQL', position: 2 }", nil))
	require.NoError(t, Execute(ctx, db, "CREATE skill:go CONTENT { name: 'Go', position: 1 }", nil))
	require.NoError(t, Execute(ctx, db, "CREATE project:folio CONTENT { slug: 'folio', title: 'Folio', body: '# Hi' }", nil))

	t.Run("skills are ordered by position", func(t *testing.T) {
		skills, err := store.Skills(ctx)
		require.NoError(t, err)
		require.Len(t, skills, 2)
		assert.Equal(t, "go", skills[0].ID)
		assert.Equal(t, "SQL", skills[1].Name)
	})

	t.Run("project lookup by slug", func(t *testing.T) {
		project, err := store.ProjectBySlug(ctx, "folio")
		require.NoError(t, err)
		assert.Equal(t, "# Hi", project.Body)

		_, err = store.ProjectBySlug(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing settings document", func(t *testing.T) {
		_, err := store.SiteSettings(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("submission is stored under its id", func(t *testing.T) {
		sub := &domain.ContactSubmission{
			ID:          uuid.NewString(),
			Name:        "Ada",
			Email:       "ada@example.com",
			Message:     "Hello from the integration test",
			SubmittedAt: time.Now(),
		}
		require.NoError(t, store.CreateSubmission(ctx, sub))

		count, err := Query[map[string]any](ctx, db, "SELECT * FROM contact_submission WHERE email = $email", map[string]any{"email": sub.Email})
		require.NoError(t, err)
		assert.Len(t, count, 1)
	})
}
