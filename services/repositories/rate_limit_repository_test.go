package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/resorcera/course_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitRepositorySaveUpserts(t *testing.T) {
	repo := NewRateLimitRepository(newTestDB(t))
	ctx := context.Background()
	resetAt := time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)
	key := "rate_limit:contact:10.0.0.1"

	missing, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Save(ctx, &model.RateLimit{Key: key, Count: 1, ResetAt: resetAt}))
	require.NoError(t, repo.Save(ctx, &model.RateLimit{Key: key, Count: 2, ResetAt: resetAt}))

	row, err := repo.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 2, row.Count)
	assert.True(t, row.ResetAt.Equal(resetAt), "reset at %v", row.ResetAt)
}

func TestRateLimitRepositoryDeleteExpired(t *testing.T) {
	repo := NewRateLimitRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &model.RateLimit{Key: "old", Count: 3, ResetAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Save(ctx, &model.RateLimit{Key: "live", Count: 1, ResetAt: now.Add(time.Minute)}))

	require.NoError(t, repo.DeleteExpired(ctx, now))

	old, err := repo.Get(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, old)

	live, err := repo.Get(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, 1, live.Count)
}
