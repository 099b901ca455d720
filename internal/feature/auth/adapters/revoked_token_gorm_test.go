package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dawn_eats/internal/feature/auth/domain/entity"
)

func TestRevokedTokenGorm_RevokeAndCheck(t *testing.T) {
	repo := NewRevocationRepository(setupTestDB(t))
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(30*time.Minute)))

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Revoking again is idempotent.
	assert.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(30*time.Minute)))
}

func TestRevokedTokenGorm_ExpiredEntries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRevocationRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Revoke(ctx, "old", now.Add(time.Minute)))
	require.NoError(t, repo.Revoke(ctx, "fresh", now.Add(time.Hour)))

	now = now.Add(2 * time.Minute)

	revoked, err := repo.IsRevoked(ctx, "old")
	require.NoError(t, err)
	assert.False(t, revoked, "entry past the token's expiry no longer matters")

	deleted, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []entity.RevokedToken
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].ID)
}
