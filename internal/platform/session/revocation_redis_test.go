package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

func TestNewRevocationRedis(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewRevocationRedis(client, "dawn")

	assert.NotNil(t, repo.client, "client is nil")
	assert.Equal(t, "dawn", repo.prefix)
	assert.Equal(t, "dawn:revoked:abc", repo.revokedKey("abc"))
}

func TestRevocationRedis_RevokeAndCheck(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewRevocationRedis(client, "dawn")
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "token-1", time.Now().Add(10*time.Minute)))

	revoked, err = repo.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl := mr.TTL(repo.revokedKey("token-1"))
	assert.Greater(t, ttl, 9*time.Minute)
	assert.LessOrEqual(t, ttl, 10*time.Minute)

	// The entry disappears together with the token's validity.
	mr.FastForward(11 * time.Minute)
	revoked, err = repo.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationRedis_RevokeExpiredToken(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewRevocationRedis(client, "dawn")

	require.NoError(t, repo.Revoke(context.Background(), "stale", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists(repo.revokedKey("stale")))
}

func TestRevocationRedis_Errors(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	repo := NewRevocationRedis(client, "dawn")
	fixed := time.Date(2026, 5, 1, 7, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	mock.ExpectSet("dawn:revoked:t1", 1, 5*time.Minute).SetErr(errors.New("READONLY"))
	err := repo.Revoke(context.Background(), "t1", fixed.Add(5*time.Minute))
	assert.EqualError(t, err, "READONLY")

	mock.ExpectExists("dawn:revoked:t1").SetErr(errors.New("connection refused"))
	revoked, err := repo.IsRevoked(context.Background(), "t1")
	assert.EqualError(t, err, "connection refused")
	assert.False(t, revoked)

	assert.NoError(t, mock.ExpectationsWereMet())
}
