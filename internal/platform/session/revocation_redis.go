// Package session keeps logout state for access tokens in Redis.
package session

import (
	"context"
	"fmt"
	"time"

	"dawn_eats/internal/feature/auth/usecase"

	"github.com/redis/go-redis/v9"
)

// RevocationRedis implements usecase.RevocationStore using Redis keys that expire with the token.
type RevocationRedis struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

var _ usecase.RevocationStore = (*RevocationRedis)(nil)

// NewRevocationRedis creates a new RevocationRedis instance.
func NewRevocationRedis(client *redis.Client, prefix string) *RevocationRedis {
	return &RevocationRedis{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

// revokedKey returns the Redis key for a revoked token ID.
func (r *RevocationRedis) revokedKey(tokenID string) string {
	return fmt.Sprintf("%s:revoked:%s", r.prefix, tokenID)
}

// Revoke marks tokenID as revoked until expiresAt.
// Tokens that have already expired need no entry.
func (r *RevocationRedis) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.revokedKey(tokenID), 1, ttl).Err()
}

// IsRevoked reports whether tokenID has a live revocation entry.
func (r *RevocationRedis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
