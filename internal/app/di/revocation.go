package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "dawn_eats/internal/feature/auth/adapters"
	"dawn_eats/internal/feature/auth/usecase"
	"dawn_eats/internal/platform/session"
)

// revocationPrefix namespaces denylist keys in a shared Redis.
const revocationPrefix = "dawn_eats"

// NewRevocationStore creates a RevocationStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the revoked_tokens table.
func NewRevocationStore(rdb *redis.Client, db *gorm.DB) usecase.RevocationStore {
	if rdb != nil {
		return session.NewRevocationRedis(rdb, revocationPrefix)
	}
	return authadapters.NewRevocationRepository(db)
}
