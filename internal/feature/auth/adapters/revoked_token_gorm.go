package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dawn_eats/internal/feature/auth/domain/entity"
	"dawn_eats/internal/feature/auth/usecase"
)

// revokedTokenGorm stores revoked token IDs in the revoked_tokens table.
// It backs logout when Redis is not configured.
type revokedTokenGorm struct {
	db  *gorm.DB
	now func() time.Time
}

// Compile-time check to ensure revokedTokenGorm implements RevocationStore.
var _ usecase.RevocationStore = (*revokedTokenGorm)(nil)

// NewRevocationRepository creates a GORM-backed revocation store.
func NewRevocationRepository(db *gorm.DB) *revokedTokenGorm {
	return &revokedTokenGorm{db: db, now: time.Now}
}

// Revoke records tokenID until expiresAt. Revoking the same ID twice is a no-op.
func (r *revokedTokenGorm) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	row := &entity.RevokedToken{ID: tokenID, ExpiresAt: expiresAt, CreatedAt: r.now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

// IsRevoked reports whether tokenID was revoked and has not yet expired.
func (r *revokedTokenGorm) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var row entity.RevokedToken
	if err := r.db.WithContext(ctx).Where("id = ?", tokenID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return !row.IsExpired(r.now()), nil
}

// DeleteExpired removes rows whose tokens have expired and returns how many were deleted.
func (r *revokedTokenGorm) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now()).
		Delete(&entity.RevokedToken{})
	return result.RowsAffected, result.Error
}
