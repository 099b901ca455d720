package entity

import "time"

// RevokedToken records an access token withdrawn by logout before its expiry.
type RevokedToken struct {
	ID        string    `gorm:"primaryKey;size:64"` // jti claim of the token
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// IsExpired reports whether the revoked token would have expired anyway at now.
func (r *RevokedToken) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
