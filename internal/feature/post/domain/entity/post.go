// Package entity defines the domain entities for the post feature.
package entity

import (
	"time"

	authentity "dawn_eats/internal/feature/auth/domain/entity"
)

// Post is a shared breakfast photo owned by exactly one user.
type Post struct {
	ID uint `gorm:"primaryKey"`

	// Title is required.
	Title string `gorm:"size:255;not null"`

	Description *string `gorm:"type:text"`

	// ImageURL is stored as given; the service never fetches it.
	ImageURL *string `gorm:"size:2048"`

	// UserID is the owner, set from the authenticated caller at creation.
	UserID uint `gorm:"not null;index"`

	// Author is loaded by the repository on reads.
	Author *authentity.User `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
