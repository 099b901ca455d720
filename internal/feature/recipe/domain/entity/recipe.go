// Package entity defines the domain entities for the recipe feature.
package entity

import (
	"time"

	authentity "dawn_eats/internal/feature/auth/domain/entity"
)

// Recipe is a breakfast recipe owned by exactly one user.
type Recipe struct {
	ID uint `gorm:"primaryKey"`

	Title       string  `gorm:"size:255;not null"`
	Description *string `gorm:"type:text"`

	// Ingredients keeps the order given at creation.
	Ingredients []string `gorm:"serializer:json;type:text"`

	Instructions *string `gorm:"type:text"`

	// NutritionInfo is an open key-value mapping stored as JSON.
	NutritionInfo map[string]any `gorm:"serializer:json;type:text"`

	UserID uint             `gorm:"not null;index"`
	Author *authentity.User `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
