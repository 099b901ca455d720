package usecase

import "errors"

var (
	// ErrRecipeNotFound is returned when no recipe has the requested id.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrOwnerRequired is returned when a recipe is created without an authenticated owner.
	ErrOwnerRequired = errors.New("recipe owner is required")
)
