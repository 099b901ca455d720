// Package usecase implements the business logic for shared recipes.
package usecase

import (
	"context"
	"fmt"

	authentity "dawn_eats/internal/feature/auth/domain/entity"
	"dawn_eats/internal/feature/recipe/domain/entity"
	"dawn_eats/internal/shared/pagination"
)

// RecipeRepository abstracts the persistence layer for recipes.
type RecipeRepository interface {
	List(ctx context.Context, offset, limit int) ([]entity.Recipe, error)
	Create(ctx context.Context, recipe *entity.Recipe) error
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)
}

// CreateRecipeInput carries the client-settable fields of a new recipe.
type CreateRecipeInput struct {
	Title         string
	Description   *string
	Ingredients   []string
	Instructions  *string
	NutritionInfo map[string]any
}

// RecipeUsecase provides business logic for recipe operations.
type RecipeUsecase struct {
	repo RecipeRepository
}

// NewRecipeUsecase creates a new RecipeUsecase with the given repository.
func NewRecipeUsecase(r RecipeRepository) *RecipeUsecase {
	return &RecipeUsecase{repo: r}
}

// List returns one page of recipes ordered by id.
func (u *RecipeUsecase) List(ctx context.Context, skip, limit int) ([]entity.Recipe, error) {
	skip, limit = pagination.Clamp(skip, limit)
	if limit == 0 {
		return []entity.Recipe{}, nil
	}
	recipes, err := u.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Create stores a recipe owned by owner.
func (u *RecipeUsecase) Create(ctx context.Context, owner *authentity.User, in CreateRecipeInput) (*entity.Recipe, error) {
	if owner == nil || owner.ID == 0 {
		return nil, ErrOwnerRequired
	}

	recipe := &entity.Recipe{
		Title:         in.Title,
		Description:   in.Description,
		Ingredients:   in.Ingredients,
		Instructions:  in.Instructions,
		NutritionInfo: in.NutritionInfo,
		UserID:        owner.ID,
	}
	if err := u.repo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	recipe.Author = owner
	return recipe, nil
}

// Get returns the recipe with id or ErrRecipeNotFound.
func (u *RecipeUsecase) Get(ctx context.Context, id uint) (*entity.Recipe, error) {
	return u.repo.FindByID(ctx, id)
}
