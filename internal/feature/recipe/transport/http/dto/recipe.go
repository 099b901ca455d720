// Package dto defines request and response shapes for the recipe endpoints.
package dto

import (
	"time"

	authdto "dawn_eats/internal/feature/auth/transport/http/dto"
	"dawn_eats/internal/feature/recipe/domain/entity"
)

// CreateRecipeReq is the body of POST /recipes/.
type CreateRecipeReq struct {
	Title         string         `json:"title" binding:"required"`
	Description   *string        `json:"description"`
	Ingredients   []string       `json:"ingredients"`
	Instructions  *string        `json:"instructions"`
	NutritionInfo map[string]any `json:"nutrition_info"`
}

// RecipeRes is the response shape of a recipe.
type RecipeRes struct {
	ID            uint             `json:"id"`
	Title         string           `json:"title"`
	Description   *string          `json:"description"`
	Ingredients   []string         `json:"ingredients"`
	Instructions  *string          `json:"instructions"`
	NutritionInfo map[string]any   `json:"nutrition_info"`
	UserID        uint             `json:"user_id"`
	Author        *authdto.UserRes `json:"author"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewRecipeRes converts a recipe entity to its response shape.
func NewRecipeRes(r *entity.Recipe) RecipeRes {
	res := RecipeRes{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Ingredients:   r.Ingredients,
		Instructions:  r.Instructions,
		NutritionInfo: r.NutritionInfo,
		UserID:        r.UserID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.Author != nil {
		author := authdto.NewUserRes(r.Author)
		res.Author = &author
	}
	return res
}

// NewRecipeList converts recipes to response items, never returning nil.
func NewRecipeList(recipes []entity.Recipe) []RecipeRes {
	out := make([]RecipeRes, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeRes(&recipes[i]))
	}
	return out
}
