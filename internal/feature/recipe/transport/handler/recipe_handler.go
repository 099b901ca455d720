// Package handler serves the recipe endpoints.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authentity "dawn_eats/internal/feature/auth/domain/entity"
	authmw "dawn_eats/internal/feature/auth/transport/middleware"
	"dawn_eats/internal/feature/recipe/domain/entity"
	"dawn_eats/internal/feature/recipe/transport/http/dto"
	"dawn_eats/internal/feature/recipe/usecase"
	"dawn_eats/internal/shared/apperror"
	"dawn_eats/internal/shared/pagination"
)

const detailRecipeNotFound = "Recipe not found"

// RecipeUsecase is consumed by RecipeHandler.
type RecipeUsecase interface {
	List(ctx context.Context, skip, limit int) ([]entity.Recipe, error)
	Create(ctx context.Context, owner *authentity.User, in usecase.CreateRecipeInput) (*entity.Recipe, error)
	Get(ctx context.Context, id uint) (*entity.Recipe, error)
}

// RecipeHandler handles HTTP requests for recipes.
type RecipeHandler struct {
	uc RecipeUsecase
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(uc RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// List handles GET /recipes/?skip=&limit=.
//
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param skip query int false "Rows to skip" default(0) minimum(0)
// @Param limit query int false "Page size, capped at 1000" default(100) minimum(0)
// @Success 200 {array} dto.RecipeRes
// @Failure 422 {object} map[string]string
// @Router /recipes/ [get]
func (h *RecipeHandler) List(c *gin.Context) {
	var q pagination.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		apperror.Respond(c, apperror.FromBindError(apperror.LocQuery, err))
		return
	}

	recipes, err := h.uc.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeList(recipes))
}

// Create handles POST /recipes/ for the authenticated user.
//
// @Summary Create a recipe
// @Tags recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRecipeReq true "New recipe"
// @Success 200 {object} dto.RecipeRes
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /recipes/ [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	owner, ok := authmw.CurrentUser(c)
	if !ok {
		apperror.Respond(c, apperror.NewUnauthorized(authmw.DetailNotAuthenticated))
		return
	}

	var req dto.CreateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBindError(apperror.LocBody, err))
		return
	}

	recipe, err := h.uc.Create(c.Request.Context(), owner, usecase.CreateRecipeInput{
		Title:         req.Title,
		Description:   req.Description,
		Ingredients:   req.Ingredients,
		Instructions:  req.Instructions,
		NutritionInfo: req.NutritionInfo,
	})
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	slog.Info("recipe created", "recipe_id", recipe.ID, "user_id", owner.ID)
	c.JSON(http.StatusOK, dto.NewRecipeRes(recipe))
}

// Get handles GET /recipes/:id.
//
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} dto.RecipeRes
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /recipes/{id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := apperror.PathID(c, "id", "recipe_id")
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	recipe, err := h.uc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, usecase.ErrRecipeNotFound):
		apperror.Respond(c, apperror.NewNotFound(detailRecipeNotFound))
	case err != nil:
		apperror.Respond(c, err)
	default:
		c.JSON(http.StatusOK, dto.NewRecipeRes(recipe))
	}
}
