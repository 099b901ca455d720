// Package adapters はrecipeフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dawn_eats/internal/feature/recipe/domain/entity"
	"dawn_eats/internal/feature/recipe/usecase"
)

// recipeGorm はRecipeRepositoryインターフェースのGORM実装です。
type recipeGorm struct {
	db *gorm.DB
}

var _ usecase.RecipeRepository = (*recipeGorm)(nil)

// NewRecipeRepository はrecipeGormリポジトリの新しいインスタンスを生成します。
func NewRecipeRepository(db *gorm.DB) *recipeGorm {
	return &recipeGorm{db: db}
}

// List はid順にレシピを取得します。
func (r *recipeGorm) List(ctx context.Context, offset, limit int) ([]entity.Recipe, error) {
	recipes := make([]entity.Recipe, 0, limit)
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Create inserts the recipe row without touching its author.
func (r *recipeGorm) Create(ctx context.Context, recipe *entity.Recipe) error {
	if recipe == nil {
		return errors.New("recipe is nil")
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error
}

// FindByID returns usecase.ErrRecipeNotFound for an unknown id.
func (r *recipeGorm) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := r.db.WithContext(ctx).Preload("Author").First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}
