package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "dawn_eats/internal/feature/auth/domain/entity"
	"dawn_eats/internal/feature/recipe/domain/entity"
	"dawn_eats/internal/feature/recipe/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&authentity.User{}, &entity.Recipe{}))
	return db
}

func TestRecipeGorm_RoundTripsStructuredFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	owner := &authentity.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, db.Create(owner).Error)

	steps := "Whisk, then fry."
	recipe := &entity.Recipe{
		Title:         "Tamagoyaki",
		Ingredients:   []string{"eggs", "dashi", "sugar", "soy sauce"},
		Instructions:  &steps,
		NutritionInfo: map[string]any{"kcal": 180.0, "vegetarian": true},
		UserID:        owner.ID,
	}
	require.NoError(t, repo.Create(ctx, recipe))
	require.NotZero(t, recipe.ID)

	got, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"eggs", "dashi", "sugar", "soy sauce"}, got.Ingredients, "order must be kept")
	assert.Equal(t, map[string]any{"kcal": 180.0, "vegetarian": true}, got.NutritionInfo)
	assert.Equal(t, steps, *got.Instructions)
	assert.Nil(t, got.Description)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Username)
}

func TestRecipeGorm_OptionalFieldsStayEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	owner := &authentity.User{Username: "bob", Email: "b@x.com", PasswordHash: "hash"}
	require.NoError(t, db.Create(owner).Error)

	recipe := &entity.Recipe{Title: "Plain toast", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, recipe))

	got, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Ingredients)
	assert.Empty(t, got.NutritionInfo)
}

func TestRecipeGorm_ListAndNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	owner := &authentity.User{Username: "carol", Email: "c@x.com", PasswordHash: "hash"}
	require.NoError(t, db.Create(owner).Error)
	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, &entity.Recipe{Title: title, UserID: owner.ID}))
	}

	recipes, err := repo.List(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "B", recipes[0].Title)
	assert.Equal(t, "C", recipes[1].Title)

	_, err = repo.FindByID(ctx, 999999)
	assert.ErrorIs(t, err, usecase.ErrRecipeNotFound)
}
