package adapters

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "dawn_eats/internal/feature/auth/domain/entity"
	"dawn_eats/internal/feature/post/domain/entity"
	"dawn_eats/internal/feature/post/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&authentity.User{}, &entity.Post{}), "failed to migrate tables")
	return db
}

func seedOwner(t *testing.T, db *gorm.DB, username string) *authentity.User {
	t.Helper()

	u := &authentity.User{Username: username, Email: username + "@x.com", PasswordHash: "hash"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestPostGorm_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	alice := seedOwner(t, db, "alice")

	desc := "soft-boiled"
	post := &entity.Post{Title: "Eggs", Description: &desc, UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, post))
	assert.NotZero(t, post.ID)
	assert.False(t, post.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eggs", got.Title)
	assert.Equal(t, "soft-boiled", *got.Description)
	assert.Nil(t, got.ImageURL)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Username)
}

func TestPostGorm_CreateDoesNotWriteAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	alice := seedOwner(t, db, "alice")

	stale := *alice
	stale.Username = "mallory"
	post := &entity.Post{Title: "Toast", UserID: alice.ID, Author: &stale}
	require.NoError(t, repo.Create(context.Background(), post))

	var reloaded authentity.User
	require.NoError(t, db.First(&reloaded, alice.ID).Error)
	assert.Equal(t, "alice", reloaded.Username)
}

func TestPostGorm_FindByID_NotFound(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))

	got, err := repo.FindByID(context.Background(), 999999)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, usecase.ErrPostNotFound)
}

func TestPostGorm_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	alice := seedOwner(t, db, "alice")
	bob := seedOwner(t, db, "bob")

	for i := 1; i <= 5; i++ {
		owner := alice
		if i%2 == 0 {
			owner = bob
		}
		require.NoError(t, repo.Create(ctx, &entity.Post{Title: fmt.Sprintf("post-%d", i), UserID: owner.ID}))
	}

	tests := []struct {
		name       string
		offset     int
		limit      int
		wantTitles []string
	}{
		{"first page", 0, 2, []string{"post-1", "post-2"}},
		{"second page", 2, 2, []string{"post-3", "post-4"}},
		{"tail", 4, 10, []string{"post-5"}},
		{"past the end", 10, 10, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, err := repo.List(ctx, tt.offset, tt.limit)
			require.NoError(t, err)

			titles := make([]string, 0, len(posts))
			for _, p := range posts {
				titles = append(titles, p.Title)
				require.NotNil(t, p.Author, "author should be preloaded")
				assert.Equal(t, p.UserID, p.Author.ID)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}
