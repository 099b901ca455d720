// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"dawn_eats/internal/app/router"
	authadapters "dawn_eats/internal/feature/auth/adapters"
	authentity "dawn_eats/internal/feature/auth/domain/entity"
	authhandler "dawn_eats/internal/feature/auth/transport/handler"
	authusecase "dawn_eats/internal/feature/auth/usecase"
	postadapters "dawn_eats/internal/feature/post/adapters"
	postentity "dawn_eats/internal/feature/post/domain/entity"
	posthandler "dawn_eats/internal/feature/post/transport/handler"
	postusecase "dawn_eats/internal/feature/post/usecase"
	recipeadapters "dawn_eats/internal/feature/recipe/adapters"
	recipeentity "dawn_eats/internal/feature/recipe/domain/entity"
	recipehandler "dawn_eats/internal/feature/recipe/transport/handler"
	recipeusecase "dawn_eats/internal/feature/recipe/usecase"
	"dawn_eats/internal/platform/config"
	jwtmw "dawn_eats/internal/platform/jwt"
	"dawn_eats/internal/platform/password"
)

// Models lists every persisted entity in migration order.
func Models() []any {
	return []any{
		&authentity.User{},
		&authentity.RevokedToken{},
		&postentity.Post{},
		&recipeentity.Recipe{},
	}
}

// NewHandlers wires repositories, usecases and handlers.
// rdb may be nil, in which case token revocation is stored in the database.
func NewHandlers(cfg config.Config, db *gorm.DB, rdb *redis.Client) router.Handlers {
	// Repository
	userRepo := authadapters.NewUserRepository(db)
	postRepo := postadapters.NewPostRepository(db)
	recipeRepo := recipeadapters.NewRecipeRepository(db)
	revoked := NewRevocationStore(rdb, db)

	// Platform
	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := jwtmw.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens, revoked)
	postUC := postusecase.NewPostUsecase(postRepo)
	recipeUC := recipeusecase.NewRecipeUsecase(recipeRepo)

	// Handler
	return router.Handlers{
		Auth:          authhandler.NewAuthHandler(authUC),
		Authenticator: authUC,
		Post:          posthandler.NewPostHandler(postUC),
		Recipe:        recipehandler.NewRecipeHandler(recipeUC),
	}
}
