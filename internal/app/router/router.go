// Package router assembles the gin engine and its routes.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authhandler "dawn_eats/internal/feature/auth/transport/handler"
	authmw "dawn_eats/internal/feature/auth/transport/middleware"
	posthandler "dawn_eats/internal/feature/post/transport/handler"
	recipehandler "dawn_eats/internal/feature/recipe/transport/handler"
	"dawn_eats/internal/platform/http/handler"
	"dawn_eats/internal/platform/metrics"

	// Registers the OpenAPI document served under /docs.
	_ "dawn_eats/docs"
)

// docsIndex is the Swagger UI entry page.
const docsIndex = "/docs/index.html"

// Handlers groups the feature handlers served by the router.
type Handlers struct {
	Auth          *authhandler.AuthHandler
	Authenticator authmw.Authenticator
	Post          *posthandler.PostHandler
	Recipe        *recipehandler.RecipeHandler
}

// Options configures cross-cutting middleware.
type Options struct {
	// AllowAllOrigins takes precedence over AllowedOrigins.
	AllowAllOrigins bool
	AllowedOrigins  []string

	// Metrics is optional. When set, requests are measured and /metrics is served.
	Metrics *metrics.Metrics
}

// NewRouter builds the engine with every route under /api/v1 plus the platform endpoints.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(opts)))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", opts.Metrics.Handler())
	}

	// 認証不要
	r.GET("/", handler.Root)
	// 導通確認用
	r.GET("/health", handler.Health)
	r.HEAD("/health", handler.Health)
	r.OPTIONS("/health", handler.Health)
	// APIドキュメント（Swagger UI）
	r.GET("/docs", func(c *gin.Context) { c.Redirect(http.StatusMovedPermanently, docsIndex) })
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireUser := authmw.RequireUser(h.Authenticator)
	v1 := r.Group("/api/v1")

	users := v1.Group("/users")
	{
		// 新規ユーザー登録
		users.POST("/register", h.Auth.Register)
		// ログイン（JWT 発行）
		users.POST("/login", h.Auth.Login)

		// 認証必須のルート
		users.GET("/profile", requireUser, h.Auth.Profile)
		users.POST("/logout", requireUser, h.Auth.Logout)
	}

	posts := v1.Group("/posts")
	{
		posts.GET("/", h.Post.List)
		posts.POST("/", requireUser, h.Post.Create)
		posts.GET("/:id", h.Post.Get)
	}

	recipes := v1.Group("/recipes")
	{
		recipes.GET("/", h.Recipe.List)
		recipes.POST("/", requireUser, h.Recipe.Create)
		recipes.GET("/:id", h.Recipe.Get)
	}

	return r
}

func corsConfig(opts Options) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"WWW-Authenticate"},
		MaxAge:        12 * time.Hour,
	}
	if opts.AllowAllOrigins || len(opts.AllowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = opts.AllowedOrigins
	cfg.AllowCredentials = true
	return cfg
}
