// Package main is the entry point for the Dawn Eats API server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"dawn_eats/internal/app/di"
	"dawn_eats/internal/app/router"
	authadapters "dawn_eats/internal/feature/auth/adapters"
	"dawn_eats/internal/platform/config"
	platformdb "dawn_eats/internal/platform/db"
	"dawn_eats/internal/platform/metrics"
	platformredis "dawn_eats/internal/platform/redis"
)

// @title Dawn Eats API
// @version 1.0
// @description Breakfast-sharing service: users, posts and recipes.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// db
	db, err := platformdb.OpenDB(platformdb.Config{
		URL:            cfg.DatabaseURL,
		ConnectTimeout: cfg.DBConnectTimeout,
		RunMigrations:  cfg.RunMigrations,
	}, di.Models()...)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis
	ctx := context.Background()
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(ctx, platformredis.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}); err != nil {
		if !errors.Is(err, platformredis.ErrNotConfigured) {
			slog.Warn("Redis unavailable. Storing revoked tokens in the database.", "error", err)
		}
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// 期限切れの失効トークンを起動時に掃除する
	if rdb == nil {
		if n, err := authadapters.NewRevocationRepository(db).DeleteExpired(ctx); err != nil {
			slog.Warn("failed to purge expired revoked tokens", "error", err)
		} else if n > 0 {
			slog.Info("purged expired revoked tokens", "count", n)
		}
	}

	// ルータ生成
	r := router.NewRouter(di.NewHandlers(cfg, db, rdb), router.Options{
		AllowAllOrigins: cfg.AllowAllOrigins(),
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		Metrics:         metrics.New(),
	})

	slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
