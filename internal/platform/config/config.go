// Package config loads the process-wide configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// devJWTSecret is only accepted when APP_ENV=development.
const devJWTSecret = "dawn-eats-development-secret"

// ErrMissingJWTSecret is returned when JWT_SECRET is unset outside development.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config is the immutable application configuration.
type Config struct {
	Env      string
	Port     string
	LogLevel slog.Level

	DatabaseURL      string
	DBConnectTimeout time.Duration
	RunMigrations    bool

	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSAllowedOrigins []string
}

// Load reads an optional .env file and the process environment into a Config.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "sqlite://./dawn_eats.db")
	v.SetDefault("DB_CONNECT_TIMEOUT", "60s")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Env:              strings.ToLower(v.GetString("APP_ENV")),
		Port:             v.GetString("PORT"),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		DBConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		RunMigrations:    v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		AccessTokenTTL:   time.Duration(v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute,
		BcryptCost:       v.GetInt("BCRYPT_COST"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.AccessTokenTTL <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"))
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			return Config{}, ErrMissingJWTSecret
		}
		slog.Warn("JWT_SECRET is not set. Using the development secret; set a strong secret in production.")
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

// AllowAllOrigins reports whether CORS is open to every origin.
func (c Config) AllowAllOrigins() bool {
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
