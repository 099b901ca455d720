// Package db opens the relational store backing users, posts and recipes.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// retryInterval is the pause between connection attempts at startup.
const retryInterval = 3 * time.Second

// ErrUnsupportedURL is returned for database URLs with an unknown scheme.
var ErrUnsupportedURL = errors.New("unsupported database url")

// Config holds the connection settings for OpenDB.
type Config struct {
	URL            string
	ConnectTimeout time.Duration
	RunMigrations  bool
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// Dialector picks the gorm driver for a database URL.
// postgres:// and postgresql:// URLs use Postgres; sqlite://<path> uses SQLite.
func Dialector(url string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return nil, fmt.Errorf("%w: empty sqlite path", ErrUnsupportedURL)
		}
		if !strings.Contains(path, "?") {
			path += "?_foreign_keys=on"
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, redact(url))
	}
}

// GormConfig returns the gorm settings shared by every connection.
// TranslateError maps driver unique-key failures to gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout, interval time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", interval)
		time.Sleep(interval)
	}
}

// OpenDB connects to cfg.URL and, when enabled, migrates the given models.
func OpenDB(cfg Config, models ...any) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.URL)
	if err != nil {
		return nil, err
	}

	opener := func(string) (*gorm.DB, error) {
		return gorm.Open(dialector, GormConfig())
	}
	db, err := ConnectWithRetry(cfg.URL, cfg.ConnectTimeout, retryInterval, opener)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "driver", dialector.Name(), "url", redact(cfg.URL))

	if cfg.RunMigrations {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}

// redact hides the password of a URL for logging.
func redact(url string) string {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return url
	}
	creds, host, ok := strings.Cut(rest, "@")
	if !ok {
		return url
	}
	user, _, hasPass := strings.Cut(creds, ":")
	if !hasPass {
		return url
	}
	return scheme + "://" + user + ":***@" + host
}
