package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dawn_eats/internal/feature/auth/domain/entity"
	jwtmw "dawn_eats/internal/platform/jwt"
	"dawn_eats/internal/platform/password"
)

// dummyHash is compared against when no user matches the email,
// so a failed login costs one bcrypt comparison either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user.
	// It returns ErrUserAlreadyExists when a unique constraint rejects the row.
	Create(ctx context.Context, user *entity.User) error

	// ExistsByEmailOrUsername reports whether any user has the email or the username.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername returns ErrUserNotFound when no user has the username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenManager issues and verifies access tokens whose subject is a username.
type TokenManager interface {
	Issue(subject string) (string, error)
	Verify(token string) (*jwtmw.Claims, error)
}

// RevocationStore remembers tokens withdrawn by logout until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthUsecase implements registration, login and bearer-token resolution.
type AuthUsecase struct {
	users   UserRepository
	hasher  PasswordHasher
	tokens  TokenManager
	revoked RevocationStore
}

// NewAuthUsecase creates an AuthUsecase from its collaborators.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenManager, revoked RevocationStore) *AuthUsecase {
	return &AuthUsecase{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		revoked: revoked,
	}
}

// Register creates a user after checking that the email and username are free.
// A concurrent registration that slips past the check still fails with
// ErrUserAlreadyExists from the repository's unique constraints.
func (u *AuthUsecase) Register(ctx context.Context, username, email, plaintext string) (*entity.User, error) {
	exists, err := u.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := u.hasher.Hash(plaintext)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, err
	}

	user := &entity.User{Username: username, Email: email, PasswordHash: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by email and password and returns a signed access token.
func (u *AuthUsecase) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	// タイミング攻撃防止のため、ユーザーが存在しない場合でもハッシュ比較を実行する
	hash := dummyHash
	if user != nil {
		hash = user.PasswordHash
	}
	matched := u.hasher.Verify(plaintext, hash)

	if user == nil || !matched {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to its user.
// Forged, expired, revoked and orphaned tokens all yield ErrInvalidToken.
func (u *AuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := u.verify(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			slog.Warn("token subject not found", "username", claims.Subject)
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// Logout revokes token until its expiry.
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	claims, err := u.verify(ctx, token)
	if err != nil {
		return err
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return ErrInvalidToken
	}
	if err := u.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// verify checks the token signature, expiry and revocation state.
func (u *AuthUsecase) verify(ctx context.Context, token string) (*jwtmw.Claims, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		slog.Warn("token verification failed", "reason", jwtmw.Reason(err))
		return nil, ErrInvalidToken
	}

	if claims.ID != "" {
		revoked, err := u.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check token revocation: %w", err)
		}
		if revoked {
			slog.Warn("token verification failed", "reason", "revoked", "username", claims.Subject)
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}
