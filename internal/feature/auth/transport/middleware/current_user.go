// Package middleware resolves the authenticated user for protected routes.
package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"dawn_eats/internal/feature/auth/domain/entity"
	"dawn_eats/internal/feature/auth/usecase"
	jwtmw "dawn_eats/internal/platform/jwt"
	"dawn_eats/internal/shared/apperror"
)

// Context keys set by RequireUser.
const (
	ContextUser  = "currentUser"
	ContextToken = "accessToken"
)

// Generic 401 details. Expired, forged and stale tokens share one message.
const (
	DetailNotAuthenticated   = "Not authenticated"
	DetailInvalidCredentials = "Could not validate credentials"
)

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// RequireUser returns a middleware that rejects requests without a valid bearer token
// and stores the resolved user in the gin context.
func RequireUser(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーからトークンを取り出す
		token, ok := jwtmw.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			apperror.Respond(c, apperror.NewUnauthorized(DetailNotAuthenticated))
			return
		}

		// 2. トークンを検証し、ユーザーを解決する
		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidToken) {
				apperror.Respond(c, apperror.NewUnauthorized(DetailInvalidCredentials))
				return
			}
			apperror.Respond(c, err)
			return
		}

		// 3. 後続のハンドラーへ渡す
		c.Set(ContextUser, user)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireUser.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}

// AccessToken returns the raw bearer token stored by RequireUser.
func AccessToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextToken)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}
