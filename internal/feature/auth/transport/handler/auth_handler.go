// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dawn_eats/internal/feature/auth/domain/entity"
	"dawn_eats/internal/feature/auth/transport/http/dto"
	authmw "dawn_eats/internal/feature/auth/transport/middleware"
	"dawn_eats/internal/feature/auth/usecase"
	"dawn_eats/internal/shared/apperror"
)

// Public error details. Login failures never say which field was wrong.
const (
	detailAlreadyRegistered  = "Email or username already registered"
	detailInvalidCredentials = "Incorrect email or password"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /users/register.
// - 422 on a malformed body
// - 400 when the email or username is taken
// - 200 with the public user on success
//
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterReq true "New user"
// @Success 200 {object} dto.UserRes
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		apperror.Respond(c, apperror.FromBindError(apperror.LocBody, err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			slog.Warn("register conflict", "username", req.Username, "email", req.Email, "remote_addr", c.ClientIP())
			apperror.Respond(c, apperror.NewConflict(detailAlreadyRegistered))
		case errors.Is(err, usecase.ErrPasswordTooLong):
			apperror.Respond(c, apperror.NewValidation(apperror.FieldError{
				Loc: apperror.LocBody + ".password",
				Msg: "must be at most 72 bytes",
			}))
		default:
			apperror.Respond(c, err)
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Login handles POST /users/login.
// - 422 on a malformed body
// - 401 on unknown email or wrong password
// - 200 with a bearer token on success
//
// @Summary Log in
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginReq true "Login credentials"
// @Success 200 {object} dto.TokenRes
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		apperror.Respond(c, apperror.FromBindError(apperror.LocBody, err))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			apperror.Respond(c, apperror.NewUnauthorized(detailInvalidCredentials))
			return
		}
		apperror.Respond(c, err)
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{AccessToken: token, TokenType: "bearer"})
}

// Profile handles GET /users/profile for the authenticated user.
//
// @Summary Current user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserRes
// @Failure 401 {object} map[string]string
// @Router /users/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		apperror.Respond(c, apperror.NewUnauthorized(authmw.DetailNotAuthenticated))
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Logout handles POST /users/logout by revoking the presented token.
//
// @Summary Log out
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := authmw.AccessToken(c)
	if !ok {
		apperror.Respond(c, apperror.NewUnauthorized(authmw.DetailNotAuthenticated))
		return
	}

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) {
			apperror.Respond(c, apperror.NewUnauthorized(authmw.DetailInvalidCredentials))
			return
		}
		apperror.Respond(c, err)
		return
	}

	if user, ok := authmw.CurrentUser(c); ok {
		slog.Info("user logged out", "username", user.Username, "remote_addr", c.ClientIP())
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
