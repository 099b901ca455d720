// Package handler はpostフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authentity "dawn_eats/internal/feature/auth/domain/entity"
	authmw "dawn_eats/internal/feature/auth/transport/middleware"
	"dawn_eats/internal/feature/post/domain/entity"
	"dawn_eats/internal/feature/post/transport/http/dto"
	"dawn_eats/internal/feature/post/usecase"
	"dawn_eats/internal/shared/apperror"
	"dawn_eats/internal/shared/pagination"
)

const detailPostNotFound = "Post not found"

// PostUsecase は投稿に関するユースケースのインターフェースです。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PostUsecase interface {
	List(ctx context.Context, skip, limit int) ([]entity.Post, error)
	Create(ctx context.Context, owner *authentity.User, in usecase.CreatePostInput) (*entity.Post, error)
	Get(ctx context.Context, id uint) (*entity.Post, error)
}

// PostHandler は投稿に関するHTTPリクエストを処理します。
type PostHandler struct {
	uc PostUsecase
}

// NewPostHandler は新しい PostHandler を作成します。
func NewPostHandler(uc PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

// List は投稿一覧を返すAPIです（GET /posts/?skip=&limit=）。
//
// @Summary List posts
// @Tags posts
// @Produce json
// @Param skip query int false "Rows to skip" default(0) minimum(0)
// @Param limit query int false "Page size, capped at 1000" default(100) minimum(0)
// @Success 200 {array} dto.PostRes
// @Failure 422 {object} map[string]string
// @Router /posts/ [get]
func (h *PostHandler) List(c *gin.Context) {
	var q pagination.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		apperror.Respond(c, apperror.FromBindError(apperror.LocQuery, err))
		return
	}

	posts, err := h.uc.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPostList(posts))
}

// Create は認証済みユーザーを所有者として投稿を作成します（POST /posts/）。
//
// @Summary Create a post
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePostReq true "New post"
// @Success 200 {object} dto.PostRes
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /posts/ [post]
func (h *PostHandler) Create(c *gin.Context) {
	owner, ok := authmw.CurrentUser(c)
	if !ok {
		apperror.Respond(c, apperror.NewUnauthorized(authmw.DetailNotAuthenticated))
		return
	}

	var req dto.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.FromBindError(apperror.LocBody, err))
		return
	}

	post, err := h.uc.Create(c.Request.Context(), owner, usecase.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	slog.Info("post created", "post_id", post.ID, "user_id", owner.ID)
	c.JSON(http.StatusOK, dto.NewPostRes(post))
}

// Get はIDで投稿を1件返します（GET /posts/:id）。
//
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.PostRes
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, err := apperror.PathID(c, "id", "post_id")
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	post, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			apperror.Respond(c, apperror.NewNotFound(detailPostNotFound))
			return
		}
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPostRes(post))
}
